package bootstrap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/markup"
)

// Option keys recognised as decorations. ParseOptions strips them before the
// remaining keys reach the control as HTML attributes.
const (
	OptLabel          = "label"
	OptHelpInline     = "help_inline"
	OptHelpBlock      = "help_block"
	OptHelpBlockClass = "help_block_class"
	OptError          = "error"
	OptSuccess        = "success"
	OptWarning        = "warning"
	OptPrepend        = "prepend"
	OptAppend         = "append"
	OptInline         = "inline"

	// Builder-level keys that are consumed rather than forwarded.
	OptValue  = "value"
	OptPrompt = "prompt"
)

// DecorationKeys lists every key ParseOptions removes from the passthrough
// attributes.
var DecorationKeys = []string{
	OptLabel, OptHelpInline, OptHelpBlock, OptHelpBlockClass,
	OptError, OptSuccess, OptWarning, OptPrepend, OptAppend, OptInline,
}

// FieldOptions is the per-call configuration of a field. Decorations are typed
// fields; Attrs is forwarded untouched to the control primitive.
type FieldOptions struct {
	// Label overrides the human attribute name; NoLabel suppresses the label.
	Label   string
	NoLabel bool

	HelpInline     string
	HelpBlock      string
	HelpBlockClass string

	// Success and Warning select an explicit validation state when the record
	// has no errors for the field.
	Success string
	Warning string

	Prepend string
	Append  string

	// Inline lays collection items out horizontally.
	Inline bool

	// Value overrides the record value shown by the control.
	Value any
	// Prompt adds a blank first option to selects.
	Prompt string

	Attrs markup.Attributes
}

// ParseOptions converts a loosely typed option map (template helpers, YAML
// definitions) into FieldOptions. Recognised decoration keys are stripped;
// everything else becomes a control attribute, in sorted key order. A label of
// false suppresses the label. The error key is accepted and dropped: error
// state always comes from the record.
func ParseOptions(raw map[string]any) FieldOptions {
	var opts FieldOptions
	if len(raw) == 0 {
		return opts
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		switch strings.TrimSpace(key) {
		case OptLabel:
			switch v := value.(type) {
			case bool:
				opts.NoLabel = !v
			case nil:
				opts.NoLabel = true
			default:
				opts.Label = controls.FormatValue(v)
			}
		case OptHelpInline:
			opts.HelpInline = controls.FormatValue(value)
		case OptHelpBlock:
			opts.HelpBlock = controls.FormatValue(value)
		case OptHelpBlockClass:
			opts.HelpBlockClass = controls.FormatValue(value)
		case OptError:
		case OptSuccess:
			opts.Success = controls.FormatValue(value)
		case OptWarning:
			opts.Warning = controls.FormatValue(value)
		case OptPrepend:
			opts.Prepend = controls.FormatValue(value)
		case OptAppend:
			opts.Append = controls.FormatValue(value)
		case OptInline:
			opts.Inline = truthy(value)
		case OptValue:
			opts.Value = value
		case OptPrompt:
			opts.Prompt = controls.FormatValue(value)
		default:
			opts.Attrs = appendAttribute(opts.Attrs, key, value)
		}
	}
	return opts
}

// appendAttribute maps option values onto HTML attributes: true becomes a
// boolean attribute, false and nil are dropped.
func appendAttribute(attrs markup.Attributes, name string, value any) markup.Attributes {
	name = strings.TrimSpace(name)
	switch v := value.(type) {
	case nil:
		return attrs
	case bool:
		if !v {
			return attrs
		}
		return attrs.Set(name, name)
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return attrs.Set(name, strings.Join(parts, " "))
	case []string:
		return attrs.Set(name, strings.Join(v, " "))
	default:
		return attrs.Set(name, controls.FormatValue(v))
	}
}

// truthy follows form semantics: "0", "false", "" and zero values are off.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "", "0", "false", "off", "no":
			return false
		}
		return true
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
