package bootstrap

import (
	"strings"

	"github.com/goliatone/go-bootstrapforms/pkg/markup"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// State is the validation state of a rendered field.
type State string

const (
	StateNone    State = ""
	StateError   State = "error"
	StateSuccess State = "success"
	StateWarning State = "warning"
)

type validation struct {
	state State
	text  string
}

// validationState resolves the single active state. Record errors win over
// the explicit success and warning options, success wins over warning.
func (b *FormBuilder) validationState(field string, opts FieldOptions) (validation, error) {
	messages, err := record.FieldMessages(b.record, field)
	if err != nil {
		return validation{}, err
	}
	switch {
	case len(messages) > 0:
		return validation{state: StateError, text: strings.Join(messages, ", ")}, nil
	case opts.Success != "":
		return validation{state: StateSuccess, text: opts.Success}, nil
	case opts.Warning != "":
		return validation{state: StateWarning, text: opts.Warning}, nil
	}
	return validation{}, nil
}

func controlGroup(v validation, children ...markup.Fragment) markup.Fragment {
	attrs := markup.Attrs("class", markup.Classes("control-group", string(v.state)))
	return markup.Tag("div", attrs, children...)
}

func (b *FormBuilder) requiredClass(field string) string {
	if b.required(field) {
		return "required"
	}
	return ""
}

func (b *FormBuilder) labelText(field string, opts FieldOptions) string {
	if opts.Label != "" {
		return opts.Label
	}
	return b.humanName(field)
}

// labelField renders label.control-label for field. It returns an empty
// fragment when the label is suppressed.
func (b *FormBuilder) labelField(field string, opts FieldOptions) markup.Fragment {
	if opts.NoLabel {
		return ""
	}
	attrs := markup.Attrs(
		"class", markup.Classes("control-label", b.requiredClass(field)),
		"for", b.elementID(field, opts),
	)
	return markup.Tag("label", attrs, markup.Text(b.labelText(field, opts)))
}

// inputDiv wraps content in div.controls, nesting one add-on wrapper when a
// prepend or append decoration is present. Prepend wins when both are set.
func inputDiv(opts FieldOptions, content markup.Fragment) markup.Fragment {
	wrapper := ""
	switch {
	case opts.Prepend != "":
		wrapper = "input-prepend"
	case opts.Append != "":
		wrapper = "input-append"
	}
	if wrapper != "" {
		content = markup.Tag("div", markup.Attrs("class", wrapper), content)
	}
	return markup.Tag("div", markup.Attrs("class", "controls"), content)
}

// extras lays out the decorations around control in their fixed order:
// prepend add-on, control, append add-on, inline help, state text, block help.
func (b *FormBuilder) extras(opts FieldOptions, v validation, control markup.Fragment) markup.Fragment {
	return markup.Concat(
		b.addOn(opts.Prepend),
		control,
		b.addOn(opts.Append),
		b.helpInline(opts.HelpInline),
		b.stateText(v),
		b.helpBlock(opts),
	)
}

func (b *FormBuilder) addOn(text string) markup.Fragment {
	if text == "" {
		return ""
	}
	return markup.Tag("span", markup.Attrs("class", "add-on"), b.decoration(text))
}

func (b *FormBuilder) helpInline(text string) markup.Fragment {
	if text == "" {
		return ""
	}
	return markup.Tag("span", markup.Attrs("class", "help-inline"), b.decoration(text))
}

// stateText renders the active state's message. Record errors are plain text;
// success and warning come from options and follow the decoration policy.
func (b *FormBuilder) stateText(v validation) markup.Fragment {
	switch {
	case v.text == "":
		return ""
	case v.state == StateError:
		return markup.Tag("span", markup.Attrs("class", "help-inline"), markup.Text(v.text))
	}
	return b.helpInline(v.text)
}

func (b *FormBuilder) helpBlock(opts FieldOptions) markup.Fragment {
	if opts.HelpBlock == "" {
		return ""
	}
	attrs := markup.Attrs("class", markup.Classes("help-block", opts.HelpBlockClass))
	return markup.Tag("p", attrs, b.decoration(opts.HelpBlock))
}
