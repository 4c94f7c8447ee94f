package record

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Entries normalises a raw error value recorded against attribute. Strings
// yield a single entry for attribute itself; mappings yield one entry per
// sub-attribute. Nested mappings deeper than one level and any other type fail
// with ErrInvalidErrorShape.
func Entries(attribute string, value any) ([]Entry, error) {
	switch v := value.(type) {
	case string:
		return []Entry{{Attribute: attribute, Message: v}}, nil
	case []string:
		out := make([]Entry, 0, len(v))
		for _, message := range v {
			out = append(out, Entry{Attribute: attribute, Message: message})
		}
		return out, nil
	case []any:
		out := make([]Entry, 0, len(v))
		for idx, item := range v {
			message, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q[%d] holds %T", ErrInvalidErrorShape, attribute, idx, item)
			}
			out = append(out, Entry{Attribute: attribute, Message: message})
		}
		return out, nil
	case Entry:
		return []Entry{v}, nil
	case []Entry:
		return append([]Entry(nil), v...), nil
	case map[string]string:
		out := make([]Entry, 0, len(v))
		for _, key := range sortedKeys(v) {
			out = append(out, Entry{Attribute: key, Message: v[key]})
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		out := make([]Entry, 0, len(v))
		for _, key := range keys {
			message, ok := v[key].(string)
			if !ok {
				return nil, fmt.Errorf("%w: %q.%q holds %T", ErrInvalidErrorShape, attribute, key, v[key])
			}
			out = append(out, Entry{Attribute: key, Message: message})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q holds %T", ErrInvalidErrorShape, attribute, value)
	}
}

// FormatMessage applies the full-message rule: messages starting with an upper
// case letter are already qualified (typically by nested object validation) and
// are returned verbatim, anything else is prefixed with the attribute's human
// name.
func FormatMessage(rec Record, attribute, message string) string {
	if startsUpper(message) {
		return message
	}
	name := ""
	if rec != nil {
		name = rec.HumanName(attribute)
	}
	if name == "" {
		name = Humanize(attribute)
	}
	if name == "" {
		return message
	}
	return name + " " + message
}

// FieldMessages formats every error recorded for field.
func FieldMessages(rec Record, field string) ([]string, error) {
	if rec == nil {
		return nil, nil
	}
	var out []string
	for _, value := range rec.ErrorsFor(field) {
		entries, err := Entries(field, value)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			out = append(out, FormatMessage(rec, entry.Attribute, entry.Message))
		}
	}
	return out, nil
}

// FullMessages flattens every error on rec, including one-level nested
// mappings, into formatted display strings. Duplicates are dropped keeping the
// first occurrence.
func FullMessages(rec Record) ([]string, error) {
	if rec == nil {
		return nil, nil
	}
	errs := rec.Errors()
	if len(errs) == 0 {
		return nil, nil
	}

	out := make([]string, 0, len(errs))
	seen := make(map[string]struct{}, len(errs))
	for _, item := range errs {
		entries, err := Entries(item.Attribute, item.Value)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			message := FormatMessage(rec, entry.Attribute, entry.Message)
			if strings.TrimSpace(message) == "" {
				continue
			}
			if _, exists := seen[message]; exists {
				continue
			}
			seen[message] = struct{}{}
			out = append(out, message)
		}
	}
	return out, nil
}

func startsUpper(message string) bool {
	r, size := utf8.DecodeRuneInString(message)
	if size == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsUpper(r)
}

func sortedKeys(in map[string]string) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
