package record

import (
	"maps"
	"strings"
)

// Model is an in-memory Record. The host validation step owns it and records
// errors through Add; renderers only read it.
type Model struct {
	name      string
	persisted bool
	values    map[string]any
	names     map[string]string
	required  map[string]struct{}
	errors    []Error
}

// ModelOption configures a Model at construction.
type ModelOption func(*Model)

// WithValues seeds attribute values.
func WithValues(values map[string]any) ModelOption {
	return func(m *Model) {
		maps.Copy(m.values, values)
	}
}

// WithModelName replaces the name given to NewModel. Blank names are ignored.
func WithModelName(name string) ModelOption {
	return func(m *Model) {
		if name = strings.TrimSpace(name); name != "" {
			m.name = name
		}
	}
}

// WithHumanNames overrides the derived human names for attributes.
func WithHumanNames(names map[string]string) ModelOption {
	return func(m *Model) {
		for field, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				m.names[field] = name
			}
		}
	}
}

// WithRequired marks attributes as carrying a presence validator.
func WithRequired(fields ...string) ModelOption {
	return func(m *Model) {
		for _, field := range fields {
			if field = strings.TrimSpace(field); field != "" {
				m.required[field] = struct{}{}
			}
		}
	}
}

// WithPersisted flags the model as already saved.
func WithPersisted(persisted bool) ModelOption {
	return func(m *Model) {
		m.persisted = persisted
	}
}

// NewModel constructs a Model. The model name is humanized when it looks like
// an identifier ("bank_account" -> "Bank account").
func NewModel(name string, options ...ModelOption) *Model {
	m := &Model{
		name:     strings.TrimSpace(name),
		values:   make(map[string]any),
		names:    make(map[string]string),
		required: make(map[string]struct{}),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	return m
}

var _ Record = (*Model)(nil)
var _ Persister = (*Model)(nil)

// ModelName implements Record.
func (m *Model) ModelName() string {
	if m == nil {
		return ""
	}
	if strings.Contains(m.name, "_") || !startsUpper(m.name) {
		return Humanize(m.name)
	}
	return m.name
}

// HumanName implements Record.
func (m *Model) HumanName(field string) string {
	if m == nil {
		return Humanize(field)
	}
	if name, ok := m.names[field]; ok {
		return name
	}
	return Humanize(field)
}

// IsRequired implements Record.
func (m *Model) IsRequired(field string) bool {
	if m == nil {
		return false
	}
	_, ok := m.required[field]
	return ok
}

// Value implements Record.
func (m *Model) Value(field string) any {
	if m == nil {
		return nil
	}
	return m.values[field]
}

// Set updates an attribute value. It works on the zero Model.
func (m *Model) Set(field string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	m.values[field] = value
}

// Add records an error value against attribute. value is a message string or a
// mapping of sub-attribute to message.
func (m *Model) Add(attribute string, value any) {
	m.errors = append(m.errors, Error{Attribute: attribute, Value: value})
}

// Clear drops every recorded error.
func (m *Model) Clear() {
	m.errors = nil
}

// ErrorsFor implements Record.
func (m *Model) ErrorsFor(field string) []any {
	if m == nil {
		return nil
	}
	var out []any
	for _, item := range m.errors {
		if item.Attribute == field {
			out = append(out, item.Value)
		}
	}
	return out
}

// Errors implements Record.
func (m *Model) Errors() []Error {
	if m == nil || len(m.errors) == 0 {
		return nil
	}
	return append([]Error(nil), m.errors...)
}

// Persisted implements Persister.
func (m *Model) Persisted() bool {
	return m != nil && m.persisted
}
