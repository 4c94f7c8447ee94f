// Package record defines the capability interface form builders query on the
// bound object: per-attribute errors, human-readable names, required-ness and
// current values. Host applications adapt their own binding layer to Record;
// Model is a ready-made in-memory implementation.
package record

import "errors"

// ErrInvalidErrorShape reports an error value that is neither a message string
// nor a one-level mapping of sub-attribute to message.
var ErrInvalidErrorShape = errors.New("record: invalid error shape")

// Record is the read-only view renderers have of a bound object. Renderers
// never mutate a Record; ownership stays with the host validation step.
type Record interface {
	// ModelName returns the human model name ("Post", "Bank account").
	ModelName() string
	// HumanName returns the human-readable name for an attribute.
	HumanName(field string) string
	// IsRequired reports whether a presence validator is declared on field.
	IsRequired(field string) bool
	// Value returns the current attribute value, or nil when unset.
	Value(field string) any
	// ErrorsFor returns the ordered error values recorded for field. Each value
	// is either a message string or a mapping of sub-attribute to message.
	ErrorsFor(field string) []any
	// Errors returns every error on the record in insertion order.
	Errors() []Error
}

// Persister is implemented by records that know whether they were already
// saved. Builders use it to pick the default submit caption.
type Persister interface {
	Persisted() bool
}

// Error pairs an attribute with one raw error value (string or mapping).
type Error struct {
	Attribute string
	Value     any
}

// Entry is a normalised (attribute, message) pair.
type Entry struct {
	Attribute string `json:"attribute" yaml:"attribute"`
	Message   string `json:"message" yaml:"message"`
}
