package controls

import "strings"

// Variant names an input primitive.
type Variant string

// Built-in variants, named after the builder methods that produce them.
const (
	VariantTextField        Variant = "text_field"
	VariantEmailField       Variant = "email_field"
	VariantPasswordField    Variant = "password_field"
	VariantNumberField      Variant = "number_field"
	VariantRangeField       Variant = "range_field"
	VariantSearchField      Variant = "search_field"
	VariantTelephoneField   Variant = "telephone_field"
	VariantPhoneField       Variant = "phone_field"
	VariantURLField         Variant = "url_field"
	VariantFileField        Variant = "file_field"
	VariantHiddenField      Variant = "hidden_field"
	VariantTextArea         Variant = "text_area"
	VariantSelect           Variant = "select"
	VariantCollectionSelect Variant = "collection_select"
	VariantCheckBox         Variant = "check_box"
	VariantRadioButton      Variant = "radio_button"
	VariantSubmit           Variant = "submit"
	VariantButton           Variant = "button"
)

// inputTypes maps <input> based variants to their type attribute.
var inputTypes = map[Variant]string{
	VariantTextField:      "text",
	VariantEmailField:     "email",
	VariantPasswordField:  "password",
	VariantNumberField:    "number",
	VariantRangeField:     "range",
	VariantSearchField:    "search",
	VariantTelephoneField: "tel",
	VariantPhoneField:     "tel",
	VariantURLField:       "url",
	VariantFileField:      "file",
	VariantHiddenField:    "hidden",
	VariantRadioButton:    "radio",
	VariantSubmit:         "submit",
}

// ParseVariant normalises a variant name ("text-field", "Text_Field").
func ParseVariant(name string) Variant {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	return Variant(normalized)
}

// InputType returns the type attribute for <input> based variants.
func (v Variant) InputType() (string, bool) {
	kind, ok := inputTypes[v]
	return kind, ok
}

// TextLike reports whether the variant renders a single-value control that the
// standard field wrapper can decorate.
func (v Variant) TextLike() bool {
	switch v {
	case VariantTextField, VariantEmailField, VariantPasswordField, VariantNumberField,
		VariantRangeField, VariantSearchField, VariantTelephoneField, VariantPhoneField,
		VariantURLField, VariantFileField, VariantTextArea, VariantSelect, VariantCollectionSelect:
		return true
	default:
		return false
	}
}

// OmitsValue reports variants that never echo the current value back.
func (v Variant) OmitsValue() bool {
	return v == VariantPasswordField || v == VariantFileField
}
