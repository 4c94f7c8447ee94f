package bootstrap

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/i18n"
	"github.com/goliatone/go-bootstrapforms/pkg/markup"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// Field renders any variant through the matching helper. Variants that need
// more than a field name (radio groups, selects with choices) render with
// empty choices; call their dedicated helpers instead.
func (b *FormBuilder) Field(variant controls.Variant, field string, opts FieldOptions) (markup.Fragment, error) {
	variant = controls.ParseVariant(string(variant))
	switch variant {
	case controls.VariantCheckBox:
		return b.CheckBox(field, opts)
	case controls.VariantRadioButton:
		return b.RadioButtons(field, nil, opts)
	case controls.VariantSubmit:
		return b.Submit(controls.FormatValue(opts.Value), opts)
	case controls.VariantHiddenField:
		return b.HiddenField(field, opts)
	case controls.VariantSelect, controls.VariantCollectionSelect:
		return b.Select(field, nil, opts)
	case controls.VariantButton:
		return "", fmt.Errorf("bootstrap: variant %q has no field form", variant)
	}
	return b.decorated(field, opts, b.baseInput(variant, field, opts))
}

// TextField renders a decorated text input.
func (b *FormBuilder) TextField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantTextField, field, opts)
}

// EmailField renders a decorated email input.
func (b *FormBuilder) EmailField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantEmailField, field, opts)
}

// PasswordField renders a password input. The record value is never echoed.
func (b *FormBuilder) PasswordField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantPasswordField, field, opts)
}

// NumberField renders a decorated number input.
func (b *FormBuilder) NumberField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantNumberField, field, opts)
}

// RangeField renders a decorated range input.
func (b *FormBuilder) RangeField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantRangeField, field, opts)
}

// SearchField renders a decorated search input.
func (b *FormBuilder) SearchField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantSearchField, field, opts)
}

// TelephoneField renders a decorated tel input.
func (b *FormBuilder) TelephoneField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantTelephoneField, field, opts)
}

// PhoneField is an alias of TelephoneField.
func (b *FormBuilder) PhoneField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantPhoneField, field, opts)
}

// URLField renders a decorated url input.
func (b *FormBuilder) URLField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantURLField, field, opts)
}

// FileField renders a decorated file input.
func (b *FormBuilder) FileField(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantFileField, field, opts)
}

// TextArea renders a decorated textarea holding the current value.
func (b *FormBuilder) TextArea(field string, opts FieldOptions) (markup.Fragment, error) {
	return b.Field(controls.VariantTextArea, field, opts)
}

// HiddenField renders the bare control without any chrome.
func (b *FormBuilder) HiddenField(field string, opts FieldOptions) (markup.Fragment, error) {
	control, err := b.cfg.controls.Render(b.baseInput(controls.VariantHiddenField, field, opts))
	if err != nil {
		return "", fmt.Errorf("bootstrap: render hidden field %q: %w", field, err)
	}
	return control, nil
}

// Select renders a select over choices. The option matching the current value
// is marked selected.
func (b *FormBuilder) Select(field string, choices []controls.Choice, opts FieldOptions) (markup.Fragment, error) {
	input := b.baseInput(controls.VariantSelect, field, opts)
	input.Choices = choices
	input.Prompt = opts.Prompt
	return b.decorated(field, opts, input)
}

// CollectionSelect builds the choices of a select from items, reading the
// option value through idAccessor and its text through nameAccessor.
func (b *FormBuilder) CollectionSelect(field string, items []any, idAccessor, nameAccessor string, opts FieldOptions) (markup.Fragment, error) {
	choices := make([]controls.Choice, 0, len(items))
	for _, item := range items {
		id, name, err := collectionItem(item, idAccessor, nameAccessor)
		if err != nil {
			return "", fmt.Errorf("bootstrap: collection select %q: %w", field, err)
		}
		choices = append(choices, controls.Choice{Text: name, Value: id})
	}
	input := b.baseInput(controls.VariantCollectionSelect, field, opts)
	input.Choices = choices
	input.Prompt = opts.Prompt
	return b.decorated(field, opts, input)
}

// CheckBox renders a single checkbox. The label wraps the control, which
// precedes the label text; there is no control-label.
func (b *FormBuilder) CheckBox(field string, opts FieldOptions) (markup.Fragment, error) {
	v, err := b.validationState(field, opts)
	if err != nil {
		return "", err
	}

	input := b.baseInput(controls.VariantCheckBox, field, opts)
	input.Value = nil
	input.Checked = truthy(b.value(field, opts))
	input.IncludeHidden = b.cfg.includeCheckbox
	control, err := b.cfg.controls.Render(input)
	if err != nil {
		return "", fmt.Errorf("bootstrap: render check box %q: %w", field, err)
	}

	content := markup.Concat(control, markup.Text(b.labelText(field, opts)))
	label := markup.Tag("label",
		markup.Attrs(
			"class", markup.Classes("checkbox", b.requiredClass(field)),
			"for", input.ID,
		),
		b.extras(opts, v, content),
	)
	return controlGroup(v, inputDiv(opts, label)), nil
}

// RadioButtons renders one label.radio per choice, joined by a single space.
// The decorations are emitted once, around the whole group.
func (b *FormBuilder) RadioButtons(field string, choices []controls.Choice, opts FieldOptions) (markup.Fragment, error) {
	v, err := b.validationState(field, opts)
	if err != nil {
		return "", err
	}

	current := controls.FormatValue(b.value(field, opts))
	attrs := opts.Attrs.Without("id")
	items := make([]markup.Fragment, 0, len(choices))
	for _, choice := range choices {
		id := b.valueID(field, choice.Value)
		control, err := b.cfg.controls.Render(controls.Input{
			Variant: controls.VariantRadioButton,
			Name:    b.inputName(field),
			ID:      id,
			Value:   choice.Value,
			Checked: choice.Selected || (current != "" && current == choice.Value),
			Attrs:   attrs.Clone(),
		})
		if err != nil {
			return "", fmt.Errorf("bootstrap: render radio %q: %w", field, err)
		}
		items = append(items, markup.Tag("label",
			markup.Attrs("class", markup.Classes("radio", b.requiredClass(field)), "for", id),
			control, markup.Text(choice.Text),
		))
	}

	group := markup.Join(" ", items...)
	return controlGroup(v, b.labelField(field, opts), inputDiv(opts, b.extras(opts, v, group))), nil
}

// CollectionCheckBoxes renders one checkbox per item. Items whose id is part
// of the current value are checked. Ids take the form object_attribute_id and
// the submitted name is object[attribute][].
func (b *FormBuilder) CollectionCheckBoxes(field string, items []any, idAccessor, nameAccessor string, opts FieldOptions) (markup.Fragment, error) {
	selected := make(map[string]struct{})
	for _, value := range flatten(b.value(field, opts)) {
		selected[controls.FormatValue(value)] = struct{}{}
	}
	return b.collection(field, items, idAccessor, nameAccessor, opts, collectionKind{
		variant: controls.VariantCheckBox,
		class:   "checkbox",
		name:    b.inputName(field) + "[]",
		checked: func(id string) bool {
			_, ok := selected[id]
			return ok
		},
	})
}

// CollectionRadioButtons renders one radio per item. The item whose id equals
// the current value is checked.
func (b *FormBuilder) CollectionRadioButtons(field string, items []any, idAccessor, nameAccessor string, opts FieldOptions) (markup.Fragment, error) {
	current := controls.FormatValue(b.value(field, opts))
	return b.collection(field, items, idAccessor, nameAccessor, opts, collectionKind{
		variant: controls.VariantRadioButton,
		class:   "radio",
		name:    b.inputName(field),
		checked: func(id string) bool {
			return current != "" && id == current
		},
	})
}

type collectionKind struct {
	variant controls.Variant
	class   string
	name    string
	checked func(id string) bool
}

func (b *FormBuilder) collection(field string, items []any, idAccessor, nameAccessor string, opts FieldOptions, kind collectionKind) (markup.Fragment, error) {
	v, err := b.validationState(field, opts)
	if err != nil {
		return "", err
	}

	labelClass := kind.class
	if opts.Inline {
		labelClass = markup.Classes(kind.class, "inline")
	}
	attrs := opts.Attrs.Without("id")

	rendered := make([]markup.Fragment, 0, len(items))
	for _, item := range items {
		id, name, err := collectionItem(item, idAccessor, nameAccessor)
		if err != nil {
			return "", fmt.Errorf("bootstrap: collection %q: %w", field, err)
		}
		input := controls.Input{
			Variant: kind.variant,
			Name:    kind.name,
			ID:      b.inputID(field) + "_" + id,
			Value:   id,
			Checked: kind.checked(id),
			Attrs:   attrs.Clone(),
		}
		if kind.variant == controls.VariantCheckBox {
			input.CheckedValue = id
		}
		control, err := b.cfg.controls.Render(input)
		if err != nil {
			return "", fmt.Errorf("bootstrap: render collection %q: %w", field, err)
		}
		rendered = append(rendered, markup.Tag("label",
			markup.Attrs("class", labelClass),
			control,
			markup.Tag("span", nil, markup.Text(name)),
		))
	}

	controlsDiv := markup.Tag("div", markup.Attrs("class", "controls"), markup.Join(" ", rendered...))
	return controlGroup(v, b.labelField(field, opts), b.extras(opts, v, controlsDiv)), nil
}

// UneditableInput shows the current value (or the Value override) in a
// read-only span.
func (b *FormBuilder) UneditableInput(field string, opts FieldOptions) (markup.Fragment, error) {
	v, err := b.validationState(field, opts)
	if err != nil {
		return "", err
	}
	span := markup.Tag("span",
		markup.Attrs("class", "uneditable-input"),
		markup.Text(controls.FormatValue(b.value(field, opts))),
	)
	return controlGroup(v, b.labelField(field, opts), inputDiv(opts, b.extras(opts, v, span))), nil
}

// Submit renders div.form-actions holding the primary submit control and one
// reset button. The submit class is always "btn btn-primary". An empty value
// falls back to the localized create or update caption.
func (b *FormBuilder) Submit(value string, opts FieldOptions) (markup.Fragment, error) {
	if value == "" {
		value = b.submitCaption()
	}

	attrs := opts.Attrs.Without("class", "name", "value", "type").Set("class", "btn btn-primary")
	submit, err := b.cfg.controls.Render(controls.Input{
		Variant: controls.VariantSubmit,
		Name:    b.cfg.submitName,
		Value:   value,
		Attrs:   attrs,
	})
	if err != nil {
		return "", fmt.Errorf("bootstrap: render submit: %w", err)
	}

	cancel, err := b.cfg.controls.Render(controls.Input{
		Variant: controls.VariantButton,
		Text:    b.translate(i18n.KeyButtonsCancel, nil),
		Attrs:   markup.Attrs("type", "reset", "class", "btn cancel"),
	})
	if err != nil {
		return "", fmt.Errorf("bootstrap: render cancel: %w", err)
	}

	return markup.Tag("div", markup.Attrs("class", "form-actions"), markup.Join(" ", submit, cancel)), nil
}

func (b *FormBuilder) submitCaption() string {
	key := i18n.KeySubmitCreate
	if persister, ok := b.record.(record.Persister); ok && persister.Persisted() {
		key = i18n.KeySubmitUpdate
	}
	model := ""
	if b.record != nil {
		model = b.record.ModelName()
	}
	return b.translate(key, map[string]any{"model": model})
}

// decorated renders input inside the standard chrome: control-group, label,
// controls and decorations.
func (b *FormBuilder) decorated(field string, opts FieldOptions, input controls.Input) (markup.Fragment, error) {
	v, err := b.validationState(field, opts)
	if err != nil {
		return "", err
	}
	control, err := b.cfg.controls.Render(input)
	if err != nil {
		return "", fmt.Errorf("bootstrap: render %s %q: %w", input.Variant, field, err)
	}
	return controlGroup(v, b.labelField(field, opts), inputDiv(opts, b.extras(opts, v, control))), nil
}

func (b *FormBuilder) baseInput(variant controls.Variant, field string, opts FieldOptions) controls.Input {
	return controls.Input{
		Variant: variant,
		Name:    b.inputName(field),
		ID:      b.elementID(field, opts),
		Value:   b.value(field, opts),
		Attrs:   opts.Attrs.Without("id"),
	}
}

// elementID honours an explicit id attribute so the label keeps pointing at
// the control.
func (b *FormBuilder) elementID(field string, opts FieldOptions) string {
	if id, ok := opts.Attrs.Get("id"); ok && id != "" {
		return id
	}
	return b.inputID(field)
}

func collectionItem(item any, idAccessor, nameAccessor string) (string, string, error) {
	id, err := record.Attribute(item, idAccessor)
	if err != nil {
		return "", "", err
	}
	name, err := record.Attribute(item, nameAccessor)
	if err != nil {
		return "", "", err
	}
	return controls.FormatValue(id), controls.FormatValue(name), nil
}

// flatten expands nested slices and arrays of any element type. Byte
// sequences ([]byte, [16]byte ids) stay whole.
func flatten(value any) []any {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return []any{value}
		}
	default:
		return []any{value}
	}
	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out = append(out, flatten(rv.Index(i).Interface())...)
	}
	return out
}
