package controls

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-bootstrapforms/pkg/markup"
)

const templatePrefix = "templates/"

// Partial keys consulted in ComponentData.Partials before falling back to the
// bundled templates.
const (
	PartialInput    = "forms.input"
	PartialTextarea = "forms.textarea"
	PartialSelect   = "forms.select"
	PartialCheckbox = "forms.checkbox"
	PartialRadio    = "forms.radio"
	PartialButton   = "forms.button"
)

// NewDefaultRegistry constructs a registry with every built-in variant.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	input := Descriptor{Renderer: templateRenderer(PartialInput, templatePrefix+"input.tmpl", inputPayload)}
	for _, variant := range []Variant{
		VariantTextField, VariantEmailField, VariantPasswordField, VariantNumberField,
		VariantRangeField, VariantSearchField, VariantTelephoneField, VariantPhoneField,
		VariantURLField, VariantFileField, VariantHiddenField, VariantSubmit,
	} {
		registry.MustRegister(variant, input)
	}

	registry.MustRegister(VariantRadioButton, Descriptor{
		Renderer: templateRenderer(PartialRadio, templatePrefix+"input.tmpl", inputPayload),
	})
	registry.MustRegister(VariantCheckBox, Descriptor{
		Renderer: templateRenderer(PartialCheckbox, templatePrefix+"checkbox.tmpl", checkboxPayload),
	})
	registry.MustRegister(VariantTextArea, Descriptor{
		Renderer: templateRenderer(PartialTextarea, templatePrefix+"textarea.tmpl", textareaPayload),
	})
	selectDescriptor := Descriptor{
		Renderer: templateRenderer(PartialSelect, templatePrefix+"select.tmpl", selectPayload),
	}
	registry.MustRegister(VariantSelect, selectDescriptor)
	registry.MustRegister(VariantCollectionSelect, selectDescriptor)
	registry.MustRegister(VariantButton, Descriptor{
		Renderer: templateRenderer(PartialButton, templatePrefix+"button.tmpl", buttonPayload),
	})

	return registry
}

type payloadFunc func(input Input) (map[string]any, error)

func templateRenderer(partialKey, templateName string, payload payloadFunc) Renderer {
	return func(buf *bytes.Buffer, input Input, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("controls: template renderer not configured for %q", templateName)
		}

		resolvedTemplate := templateName
		if data.Partials != nil {
			if candidate := strings.TrimSpace(data.Partials[partialKey]); candidate != "" {
				resolvedTemplate = candidate
			}
		}

		values, err := payload(input)
		if err != nil {
			return err
		}
		rendered, err := data.Template.Render(resolvedTemplate, values)
		if err != nil {
			return fmt.Errorf("controls: render template %q: %w", resolvedTemplate, err)
		}
		buf.WriteString(strings.TrimRight(rendered, "\r\n"))
		return nil
	}
}

func inputPayload(input Input) (map[string]any, error) {
	kind, ok := input.Variant.InputType()
	if !ok {
		return nil, fmt.Errorf("controls: variant %q is not an input", input.Variant)
	}

	attrs := markup.Attrs("type", kind)
	switch {
	case input.Variant == VariantSubmit:
		attrs = attrs.Set("name", input.Name)
		attrs = attrs.Set("value", FormatValue(input.Value))
	case input.Variant == VariantRadioButton:
		attrs = attrs.Set("value", FormatValue(input.Value))
		attrs = attrs.Set("name", input.Name)
	case input.Variant.OmitsValue():
		attrs = attrs.Set("name", input.Name)
	default:
		if value := FormatValue(input.Value); value != "" {
			attrs = attrs.Set("value", value)
		}
		attrs = attrs.Set("name", input.Name)
	}
	if input.ID != "" {
		attrs = attrs.Set("id", input.ID)
	}
	attrs = attrs.Merge(input.Attrs)
	if input.Variant == VariantRadioButton && input.Checked {
		attrs = attrs.Set("checked", "checked")
	}
	return map[string]any{"attrs": withoutEmptyNames(attrs)}, nil
}

func checkboxPayload(input Input) (map[string]any, error) {
	checkedValue := input.CheckedValue
	if checkedValue == "" {
		checkedValue = "1"
	}

	attrs := markup.Attrs("type", "checkbox", "value", checkedValue, "name", input.Name)
	if input.ID != "" {
		attrs = attrs.Set("id", input.ID)
	}
	attrs = attrs.Merge(input.Attrs)
	if input.Checked {
		attrs = attrs.Set("checked", "checked")
	}

	payload := map[string]any{"attrs": withoutEmptyNames(attrs)}
	if input.IncludeHidden {
		unchecked := input.UncheckedValue
		if unchecked == "" {
			unchecked = "0"
		}
		payload["hidden"] = markup.Attrs("name", input.Name, "type", "hidden", "value", unchecked)
	}
	return payload, nil
}

func textareaPayload(input Input) (map[string]any, error) {
	attrs := markup.Attrs("name", input.Name)
	if input.ID != "" {
		attrs = attrs.Set("id", input.ID)
	}
	attrs = attrs.Merge(input.Attrs)
	return map[string]any{
		"attrs": withoutEmptyNames(attrs),
		"value": FormatValue(input.Value),
	}, nil
}

func selectPayload(input Input) (map[string]any, error) {
	attrs := markup.Attrs("name", input.Name)
	if input.ID != "" {
		attrs = attrs.Set("id", input.ID)
	}
	attrs = attrs.Merge(input.Attrs)

	current := FormatValue(input.Value)
	choices := make([]Choice, 0, len(input.Choices))
	for _, choice := range input.Choices {
		choice.Selected = choice.Selected || (current != "" && choice.Value == current)
		choices = append(choices, choice)
	}
	return map[string]any{
		"attrs":   withoutEmptyNames(attrs),
		"choices": choices,
		"prompt":  input.Prompt,
	}, nil
}

func buttonPayload(input Input) (map[string]any, error) {
	attrs := markup.Attrs("name", input.Name, "type", "button")
	if input.ID != "" {
		attrs = attrs.Set("id", input.ID)
	}
	attrs = attrs.Merge(input.Attrs)
	text := input.Text
	if text == "" {
		text = FormatValue(input.Value)
	}
	return map[string]any{
		"attrs": withoutEmptyNames(attrs),
		"text":  text,
	}, nil
}

func withoutEmptyNames(attrs markup.Attributes) markup.Attributes {
	out := make(markup.Attributes, 0, len(attrs))
	for _, attr := range attrs {
		if attr.Name == "" {
			continue
		}
		if attr.Name == "name" && attr.Value == "" {
			continue
		}
		out = append(out, attr)
	}
	return out
}
