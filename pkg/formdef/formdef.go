// Package formdef loads YAML form definitions and renders them through a
// bootstrap.FormBuilder. A definition names the bound object, seeds the record
// (values, errors, required fields, human names) and lists the fields to
// render in order. Fields can also be derived from an OpenAPI component.
package formdef

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bootstrapforms/pkg/bootstrap"
	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/markup"
	"github.com/goliatone/go-bootstrapforms/pkg/openapi"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// Kinds beyond the plain control variants.
const (
	KindRadioButtons           = "radio_buttons"
	KindCollectionCheckBoxes   = "collection_check_boxes"
	KindCollectionRadioButtons = "collection_radio_buttons"
	KindUneditableInput        = "uneditable_input"
)

// ErrInvalidDefinition wraps structural problems in a definition file.
var ErrInvalidDefinition = errors.New("formdef: invalid definition")

// Definition is the decoded form file.
type Definition struct {
	Object     string            `yaml:"object"`
	Model      string            `yaml:"model"`
	Persisted  bool              `yaml:"persisted"`
	Values     map[string]any    `yaml:"values"`
	Required   []string          `yaml:"required"`
	HumanNames map[string]string `yaml:"human_names"`
	Errors     []ErrorDef        `yaml:"errors"`
	OpenAPI    *SchemaRef        `yaml:"openapi"`
	Fields     []Field           `yaml:"fields"`

	schema *openapi.Schema
}

// ErrorDef is one recorded error. Message is a string or a one-level mapping
// of sub-attribute to message.
type ErrorDef struct {
	Attribute string `yaml:"attribute"`
	Message   any    `yaml:"message"`
}

// SchemaRef points at an OpenAPI document and component.
type SchemaRef struct {
	File      string `yaml:"file"`
	Component string `yaml:"component"`
}

// Field declares one rendered field.
type Field struct {
	Kind         string            `yaml:"kind"`
	Name         string            `yaml:"name"`
	Options      map[string]any    `yaml:"options"`
	Choices      []controls.Choice `yaml:"choices"`
	Items        []any             `yaml:"items"`
	IDAccessor   string            `yaml:"id_accessor"`
	NameAccessor string            `yaml:"name_accessor"`
}

// Load decodes the definition at path within fsys.
func Load(fsys fs.FS, path string) (*Definition, error) {
	if fsys == nil {
		return nil, errors.New("formdef: file system is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("formdef: read %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("formdef: %s: %w", path, err)
	}
	return def, nil
}

// Parse decodes a definition from YAML.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

func (d *Definition) validate() error {
	d.Object = strings.TrimSpace(d.Object)
	if d.Object == "" {
		return fmt.Errorf("%w: object is required", ErrInvalidDefinition)
	}
	if d.OpenAPI != nil && (d.OpenAPI.File == "" || d.OpenAPI.Component == "") {
		return fmt.Errorf("%w: openapi needs file and component", ErrInvalidDefinition)
	}
	if len(d.Fields) == 0 && d.OpenAPI == nil {
		return fmt.Errorf("%w: no fields declared", ErrInvalidDefinition)
	}
	for idx, field := range d.Fields {
		kind := strings.TrimSpace(field.Kind)
		if kind == "" {
			return fmt.Errorf("%w: field %d has no kind", ErrInvalidDefinition, idx)
		}
		if field.Name == "" && controls.ParseVariant(kind) != controls.VariantSubmit {
			return fmt.Errorf("%w: field %d (%s) has no name", ErrInvalidDefinition, idx, kind)
		}
	}
	return nil
}

// Resolve loads the referenced OpenAPI component from fsys. Fields are derived
// from its properties when the definition declares none.
func (d *Definition) Resolve(ctx context.Context, fsys fs.FS) error {
	if d.OpenAPI == nil {
		return nil
	}
	schema, err := openapi.LoadSchemaFS(ctx, fsys, d.OpenAPI.File, d.OpenAPI.Component)
	if err != nil {
		return fmt.Errorf("formdef: resolve schema: %w", err)
	}
	d.schema = &schema
	if len(d.Fields) == 0 {
		d.Fields = FieldsFromSchema(schema)
	}
	return nil
}

// FieldsFromSchema lists one field per writable property followed by a submit.
func FieldsFromSchema(schema openapi.Schema) []Field {
	fields := make([]Field, 0, len(schema.Properties)+1)
	for _, prop := range schema.Properties {
		if prop.ReadOnly {
			continue
		}
		field := Field{
			Kind:    string(prop.Variant()),
			Name:    prop.Name,
			Choices: prop.Choices(),
		}
		if prop.Description != "" {
			field.Options = map[string]any{bootstrap.OptHelpBlock: prop.Description}
		}
		fields = append(fields, field)
	}
	return append(fields, Field{Kind: string(controls.VariantSubmit)})
}

// Record builds the model described by the definition.
func (d *Definition) Record() (*record.Model, error) {
	options := []record.ModelOption{
		record.WithValues(d.Values),
		record.WithRequired(d.Required...),
		record.WithHumanNames(d.HumanNames),
		record.WithPersisted(d.Persisted),
	}

	var model *record.Model
	if d.schema != nil {
		// model, when set, overrides the schema title.
		model = openapi.NewRecord(*d.schema, nil, append(options, record.WithModelName(d.Model))...)
	} else {
		name := d.Model
		if name == "" {
			name = d.Object
		}
		model = record.NewModel(name, options...)
	}

	for idx, item := range d.Errors {
		if item.Message == nil {
			return nil, fmt.Errorf("%w: error %d (%s) has no message", ErrInvalidDefinition, idx, item.Attribute)
		}
		model.Add(item.Attribute, item.Message)
	}
	return model, nil
}

// Render writes the error summary followed by every field in declaration
// order, one per line.
func (d *Definition) Render(builder *bootstrap.FormBuilder) (markup.Fragment, error) {
	if builder == nil {
		return "", errors.New("formdef: builder is nil")
	}

	summary, err := builder.ErrorMessages()
	if err != nil {
		return "", fmt.Errorf("formdef: error summary: %w", err)
	}
	parts := []markup.Fragment{summary}
	for _, field := range d.Fields {
		rendered, err := renderField(builder, field)
		if err != nil {
			return "", fmt.Errorf("formdef: field %q: %w", field.Name, err)
		}
		parts = append(parts, rendered)
	}
	return markup.Join("\n", parts...), nil
}

func renderField(builder *bootstrap.FormBuilder, field Field) (markup.Fragment, error) {
	opts := bootstrap.ParseOptions(field.Options)
	kind := strings.ToLower(strings.TrimSpace(field.Kind))

	switch kind {
	case KindRadioButtons:
		return builder.RadioButtons(field.Name, field.Choices, opts)
	case KindCollectionCheckBoxes:
		return builder.CollectionCheckBoxes(field.Name, field.Items, field.idAccessor(), field.nameAccessor(), opts)
	case KindCollectionRadioButtons:
		return builder.CollectionRadioButtons(field.Name, field.Items, field.idAccessor(), field.nameAccessor(), opts)
	case KindUneditableInput:
		return builder.UneditableInput(field.Name, opts)
	}

	switch variant := controls.ParseVariant(kind); variant {
	case controls.VariantSelect:
		return builder.Select(field.Name, field.Choices, opts)
	case controls.VariantCollectionSelect:
		return builder.CollectionSelect(field.Name, field.Items, field.idAccessor(), field.nameAccessor(), opts)
	case controls.VariantSubmit:
		return builder.Submit(controls.FormatValue(opts.Value), opts)
	default:
		return builder.Field(variant, field.Name, opts)
	}
}

func (f Field) idAccessor() string {
	if f.IDAccessor != "" {
		return f.IDAccessor
	}
	return "id"
}

func (f Field) nameAccessor() string {
	if f.NameAccessor != "" {
		return f.NameAccessor
	}
	return "name"
}

// SetValue overrides a record value before Record is called.
func (d *Definition) SetValue(field string, value any) {
	if d.Values == nil {
		d.Values = make(map[string]any)
	}
	d.Values[field] = value
}

// Editable lists the fields whose value can be entered interactively: text
// inputs, text areas, single checkboxes, and selects or radio groups with
// declared choices.
func (d *Definition) Editable() []Field {
	var out []Field
	for _, field := range d.Fields {
		kind := strings.ToLower(strings.TrimSpace(field.Kind))
		if kind == KindRadioButtons {
			if len(field.Choices) > 0 {
				out = append(out, field)
			}
			continue
		}
		switch variant := controls.ParseVariant(kind); {
		case variant == controls.VariantSelect:
			if len(field.Choices) > 0 {
				out = append(out, field)
			}
		case variant == controls.VariantCheckBox:
			out = append(out, field)
		case variant == controls.VariantCollectionSelect:
		case variant.TextLike() && !variant.OmitsValue():
			out = append(out, field)
		}
	}
	return out
}
