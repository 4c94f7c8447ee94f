package openapi

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// ErrComponentNotFound is returned when the requested component schema is not
// declared under components.schemas.
var ErrComponentNotFound = errors.New("openapi: component schema not found")

// textAreaThreshold is the maxLength above which strings render as text areas.
const textAreaThreshold = 255

// Schema is an object schema resolved from components.schemas.
type Schema struct {
	Component  string
	Title      string
	Required   []string
	Properties []Property
}

// Property describes one attribute of the schema. Properties are ordered by
// x-order when present, then by name.
type Property struct {
	Name        string
	Title       string
	Type        string
	Format      string
	Description string
	Enum        []any
	MaxLength   *int
	Default     any
	ReadOnly    bool
	order       int
}

// Option configures schema loading.
type Option func(*options)

type options struct {
	validate bool
}

// WithValidation validates the whole document before resolving the component.
func WithValidation() Option {
	return func(o *options) {
		o.validate = true
	}
}

// LoadSchema parses an OpenAPI document (JSON or YAML) and resolves component.
func LoadSchema(ctx context.Context, data []byte, component string, opts ...Option) (Schema, error) {
	if err := ctx.Err(); err != nil {
		return Schema{}, err
	}
	component = strings.TrimSpace(component)
	if component == "" {
		return Schema{}, errors.New("openapi: component name is required")
	}
	if len(data) == 0 {
		return Schema{}, errors.New("openapi: document is empty")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	declared, err := declaresComponent(data, component)
	if err != nil {
		return Schema{}, err
	}
	if !declared {
		return Schema{}, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Schema{}, fmt.Errorf("openapi: load document: %w", err)
	}
	if cfg.validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return Schema{}, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	ref := doc.Components.Schemas[component]
	if ref == nil || ref.Value == nil {
		return Schema{}, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}
	return convertSchema(component, ref.Value), nil
}

// LoadSchemaFS reads the document at path from fsys and resolves component.
func LoadSchemaFS(ctx context.Context, fsys fs.FS, path, component string, opts ...Option) (Schema, error) {
	if fsys == nil {
		return Schema{}, errors.New("openapi: file system is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Schema{}, fmt.Errorf("openapi: read %s: %w", path, err)
	}
	return LoadSchema(ctx, data, component, opts...)
}

// declaresComponent checks components.schemas before handing the document to
// kin-openapi, so a missing component is reported as ErrComponentNotFound.
func declaresComponent(data []byte, component string) (bool, error) {
	var probe struct {
		Components struct {
			Schemas map[string]yaml.Node `yaml:"schemas"`
		} `yaml:"components"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return false, fmt.Errorf("openapi: decode document: %w", err)
	}
	_, ok := probe.Components.Schemas[component]
	return ok, nil
}

func convertSchema(component string, src *openapi3.Schema) Schema {
	schema := Schema{
		Component: component,
		Title:     strings.TrimSpace(src.Title),
	}
	if len(src.Required) > 0 {
		schema.Required = append([]string(nil), src.Required...)
	}

	for name, ref := range src.Properties {
		if ref == nil || ref.Value == nil {
			continue
		}
		schema.Properties = append(schema.Properties, convertProperty(name, ref.Value))
	}
	sort.SliceStable(schema.Properties, func(i, j int) bool {
		left, right := schema.Properties[i], schema.Properties[j]
		if left.order != right.order {
			return left.order < right.order
		}
		return left.Name < right.Name
	})
	return schema
}

func convertProperty(name string, src *openapi3.Schema) Property {
	prop := Property{
		Name:        name,
		Title:       strings.TrimSpace(src.Title),
		Type:        schemaType(src.Type),
		Format:      src.Format,
		Description: strings.TrimSpace(src.Description),
		Default:     src.Default,
		ReadOnly:    src.ReadOnly,
		order:       int(^uint(0) >> 1),
	}
	if len(src.Enum) > 0 {
		prop.Enum = append([]any(nil), src.Enum...)
	}
	if src.MaxLength != nil {
		value := int(*src.MaxLength)
		prop.MaxLength = &value
	}
	if raw, ok := src.Extensions["x-order"]; ok {
		switch v := raw.(type) {
		case float64:
			prop.order = int(v)
		case int:
			prop.order = v
		}
	}
	return prop
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, value := range types.Slice() {
		if value != "null" {
			return value
		}
	}
	return ""
}

// ModelName is the schema title, or the humanized component name.
func (s Schema) ModelName() string {
	if s.Title != "" {
		return s.Title
	}
	return record.Humanize(splitCamel(s.Component))
}

// Property returns the named property.
func (s Schema) Property(name string) (Property, bool) {
	for _, prop := range s.Properties {
		if prop.Name == name {
			return prop, true
		}
	}
	return Property{}, false
}

// Variant picks the control used to edit the property.
func (p Property) Variant() controls.Variant {
	if len(p.Enum) > 0 {
		return controls.VariantSelect
	}
	switch p.Type {
	case "boolean":
		return controls.VariantCheckBox
	case "integer", "number":
		return controls.VariantNumberField
	case "string":
		switch p.Format {
		case "email":
			return controls.VariantEmailField
		case "password":
			return controls.VariantPasswordField
		case "uri", "url":
			return controls.VariantURLField
		case "binary":
			return controls.VariantFileField
		case "textarea":
			return controls.VariantTextArea
		}
		if p.MaxLength != nil && *p.MaxLength > textAreaThreshold {
			return controls.VariantTextArea
		}
	}
	return controls.VariantTextField
}

// Choices lists the enum values as select options.
func (p Property) Choices() []controls.Choice {
	if len(p.Enum) == 0 {
		return nil
	}
	out := make([]controls.Choice, 0, len(p.Enum))
	for _, value := range p.Enum {
		text := controls.FormatValue(value)
		out = append(out, controls.Choice{Text: record.Humanize(text), Value: text})
	}
	return out
}

// splitCamel turns "BlogPost" into "Blog_Post" so Humanize yields "Blog post".
func splitCamel(name string) string {
	var builder strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			builder.WriteByte('_')
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
