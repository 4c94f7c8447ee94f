package openapi

import (
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// NewRecord builds a record.Model described by schema. Required properties
// are flagged required, property titles become human names and defaults fill
// values that are not supplied. Errors are added by the caller through the
// returned model.
func NewRecord(schema Schema, values map[string]any, options ...record.ModelOption) *record.Model {
	names := make(map[string]string, len(schema.Properties))
	merged := make(map[string]any, len(schema.Properties)+len(values))
	for _, prop := range schema.Properties {
		if prop.Title != "" {
			names[prop.Name] = prop.Title
		}
		if prop.Default != nil {
			merged[prop.Name] = prop.Default
		}
	}
	for key, value := range values {
		merged[key] = value
	}

	opts := []record.ModelOption{
		record.WithRequired(schema.Required...),
		record.WithHumanNames(names),
		record.WithValues(merged),
	}
	return record.NewModel(schema.ModelName(), append(opts, options...)...)
}
