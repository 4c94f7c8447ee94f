// Package bootstrapforms is the top-level entry point: it re-exports the form
// builder types and offers one-call helpers for rendering a YAML definition.
package bootstrapforms

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-bootstrapforms/pkg/bootstrap"
	"github.com/goliatone/go-bootstrapforms/pkg/formdef"
	"github.com/goliatone/go-bootstrapforms/pkg/markup"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// FormBuilder aliases bootstrap.FormBuilder.
type FormBuilder = bootstrap.FormBuilder

// FieldOptions aliases bootstrap.FieldOptions.
type FieldOptions = bootstrap.FieldOptions

// Option aliases bootstrap.Option.
type Option = bootstrap.Option

// Record aliases record.Record, the capability the builder queries.
type Record = record.Record

// Fragment aliases markup.Fragment.
type Fragment = markup.Fragment

// NewFormBuilder exposes the builder constructor from the top-level module.
func NewFormBuilder(objectName string, rec Record, options ...Option) (*FormBuilder, error) {
	return bootstrap.New(objectName, rec, options...)
}

// RenderDefinition loads the definition at path within fsys, resolves any
// OpenAPI reference against the same fsys, and renders it.
func RenderDefinition(ctx context.Context, fsys fs.FS, path string, options ...Option) (Fragment, error) {
	def, err := formdef.Load(fsys, path)
	if err != nil {
		return "", err
	}
	if err := def.Resolve(ctx, fsys); err != nil {
		return "", err
	}
	rec, err := def.Record()
	if err != nil {
		return "", err
	}
	builder, err := bootstrap.New(def.Object, rec, options...)
	if err != nil {
		return "", fmt.Errorf("bootstrapforms: %w", err)
	}
	return def.Render(builder)
}
