package template

import (
	"io"
)

// TemplateRenderer is the contract control renderers rely on to turn a named
// template (or inline template content) plus data into markup. Render picks
// between the two based on whether name looks like template source.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
