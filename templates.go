package bootstrapforms

import (
	"io/fs"

	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/i18n"
)

// EmbeddedTemplates exposes the built-in control templates so callers can
// reuse or extend them without importing the controls package directly.
func EmbeddedTemplates() fs.FS {
	return controls.TemplatesFS()
}

// EmbeddedLocales exposes the bundled locale files.
func EmbeddedLocales() fs.FS {
	return i18n.LocalesFS()
}
