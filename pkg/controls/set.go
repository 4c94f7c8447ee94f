package controls

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bootstrapforms/pkg/markup"
	rendertemplate "github.com/goliatone/go-bootstrapforms/pkg/render/template"
	"github.com/goliatone/go-bootstrapforms/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the bundled control templates so callers can copy or
// extend them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// Option configures a Set.
type Option func(*config)

type config struct {
	registry         *Registry
	templateFS       fs.FS
	templatesDir     string
	templateRenderer rendertemplate.TemplateRenderer
	partials         map[string]string
}

// WithRegistry replaces the default registry.
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithTemplatesFS supplies an alternate template bundle. Template names must
// match the bundled layout (templates/input.tmpl, ...).
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir layers a directory on disk over the template bundle. A
// template present in the directory shadows the bundled one of the same name
// (templates/input.tmpl, ...); anything missing falls back to the bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPartials overrides bundled templates by partial key (PartialInput, ...).
// A value is either a template name or inline pongo2 source.
func WithPartials(partials map[string]string) Option {
	return func(cfg *config) {
		if len(partials) == 0 {
			return
		}
		if cfg.partials == nil {
			cfg.partials = make(map[string]string, len(partials))
		}
		for key, value := range partials {
			if key = strings.TrimSpace(key); key != "" {
				cfg.partials[key] = strings.TrimSpace(value)
			}
		}
	}
}

// WithTheme applies the partial overrides resolved for a go-theme selection.
func WithTheme(cfg *theme.RendererConfig) Option {
	if cfg == nil {
		return nil
	}
	return WithPartials(cfg.Partials)
}

// Set renders controls by looking up the variant in its registry.
type Set struct {
	registry  *Registry
	templates rendertemplate.TemplateRenderer
	partials  map[string]string
}

// New constructs a Set with the bundled templates and default registry unless
// overridden.
func New(options ...Option) (*Set, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.registry == nil {
		cfg.registry = NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templatesDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("controls: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Set{
		registry:  cfg.registry,
		templates: renderer,
		partials:  cfg.partials,
	}, nil
}

// Render produces the literal control markup for input.
func (s *Set) Render(input Input) (markup.Fragment, error) {
	if s == nil || s.registry == nil {
		return "", fmt.Errorf("controls: set is not configured")
	}
	descriptor, ok := s.registry.Descriptor(input.Variant)
	if !ok {
		return "", fmt.Errorf("controls: variant %q not registered", input.Variant)
	}

	var buf bytes.Buffer
	data := ComponentData{Template: s.templates, Partials: s.partials}
	if err := descriptor.Renderer(&buf, input, data); err != nil {
		return "", fmt.Errorf("controls: render %q for %q: %w", input.Variant, input.Name, err)
	}
	return markup.Raw(buf.String()), nil
}

// Registry exposes the registry backing the set.
func (s *Set) Registry() *Registry {
	return s.registry
}
