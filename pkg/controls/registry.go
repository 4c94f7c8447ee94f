// Package controls provides the literal input primitives (text inputs,
// selects, checkboxes, buttons) that form builders wrap in layout markup.
// Primitives are looked up by Variant in a Registry; the defaults render
// embedded pongo2 templates through a template.TemplateRenderer and honour
// theme partial overrides.
package controls

import (
	"bytes"
	"fmt"
	"slices"
	"sync"

	rendertemplate "github.com/goliatone/go-bootstrapforms/pkg/render/template"
)

// Renderer writes the markup for one resolved control into buf.
type Renderer func(buf *bytes.Buffer, input Input, data ComponentData) error

// ComponentData carries the helpers renderers may use.
type ComponentData struct {
	Template rendertemplate.TemplateRenderer
	// Partials maps partial keys ("forms.input") to template names that
	// replace the bundled template.
	Partials map[string]string
}

// Descriptor bundles a renderer with its registered name.
type Descriptor struct {
	Name     Variant
	Renderer Renderer
}

// Registry tracks control descriptors keyed by variant. Callers can register
// new variants or override defaults.
type Registry struct {
	mu       sync.RWMutex
	controls map[Variant]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		controls: make(map[Variant]Descriptor),
	}
}

// Clone returns a copy that can be mutated independently.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.controls {
		cloned.controls[name] = descriptor
	}
	return cloned
}

// Register associates a renderer with variant. Existing entries are replaced.
func (r *Registry) Register(variant Variant, descriptor Descriptor) error {
	if variant = ParseVariant(string(variant)); variant == "" {
		return fmt.Errorf("controls: variant is required")
	}
	if descriptor.Renderer == nil {
		return fmt.Errorf("controls: renderer for %q is nil", variant)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = variant
	r.controls[variant] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error.
func (r *Registry) MustRegister(variant Variant, descriptor Descriptor) {
	if err := r.Register(variant, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches the descriptor registered for variant.
func (r *Registry) Descriptor(variant Variant) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.controls[ParseVariant(string(variant))]
	return descriptor, ok
}

// Variants returns the registered variants sorted by name.
func (r *Registry) Variants() []Variant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Variant, 0, len(r.controls))
	for variant := range r.controls {
		out = append(out, variant)
	}
	slices.Sort(out)
	return out
}
