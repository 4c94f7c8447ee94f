// Package bootstrap renders form fields for a bound record using the Bootstrap
// 2 form conventions: every field sits in a div.control-group carrying the
// validation state, followed by a label.control-label and a div.controls that
// holds the control and its decorations (add-ons, inline help, state text,
// block help). ErrorMessages summarises every record error in an alert block.
//
// A FormBuilder holds no mutable state, so one builder can serve concurrent
// calls as long as the record is not mutated meanwhile. Builders constructed
// without control options share one template engine.
package bootstrap

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/i18n"
	"github.com/goliatone/go-bootstrapforms/pkg/markup"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// Controls renders literal control markup. *controls.Set satisfies it.
type Controls interface {
	Render(input controls.Input) (markup.Fragment, error)
}

// Option configures a FormBuilder.
type Option func(*config)

type config struct {
	controls        Controls
	controlOptions  []controls.Option
	translator      i18n.Translator
	onMissing       i18n.MissingTranslationHandler
	locale          string
	sanitizer       *markup.Sanitizer
	submitName      string
	includeCheckbox bool
}

// WithControls injects the control primitives used for every field.
func WithControls(c Controls) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.controls = c
		}
	}
}

// WithControlOptions configures the default controls.Set (templates,
// registry, partials). Ignored when WithControls is supplied.
func WithControlOptions(options ...controls.Option) Option {
	return func(cfg *config) {
		cfg.controlOptions = append(cfg.controlOptions, options...)
	}
}

// WithTheme applies go-theme partial overrides to the default controls.
func WithTheme(selection *theme.RendererConfig) Option {
	return func(cfg *config) {
		if selection == nil {
			return
		}
		cfg.controlOptions = append(cfg.controlOptions, controls.WithTheme(selection))
	}
}

// WithTranslator replaces the embedded i18n catalog.
func WithTranslator(t i18n.Translator) Option {
	return func(cfg *config) {
		if t != nil {
			cfg.translator = t
		}
	}
}

// WithLocale selects the locale passed to the translator.
func WithLocale(locale string) Option {
	return func(cfg *config) {
		cfg.locale = strings.TrimSpace(locale)
	}
}

// WithMissingTranslationHandler customises the text used for missing keys.
func WithMissingTranslationHandler(handler i18n.MissingTranslationHandler) Option {
	return func(cfg *config) {
		cfg.onMissing = handler
	}
}

// WithDecorationPolicy treats decoration strings (add-ons and help text) as
// markup sanitized by policy instead of escaping them. markup.DecorationPolicy
// is a reasonable default.
func WithDecorationPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		cfg.sanitizer = markup.NewSanitizer(policy)
	}
}

// WithSubmitName overrides the name of the submit control ("commit").
func WithSubmitName(name string) Option {
	return func(cfg *config) {
		cfg.submitName = strings.TrimSpace(name)
	}
}

// WithoutCheckboxHidden drops the hidden "0" input that precedes single
// checkboxes.
func WithoutCheckboxHidden() Option {
	return func(cfg *config) {
		cfg.includeCheckbox = false
	}
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *i18n.Catalog
)

func sharedCatalog() *i18n.Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog = i18n.Default()
	})
	return defaultCatalog
}

var (
	defaultControlsOnce sync.Once
	defaultControls     *controls.Set
	defaultControlsErr  error
)

// sharedControls returns the bundled controls.Set. Builders are created per
// record, usually per request, and all of them reuse one template engine.
func sharedControls() (*controls.Set, error) {
	defaultControlsOnce.Do(func() {
		defaultControls, defaultControlsErr = controls.New()
	})
	return defaultControls, defaultControlsErr
}

// FormBuilder renders fields for one record under one object name.
type FormBuilder struct {
	objectName string
	record     record.Record
	cfg        config
}

// New constructs a FormBuilder. objectName prefixes input names
// ("post" -> post[title]) and ids (post_title).
func New(objectName string, rec record.Record, options ...Option) (*FormBuilder, error) {
	cfg := config{
		submitName:      "commit",
		includeCheckbox: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.controls == nil {
		set, err := newControls(cfg.controlOptions)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: configure controls: %w", err)
		}
		cfg.controls = set
	}
	if cfg.translator == nil {
		cfg.translator = sharedCatalog()
	}
	if cfg.onMissing == nil {
		cfg.onMissing = i18n.MissingTranslationDefault
	}

	return &FormBuilder{
		objectName: strings.TrimSpace(objectName),
		record:     rec,
		cfg:        cfg,
	}, nil
}

func newControls(options []controls.Option) (*controls.Set, error) {
	for _, opt := range options {
		if opt != nil {
			return controls.New(options...)
		}
	}
	return sharedControls()
}

// ObjectName returns the prefix used for input names.
func (b *FormBuilder) ObjectName() string {
	return b.objectName
}

// Record returns the bound record.
func (b *FormBuilder) Record() record.Record {
	return b.record
}

// FieldsFor returns a builder for a nested record sharing this builder's
// configuration, with object name parent[name].
func (b *FormBuilder) FieldsFor(name string, rec record.Record) *FormBuilder {
	name = strings.TrimSpace(name)
	objectName := name
	if b.objectName != "" {
		objectName = b.objectName + "[" + name + "]"
	}
	return &FormBuilder{
		objectName: objectName,
		record:     rec,
		cfg:        b.cfg,
	}
}

func (b *FormBuilder) inputName(field string) string {
	if b.objectName == "" {
		return field
	}
	return b.objectName + "[" + field + "]"
}

func (b *FormBuilder) inputID(field string) string {
	sanitized := sanitizeObjectName(b.objectName)
	if sanitized == "" {
		return sanitizeMethodName(field)
	}
	return sanitized + "_" + sanitizeMethodName(field)
}

func (b *FormBuilder) valueID(field, value string) string {
	return b.inputID(field) + "_" + sanitizeValue(value)
}

func (b *FormBuilder) value(field string, opts FieldOptions) any {
	if opts.Value != nil {
		return opts.Value
	}
	if b.record == nil {
		return nil
	}
	return b.record.Value(field)
}

func (b *FormBuilder) humanName(field string) string {
	if b.record != nil {
		if name := b.record.HumanName(field); name != "" {
			return name
		}
	}
	return record.Humanize(field)
}

func (b *FormBuilder) required(field string) bool {
	return b.record != nil && b.record.IsRequired(field)
}

func (b *FormBuilder) translate(key string, params map[string]any) string {
	return i18n.Translate(b.cfg.translator, b.cfg.onMissing, b.cfg.locale, key, params)
}

func (b *FormBuilder) decoration(raw string) markup.Fragment {
	return b.cfg.sanitizer.Fragment(raw)
}

var (
	objectNameSeparators = regexp.MustCompile(`\]\[|[^-a-zA-Z0-9:.]`)
	valueSpaces          = regexp.MustCompile(`[\s.]`)
	valueInvalid         = regexp.MustCompile(`[^-\w]`)
)

// sanitizeObjectName turns "post[author]" into "post_author".
func sanitizeObjectName(name string) string {
	return strings.TrimSuffix(objectNameSeparators.ReplaceAllString(name, "_"), "_")
}

func sanitizeMethodName(name string) string {
	return strings.TrimSuffix(strings.ReplaceAll(name, "?", ""), "_")
}

func sanitizeValue(value string) string {
	value = valueSpaces.ReplaceAllString(value, "_")
	value = valueInvalid.ReplaceAllString(value, "")
	return strings.ToLower(value)
}
