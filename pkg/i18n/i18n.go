// Package i18n resolves the user-visible strings form builders emit (error
// summary heading, cancel caption, submit captions) through a Translator.
// Catalog is the built-in implementation backed by YAML locale files.
package i18n

import (
	"errors"
	"fmt"
	"strings"
)

// Keys looked up by the form builders.
const (
	KeyErrorsHeader  = "bootstrap_forms.errors.header"
	KeyButtonsCancel = "bootstrap_forms.buttons.cancel"
	KeySubmitCreate  = "helpers.submit.create"
	KeySubmitUpdate  = "helpers.submit.update"
)

var (
	// ErrMissingTranslation is returned when no locale provides the key.
	ErrMissingTranslation = errors.New("i18n: missing translation")
	// ErrMissingTranslator is passed to MissingTranslationHandler when no
	// translator is configured.
	ErrMissingTranslator = errors.New("i18n: translator not configured")
)

// Translator resolves a key for a locale. args carry interpolation values,
// usually a single map[string]any.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler decides the text used when translation fails.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// MissingTranslationDefault returns the "default" interpolation value when one
// was supplied (interpolated with the remaining values), otherwise the key.
func MissingTranslationDefault(_ string, key string, args []any, _ error) string {
	params := Params(args...)
	if fallback, ok := params["default"]; ok {
		if text := strings.TrimSpace(fmt.Sprint(fallback)); text != "" {
			return Interpolate(text, params)
		}
	}
	return key
}

// Translate resolves key through t, routing failures to onMissing (or
// MissingTranslationDefault when nil).
func Translate(t Translator, onMissing MissingTranslationHandler, locale, key string, args ...any) string {
	if onMissing == nil {
		onMissing = MissingTranslationDefault
	}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}
	msg, err := t.Translate(locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(locale, key, args, err)
	}
	return msg
}

// Params merges interpolation arguments into a single map. Maps are merged in
// order; a trailing run of name/value pairs is accepted as well.
func Params(args ...any) map[string]any {
	out := make(map[string]any)
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case map[string]any:
			for key, value := range v {
				out[key] = value
			}
		case map[string]string:
			for key, value := range v {
				out[key] = value
			}
		case string:
			if i+1 < len(args) {
				out[v] = args[i+1]
				i++
			}
		}
	}
	return out
}

// Interpolate replaces %{name} placeholders with params values. Unknown
// placeholders are left in place.
func Interpolate(text string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(text, "%{") {
		return text
	}
	var builder strings.Builder
	builder.Grow(len(text))
	for {
		start := strings.Index(text, "%{")
		if start < 0 {
			builder.WriteString(text)
			break
		}
		end := strings.IndexByte(text[start:], '}')
		if end < 0 {
			builder.WriteString(text)
			break
		}
		end += start
		name := text[start+2 : end]
		builder.WriteString(text[:start])
		if value, ok := params[name]; ok {
			builder.WriteString(fmt.Sprint(value))
		} else {
			builder.WriteString(text[start : end+1])
		}
		text = text[end+1:]
	}
	return builder.String()
}
