package i18n_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bootstrapforms/pkg/i18n"
)

func TestDefaultCatalog_EmbeddedKeys(t *testing.T) {
	catalog := i18n.Default()

	got, err := catalog.Translate("en", i18n.KeyErrorsHeader, map[string]any{"model": "Post"})
	if err != nil {
		t.Fatalf("translate header: %v", err)
	}
	if got != "Your Post is invalid." {
		t.Fatalf("unexpected header %q", got)
	}

	cancel, err := catalog.Translate("es", i18n.KeyButtonsCancel)
	if err != nil || cancel != "Cancelar" {
		t.Fatalf("expected spanish cancel caption, got %q (err=%v)", cancel, err)
	}
}

func TestCatalog_FallbackChain(t *testing.T) {
	catalog := i18n.NewCatalog()
	catalog.Set("en", "greeting", "Hello")
	catalog.Set("pt", "greeting", "Olá")

	cases := map[string]string{
		"pt-BR": "Olá",
		"pt_BR": "Olá",
		"fr":    "Hello",
		"":      "Hello",
	}
	for locale, want := range cases {
		got, err := catalog.Translate(locale, "greeting")
		if err != nil {
			t.Fatalf("translate %q: %v", locale, err)
		}
		if got != want {
			t.Fatalf("locale %q: want %q, got %q", locale, want, got)
		}
	}

	if _, err := catalog.Translate("en", "missing"); !errors.Is(err, i18n.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestLoadFS_OverlaysEmbeddedDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yml": {Data: []byte("en:\n  bootstrap_forms:\n    buttons:\n      cancel: \"Discard\"\n")},
		"locales/de.yaml": {Data: []byte("de:\n  bootstrap_forms:\n    errors:\n      header: \"%{model} ist ungültig.\"\n")},
		"README.md":       {Data: []byte("ignored")},
	}

	catalog, err := i18n.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}

	if got, _ := catalog.Translate("en", i18n.KeyButtonsCancel); got != "Discard" {
		t.Fatalf("expected override, got %q", got)
	}
	if got, _ := catalog.Translate("en", i18n.KeySubmitCreate, map[string]any{"model": "Post"}); got != "Create Post" {
		t.Fatalf("expected embedded default kept, got %q", got)
	}
	if got, _ := catalog.Translate("de", i18n.KeyErrorsHeader, "model", "Beitrag"); got != "Beitrag ist ungültig." {
		t.Fatalf("expected german header, got %q", got)
	}

	want := []string{"de", "en", "es"}
	if diff := cmp.Diff(want, catalog.Locales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalog_LoadRejectsMalformedLocale(t *testing.T) {
	catalog := i18n.NewCatalog()
	if err := catalog.Load([]byte("en: just a string\n"), "bad.yml"); err == nil {
		t.Fatalf("expected error for scalar locale root")
	}
	if err := catalog.Load([]byte("en: [\n"), "broken.yml"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestTranslate_MissingHandlers(t *testing.T) {
	got := i18n.Translate(nil, nil, "en", "bootstrap_forms.buttons.cancel", map[string]any{"default": "Cancel"})
	if got != "Cancel" {
		t.Fatalf("expected default fallback, got %q", got)
	}

	got = i18n.Translate(nil, nil, "en", "some.key")
	if got != "some.key" {
		t.Fatalf("expected key fallback, got %q", got)
	}

	var seen error
	custom := func(_ string, key string, _ []any, err error) string {
		seen = err
		return "[" + key + "]"
	}
	failing := i18n.TranslatorFunc(func(string, string, ...any) (string, error) {
		return "", i18n.ErrMissingTranslation
	})
	if got := i18n.Translate(failing, custom, "en", "x"); got != "[x]" {
		t.Fatalf("expected custom handler output, got %q", got)
	}
	if !errors.Is(seen, i18n.ErrMissingTranslation) {
		t.Fatalf("expected handler to receive translator error, got %v", seen)
	}
}

func TestInterpolate(t *testing.T) {
	got := i18n.Interpolate("%{a} and %{b} and %{missing} %{", map[string]any{"a": 1, "b": "two"})
	if got != "1 and two and %{missing} %{" {
		t.Fatalf("unexpected interpolation %q", got)
	}
}
