package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yml
var embeddedLocales embed.FS

// LocalesFS exposes the bundled locale files (locales/*.yml) so callers can
// copy them as a starting point for translations.
func LocalesFS() fs.FS {
	return embeddedLocales
}

// DefaultLocale is used when a lookup names no locale or the requested locale
// lacks the key.
const DefaultLocale = "en"

// Catalog stores flattened messages per locale. Files follow the Rails layout:
// a root key per locale with nested message keys underneath.
//
//	en:
//	  bootstrap_forms:
//	    errors:
//	      header: "Your %{model} is invalid."
type Catalog struct {
	mu            sync.RWMutex
	defaultLocale string
	messages      map[string]map[string]string
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithDefaultLocale overrides the fallback locale.
func WithDefaultLocale(locale string) CatalogOption {
	return func(c *Catalog) {
		if locale = normalizeLocale(locale); locale != "" {
			c.defaultLocale = locale
		}
	}
}

// NewCatalog constructs an empty catalog.
func NewCatalog(options ...CatalogOption) *Catalog {
	c := &Catalog{
		defaultLocale: DefaultLocale,
		messages:      make(map[string]map[string]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Default returns a catalog seeded with the embedded locale files.
func Default(options ...CatalogOption) *Catalog {
	c := NewCatalog(options...)
	if err := c.LoadFS(embeddedLocales); err != nil {
		panic(fmt.Errorf("i18n: load embedded locales: %w", err))
	}
	return c
}

// LoadFS builds a catalog from the embedded defaults overlaid with every
// .yml/.yaml file found in fsys.
func LoadFS(fsys fs.FS, options ...CatalogOption) (*Catalog, error) {
	c := Default(options...)
	if fsys == nil {
		return c, nil
	}
	if err := c.LoadFS(fsys); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFS walks fsys and merges every locale file into the catalog. Later files
// override earlier keys.
func (c *Catalog) LoadFS(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isLocaleFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("i18n: read %s: %w", path, err)
		}
		return c.Load(data, path)
	})
}

// Load merges one YAML document. source only decorates errors.
func (c *Catalog) Load(data []byte, source string) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("i18n: parse %s: %w", source, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for rawLocale, tree := range doc {
		locale := normalizeLocale(rawLocale)
		if locale == "" {
			return fmt.Errorf("i18n: %s defines an empty locale", source)
		}
		nested, ok := tree.(map[string]any)
		if !ok {
			return fmt.Errorf("i18n: %s: locale %q must hold a mapping, got %T", source, rawLocale, tree)
		}
		dest := c.messages[locale]
		if dest == nil {
			dest = make(map[string]string)
			c.messages[locale] = dest
		}
		if err := flatten(nested, "", dest); err != nil {
			return fmt.Errorf("i18n: %s: %w", source, err)
		}
	}
	return nil
}

// Set registers a single message.
func (c *Catalog) Set(locale, key, message string) {
	locale = normalizeLocale(locale)
	if locale == "" {
		locale = c.defaultLocale
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.messages[locale] == nil {
		c.messages[locale] = make(map[string]string)
	}
	c.messages[locale][strings.TrimSpace(key)] = message
}

// Locales lists the loaded locales.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Translate implements Translator. The lookup tries the exact locale, its base
// language ("pt-BR" -> "pt"), then the default locale.
func (c *Catalog) Translate(locale, key string, args ...any) (string, error) {
	key = strings.TrimSpace(key)
	if c == nil || key == "" {
		return "", ErrMissingTranslation
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range c.fallbackChain(locale) {
		if message, ok := c.messages[candidate][key]; ok {
			return Interpolate(message, Params(args...)), nil
		}
	}
	return "", fmt.Errorf("%w: %q (locale %q)", ErrMissingTranslation, key, locale)
}

func (c *Catalog) fallbackChain(locale string) []string {
	locale = normalizeLocale(locale)
	chain := make([]string, 0, 3)
	if locale != "" {
		chain = append(chain, locale)
		if base, _, ok := strings.Cut(locale, "-"); ok && base != "" {
			chain = append(chain, base)
		}
	}
	if c.defaultLocale != locale {
		chain = append(chain, c.defaultLocale)
	}
	return chain
}

func flatten(tree map[string]any, prefix string, dest map[string]string) error {
	for key, value := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]any:
			if err := flatten(v, path, dest); err != nil {
				return err
			}
		case string:
			dest[path] = v
		case nil:
			continue
		case int, int64, float64, bool:
			dest[path] = fmt.Sprint(v)
		default:
			return fmt.Errorf("key %q holds unsupported %T", path, value)
		}
	}
	return nil
}

func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

func isLocaleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
