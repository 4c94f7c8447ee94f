// Package markup composes escaped HTML fragments. It plays the role of a
// template context's tag helper: build an element from a tag name, ordered
// attributes and child fragments, escape text, and join fragments. Fragments
// are never parsed once built.
package markup

import (
	"html"
	"html/template"
	"strings"
)

// Fragment is escaped, concatenable markup.
type Fragment string

// String returns the raw markup.
func (f Fragment) String() string {
	return string(f)
}

// HTML exposes the fragment to html/template without re-escaping.
func (f Fragment) HTML() template.HTML {
	return template.HTML(f)
}

// Empty reports whether the fragment carries no markup.
func (f Fragment) Empty() bool {
	return f == ""
}

// Attribute is a single name/value pair. Boolean attributes use their name as
// value (checked="checked").
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attributes keeps attribute order stable so output is deterministic.
type Attributes []Attribute

// Attrs builds Attributes from name/value pairs. A trailing name without value
// is ignored.
func Attrs(pairs ...string) Attributes {
	out := make(Attributes, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = out.Set(pairs[i], pairs[i+1])
	}
	return out
}

// Set replaces the value of name or appends it when absent. Empty names are
// ignored.
func (a Attributes) Set(name, value string) Attributes {
	name = strings.TrimSpace(name)
	if name == "" {
		return a
	}
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attribute{Name: name, Value: value})
}

// Get returns the value of name.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Without returns a copy without the listed names.
func (a Attributes) Without(names ...string) Attributes {
	if len(a) == 0 {
		return nil
	}
	drop := make(map[string]struct{}, len(names))
	for _, name := range names {
		drop[name] = struct{}{}
	}
	out := make(Attributes, 0, len(a))
	for _, attr := range a {
		if _, ok := drop[attr.Name]; ok {
			continue
		}
		out = append(out, attr)
	}
	return out
}

// Merge overlays other onto a copy of a.
func (a Attributes) Merge(other Attributes) Attributes {
	out := append(Attributes(nil), a...)
	for _, attr := range other {
		out = out.Set(attr.Name, attr.Value)
	}
	return out
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if len(a) == 0 {
		return nil
	}
	return append(Attributes(nil), a...)
}

// Text escapes plain text into a fragment.
func Text(value string) Fragment {
	return Fragment(html.EscapeString(value))
}

// Raw trusts value as markup. Callers must only pass output of another
// renderer or a sanitizer.
func Raw(value string) Fragment {
	return Fragment(value)
}

// Classes joins class tokens, skipping blanks.
func Classes(values ...string) string {
	tokens := make([]string, 0, len(values))
	for _, value := range values {
		tokens = append(tokens, strings.Fields(value)...)
	}
	return strings.Join(tokens, " ")
}

// Tag renders <name attrs>children</name>. Attributes with empty names are
// skipped; values are escaped.
func Tag(name string, attrs Attributes, children ...Fragment) Fragment {
	var builder strings.Builder
	builder.WriteByte('<')
	builder.WriteString(name)
	writeAttributes(&builder, attrs)
	builder.WriteByte('>')
	for _, child := range children {
		builder.WriteString(string(child))
	}
	builder.WriteString("</")
	builder.WriteString(name)
	builder.WriteByte('>')
	return Fragment(builder.String())
}

// Join concatenates fragments with sep, skipping empty ones.
func Join(sep string, fragments ...Fragment) Fragment {
	var builder strings.Builder
	first := true
	for _, fragment := range fragments {
		if fragment == "" {
			continue
		}
		if !first {
			builder.WriteString(sep)
		}
		builder.WriteString(string(fragment))
		first = false
	}
	return Fragment(builder.String())
}

// Concat concatenates fragments without separator.
func Concat(fragments ...Fragment) Fragment {
	return Join("", fragments...)
}

func writeAttributes(builder *strings.Builder, attrs Attributes) {
	for _, attr := range attrs {
		if attr.Name == "" {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(attr.Name))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(attr.Value))
		builder.WriteByte('"')
	}
}
