package record

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Humanize turns an attribute identifier into a display name: a trailing "_id"
// is dropped, underscores become spaces and the first letter is capitalised
// ("author_id" -> "Author", "first_name" -> "First name").
func Humanize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if len(name) > 3 && strings.HasSuffix(name, "_id") {
		name = strings.TrimSuffix(name, "_id")
	}
	name = strings.TrimPrefix(name, "_")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}

	lower := strings.ToLower(name)
	r, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(r)) + lower[size:]
}
