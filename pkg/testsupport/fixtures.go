// Package testsupport collects helpers shared by package tests: template
// output capture, class counting and a canonical record fixture.
package testsupport

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// PostRecord returns the record most tests render: a "post" with a required
// title, a couple of values and no errors.
func PostRecord() *record.Model {
	return record.NewModel("post",
		record.WithRequired("title"),
		record.WithValues(map[string]any{
			"title":     "Hello",
			"body":      "First post",
			"published": true,
			"tags":      []any{1},
			"category":  "news",
		}),
	)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

var classAttr = regexp.MustCompile(`class="([^"]*)"`)

// CountClass reports how many class attributes in markup contain class as a
// whole token.
func CountClass(markup, class string) int {
	count := 0
	for _, match := range classAttr.FindAllStringSubmatch(markup, -1) {
		for _, token := range strings.Fields(match[1]) {
			if token == class {
				count++
			}
		}
	}
	return count
}
