package bootstrap

import (
	"github.com/goliatone/go-bootstrapforms/pkg/i18n"
	"github.com/goliatone/go-bootstrapforms/pkg/markup"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// ErrorMessages summarises every error on the record in an alert block. It
// returns an empty fragment when the record has no errors. Nested mappings are
// flattened and identical messages are listed once.
func (b *FormBuilder) ErrorMessages() (markup.Fragment, error) {
	messages, err := record.FullMessages(b.record)
	if err != nil {
		return "", err
	}
	if len(messages) == 0 {
		return "", nil
	}

	items := make([]markup.Fragment, 0, len(messages))
	for _, message := range messages {
		items = append(items, markup.Tag("li", nil, markup.Text(message)))
	}

	heading := b.translate(i18n.KeyErrorsHeader, map[string]any{"model": b.record.ModelName()})
	return markup.Tag("div",
		markup.Attrs("class", "alert alert-block alert-error validation-errors"),
		markup.Tag("h4", markup.Attrs("class", "alert-heading"), markup.Text(heading)),
		markup.Tag("ul", nil, items...),
	), nil
}
