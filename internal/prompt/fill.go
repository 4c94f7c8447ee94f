package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-bootstrapforms/pkg/bootstrap"
	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/formdef"
	"github.com/goliatone/go-bootstrapforms/pkg/record"
)

// Fill asks for a value for every editable field of def, using the current
// value as default, and stores the answers on def.
func Fill(ctx context.Context, driver Driver, def *formdef.Definition) error {
	if driver == nil {
		return fmt.Errorf("prompt: driver is nil")
	}
	for _, field := range def.Editable() {
		value, err := ask(ctx, driver, def, field)
		if err != nil {
			return fmt.Errorf("prompt: %s: %w", field.Name, err)
		}
		def.SetValue(field.Name, value)
	}
	return nil
}

func ask(ctx context.Context, driver Driver, def *formdef.Definition, field formdef.Field) (any, error) {
	opts := bootstrap.ParseOptions(field.Options)
	message := opts.Label
	if message == "" {
		message = humanName(def, field.Name)
	}
	current := controls.FormatValue(def.Values[field.Name])

	if len(field.Choices) > 0 {
		options := make([]string, 0, len(field.Choices))
		selected := 0
		for idx, choice := range field.Choices {
			options = append(options, choice.Text)
			if choice.Value == current {
				selected = idx
			}
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      options,
			DefaultIndex: selected,
			Help:         opts.HelpBlock,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(field.Choices) {
			return nil, fmt.Errorf("unknown choice %d", idx)
		}
		return field.Choices[idx].Value, nil
	}

	switch controls.ParseVariant(field.Kind) {
	case controls.VariantCheckBox:
		return driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: def.Values[field.Name] == true || current == "1",
			Help:    opts.HelpBlock,
		})
	case controls.VariantTextArea:
		return driver.TextArea(ctx, InputConfig{Message: message, Default: current, Help: opts.HelpBlock})
	}
	return driver.Input(ctx, InputConfig{Message: message, Default: current, Help: opts.HelpBlock})
}

func humanName(def *formdef.Definition, field string) string {
	if name := strings.TrimSpace(def.HumanNames[field]); name != "" {
		return name
	}
	return record.Humanize(field)
}
