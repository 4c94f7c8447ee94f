package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-bootstrapforms/internal/prompt"
	"github.com/goliatone/go-bootstrapforms/pkg/bootstrap"
	"github.com/goliatone/go-bootstrapforms/pkg/controls"
	"github.com/goliatone/go-bootstrapforms/pkg/formdef"
	"github.com/goliatone/go-bootstrapforms/pkg/i18n"
	"github.com/goliatone/go-bootstrapforms/pkg/markup"
)

type renderOptions struct {
	output      string
	locale      string
	locales     string
	templates   string
	interactive bool
	allowMarkup bool
	submitName  string
	noHidden    bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [definition.yaml]",
		Short: "Render a form definition to HTML",
		Long: `Renders the error summary followed by every declared field.

Relative OpenAPI references inside the definition resolve against the
definition's directory.

Example:
  bootstrapforms render forms/post.yaml --locale es --output post.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "Write HTML to this file instead of stdout")
	flags.StringVar(&opts.locale, "locale", i18n.DefaultLocale, "Locale used for headings and buttons")
	flags.StringVar(&opts.locales, "locales", "", "Directory of YAML locale files layered over the bundled ones")
	flags.StringVar(&opts.templates, "templates", "", "Directory holding templates/*.tmpl that shadow the bundled control templates")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Prompt for field values before rendering")
	flags.BoolVar(&opts.allowMarkup, "allow-markup", false, "Sanitize decoration markup instead of escaping it")
	flags.StringVar(&opts.submitName, "submit-name", "commit", "Name attribute of the submit control")
	flags.BoolVar(&opts.noHidden, "no-checkbox-hidden", false, "Omit the hidden field that precedes single checkboxes")
	return cmd
}

func runRender(ctx context.Context, stdout io.Writer, path string, opts *renderOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger
	if log == nil {
		log = zap.NewNop()
	}

	dir, name := filepath.Split(filepath.Clean(path))
	if dir == "" {
		dir = "."
	}
	files := os.DirFS(dir)

	def, err := formdef.Load(files, name)
	if err != nil {
		return err
	}
	if err := def.Resolve(ctx, files); err != nil {
		return err
	}
	log.Debug("definition loaded",
		zap.String("path", path),
		zap.String("object", def.Object),
		zap.Int("fields", len(def.Fields)),
	)

	if opts.interactive {
		if err := prompt.Fill(ctx, prompt.NewSurveyDriver(), def); err != nil {
			return err
		}
	}

	rec, err := def.Record()
	if err != nil {
		return err
	}

	builderOpts, err := builderOptions(opts, log)
	if err != nil {
		return err
	}
	builder, err := bootstrap.New(def.Object, rec, builderOpts...)
	if err != nil {
		return err
	}

	html, err := def.Render(builder)
	if err != nil {
		log.Error("render failed", zap.String("path", path), zap.Error(err))
		return err
	}
	log.Debug("rendered form", zap.Int("bytes", len(html)), zap.Int("errors", len(rec.Errors())))

	if opts.output == "" {
		_, err := fmt.Fprintln(stdout, html)
		return err
	}
	if err := os.WriteFile(opts.output, []byte(html.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	log.Info("form written", zap.String("output", opts.output))
	return nil
}

func builderOptions(opts *renderOptions, log *zap.Logger) ([]bootstrap.Option, error) {
	out := []bootstrap.Option{
		bootstrap.WithLocale(opts.locale),
		bootstrap.WithSubmitName(opts.submitName),
		bootstrap.WithMissingTranslationHandler(func(locale, key string, args []any, err error) string {
			log.Warn("missing translation", zap.String("locale", locale), zap.String("key", key), zap.Error(err))
			return i18n.MissingTranslationDefault(locale, key, args, err)
		}),
	}
	if opts.locales != "" {
		catalog, err := i18n.LoadFS(os.DirFS(opts.locales))
		if err != nil {
			return nil, fmt.Errorf("load locales: %w", err)
		}
		log.Debug("locales loaded", zap.Strings("locales", catalog.Locales()))
		out = append(out, bootstrap.WithTranslator(catalog))
	}
	if opts.templates != "" {
		out = append(out, bootstrap.WithControlOptions(controls.WithTemplatesDir(opts.templates)))
	}
	if opts.allowMarkup {
		out = append(out, bootstrap.WithDecorationPolicy(markup.DecorationPolicy()))
	}
	if opts.noHidden {
		out = append(out, bootstrap.WithoutCheckboxHidden())
	}
	return out, nil
}
