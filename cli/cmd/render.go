package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ardnew/msgfmt/log"
	"github.com/ardnew/msgfmt/msg"
)

// Render formats a template with parameter bindings.
type Render struct {
	Bindings   Bindings   `embed:""`
	Formatting Formatting `embed:""`

	Template string `help:"Template text, used instead of SOURCE."    short:"t"`
	Locale   string `default:"en" help:"Locale of plural rules and number formats." short:"l"`

	Source string `arg:"" default:"-" help:"Template file or '-' for stdin." name:"source" optional:""`
}

// Run executes the render command.
func (r *Render) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	tag, err := parseLocale(r.Locale)
	if err != nil {
		return err
	}

	params, err := r.Bindings.parameters(ctx)
	if err != nil {
		return err
	}

	opts := r.Formatting.options()

	var m *msg.Message

	if r.Template != "" {
		m, err = msg.ParseString(ctx, r.Template, opts...)
	} else {
		m, err = parseSource(ctx, r.Source, opts...)
	}

	if err != nil {
		return err
	}

	s, err := m.Format(ctx, params, tag, opts...)
	if err != nil {
		return msg.ErrFormat.Wrap(err).With(slog.String("locale", tag.String()))
	}

	log.TraceContext(ctx, "rendered",
		slog.String("locale", tag.String()),
		slog.Any("params", params),
	)

	_, err = fmt.Fprintln(stdioFrom(ctx).Out, s)

	return err
}
