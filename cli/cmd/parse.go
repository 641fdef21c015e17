package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/msgfmt/log"
	"github.com/ardnew/msgfmt/msg"
)

// Parse prints the syntax tree of a template in the chosen format.
type Parse struct {
	Tree     Tree     `cmd:"" default:"withargs" help:"Print the syntax tree as an indented outline (default)."`
	JSON     JSON     `cmd:""                    help:"Print the syntax tree as JSON."`
	YAML     YAML     `cmd:""                    help:"Print the syntax tree as YAML."`
	Msgpack  Msgpack  `cmd:""                    help:"Write the syntax tree as MessagePack."`
	Template Template `cmd:""                    help:"Print the template in canonical form."`
}

// Input names the template parsed by a parse subcommand.
type Input struct {
	MaxDepth int `default:"${maxDepth}" help:"Maximum nesting depth of case bodies."`

	Source string `arg:"" default:"-" help:"Template file or '-' for stdin." name:"source" optional:""`
}

func (in Input) parse(ctx context.Context, format string) (*msg.Message, error) {
	m, err := parseSource(ctx, in.Source,
		msg.WithMaxDepth(in.MaxDepth),
		msg.WithLogger(log.Default()),
	)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "parsed template",
		slog.String("format", format),
		slog.Int("elements", len(m.Elements)),
	)

	return m, nil
}

// Tree prints the syntax tree as an indented outline.
type Tree struct {
	Input `embed:""`
}

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) error {
	m, err := t.parse(ctx, "tree")
	if err != nil {
		return err
	}

	return m.Print(ctx, stdioFrom(ctx).Out)
}

// JSON prints the syntax tree as JSON.
type JSON struct {
	Input `embed:""`

	Indent int `default:"2" help:"Indent width of JSON output; 0 prints one line." short:"i"`
}

// Run executes the json command.
func (j *JSON) Run(ctx context.Context) error {
	m, err := j.parse(ctx, "json")
	if err != nil {
		return err
	}

	if err := m.FormatJSON(ctx, stdioFrom(ctx).Out, j.Indent); err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", "json"))
	}

	return nil
}

// YAML prints the syntax tree as YAML.
type YAML struct {
	Input `embed:""`

	Indent int `default:"2" help:"Indent width of YAML output; 0 prints flow style." short:"i"`
}

// Run executes the yaml command.
func (y *YAML) Run(ctx context.Context) error {
	m, err := y.parse(ctx, "yaml")
	if err != nil {
		return err
	}

	if err := m.FormatYAML(ctx, stdioFrom(ctx).Out, y.Indent); err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", "yaml"))
	}

	return nil
}

// Msgpack writes the syntax tree as MessagePack.
type Msgpack struct {
	Input `embed:""`
}

// Run executes the msgpack command.
func (p *Msgpack) Run(ctx context.Context) error {
	m, err := p.parse(ctx, "msgpack")
	if err != nil {
		return err
	}

	if err := m.FormatMsgpack(ctx, stdioFrom(ctx).Out); err != nil {
		return ErrMarshal.Wrap(err).With(slog.String("format", "msgpack"))
	}

	return nil
}

// Template prints the template in canonical form.
type Template struct {
	Input `embed:""`
}

// Run executes the template command.
func (t *Template) Run(ctx context.Context) error {
	m, err := t.parse(ctx, "template")
	if err != nil {
		return err
	}

	out := stdioFrom(ctx).Out

	if err := m.WriteTemplate(out); err != nil {
		return err
	}

	_, err = out.Write([]byte{'\n'})

	return err
}
