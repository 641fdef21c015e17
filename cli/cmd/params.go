package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/ardnew/msgfmt/log"
	"github.com/ardnew/msgfmt/msg"
)

// Bindings are the parameter flags of commands that format messages.
type Bindings struct {
	Param  map[string]string `help:"Bind a string parameter (repeatable)."                placeholder:"NAME=VALUE" short:"P"`
	Int    map[string]int64  `help:"Bind an integer parameter (repeatable)."              placeholder:"NAME=N"     short:"I"`
	Params string            `help:"Read parameters from a YAML, TOML, or JSON map file." placeholder:"FILE"                  type:"existingfile"`
}

// parameters combines the bindings of the parameters file and the flags.
// A name bound more than once fails with [msg.ErrDuplicateParameter].
func (b Bindings) parameters(ctx context.Context) (msg.Parameters, error) {
	var list []msg.Param

	if b.Params != "" {
		ps, err := readParams(ctx, b.Params)
		if err != nil {
			return msg.Parameters{}, err
		}

		for name, v := range ps.All() {
			list = append(list, msg.Param{Name: name, Value: v})
		}
	}

	for _, name := range slices.Sorted(maps.Keys(b.Param)) {
		list = append(list, msg.Str(name, b.Param[name]))
	}

	for _, name := range slices.Sorted(maps.Keys(b.Int)) {
		list = append(list, msg.Int(name, b.Int[name]))
	}

	return msg.NewParameters(list...)
}

// readParams decodes a map of parameter values, choosing the decoder by the
// file extension. Unknown extensions are read as YAML, a superset of JSON.
func readParams(ctx context.Context, path string) (msg.Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return msg.Parameters{}, ErrReadParams.Wrap(err).With(slog.String("file", path))
	}

	var m map[string]any

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &m)
	case ".json":
		err = json.Unmarshal(data, &m)
	default:
		err = yaml.UnmarshalContext(ctx, data, &m)
	}

	if err != nil {
		return msg.Parameters{}, ErrReadParams.Wrap(err).With(slog.String("file", path))
	}

	ps, err := msg.ParametersFromMap(m)
	if err != nil {
		return msg.Parameters{}, ErrReadParams.Wrap(err).With(slog.String("file", path))
	}

	return ps, nil
}

// Formatting are the options of commands that format messages.
type Formatting struct {
	CLDR     bool `help:"Select plural cases with the CLDR rules of the locale." name:"cldr"`
	MaxDepth int  `default:"${maxDepth}"                                          help:"Maximum nesting depth of case bodies."`
}

func (f Formatting) options() []msg.Option {
	opts := []msg.Option{
		msg.WithMaxDepth(f.MaxDepth),
		msg.WithLogger(log.Default()),
	}

	if f.CLDR {
		opts = append(opts, msg.WithPluralResolver(msg.CLDRRule{}))
	}

	return opts
}

func parseLocale(locale string) (language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, ErrInvalidLocale.Wrap(err).With(slog.String("locale", locale))
	}

	return tag, nil
}
