package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"path"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// decoder converts the content of one catalog file to a tree of keys.
type decoder func(ctx context.Context, data []byte) (map[string]any, error)

var decoders = map[string]decoder{
	".yaml": decodeYAML,
	".yml":  decodeYAML,
	".toml": decodeTOML,
	".json": decodeJSON,
}

// Extensions returns the file extensions recognized by [Load].
func Extensions() []string {
	return slices.Sorted(maps.Keys(decoders))
}

func decodeYAML(ctx context.Context, data []byte) (map[string]any, error) {
	var m map[string]any

	err := yaml.UnmarshalContext(ctx, data, &m)

	return m, err
}

func decodeTOML(_ context.Context, data []byte) (map[string]any, error) {
	var m map[string]any

	err := toml.Unmarshal(data, &m)

	return m, err
}

func decodeJSON(_ context.Context, data []byte) (map[string]any, error) {
	var m map[string]any

	err := json.Unmarshal(data, &m)

	return m, err
}

// fileDecoder returns the decoder for name and the locale named by its last
// stem component, as in "app.de-CH.yaml" or "fr.json". ok is false for
// files of unrecognized type.
func fileDecoder(name string) (dec decoder, locale string, ok bool) {
	base := path.Base(name)
	ext := path.Ext(base)

	dec, ok = decoders[strings.ToLower(ext)]
	if !ok {
		return nil, "", false
	}

	stem := strings.TrimSuffix(base, ext)
	locale = stem[strings.LastIndexByte(stem, '.')+1:]

	return dec, locale, true
}

// parseLocale parses the locale component of a file name.
func parseLocale(name, locale string) (language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil || tag == language.Und {
		return language.Und, ErrInvalidLocale.Wrap(err).With(
			slog.String(AttrFile, name),
			slog.String(AttrLocale, locale),
		)
	}

	return tag, nil
}

// flatten copies the string leaves of tree into out under keys joined with
// ".", normalizing each template to NFC.
func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for _, k := range slices.Sorted(maps.Keys(tree)) {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		if k == "" {
			return ErrInvalidEntry.With(
				slog.String(AttrKey, key),
				slog.String("reason", "empty key"),
			)
		}

		var err error

		switch v := tree[k].(type) {
		case string:
			if _, dup := out[key]; dup {
				return ErrDuplicateKey.With(slog.String(AttrKey, key))
			}

			out[key] = norm.NFC.String(v)

		case map[string]any:
			err = flatten(key, v, out)

		case map[any]any:
			sub := make(map[string]any, len(v))
			for sk, sv := range v {
				sub[fmt.Sprint(sk)] = sv
			}

			err = flatten(key, sub, out)

		default:
			err = ErrInvalidEntry.With(
				slog.String(AttrKey, key),
				slog.String("type", fmt.Sprintf("%T", v)),
			)
		}

		if err != nil {
			return err
		}
	}

	return nil
}
