package msg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

// ToNative converts m to plain Go values: a slice with one single-key map per
// element, keyed by the element kind.
//
//	[{"text": "Hi "}, {"parameter": "name"},
//	 {"plural": {"parameter": "n", "cases": [{"selector": "one", "message": [...]}]}}]
//
// An element of a foreign type becomes {"unknown": "<type>"}.
func (m *Message) ToNative() []any {
	if m == nil {
		return []any{}
	}

	out := make([]any, 0, len(m.Elements))

	for _, el := range m.Elements {
		switch el := el.(type) {
		case Text:
			out = append(out, map[string]any{"text": el.Value})

		case Parameter:
			out = append(out, map[string]any{"parameter": el.Name})

		case Number:
			n := map[string]any{
				"parameter": el.Parameter,
				"format":    el.Format.Kind.String(),
			}

			if el.Format.Kind == KindCurrency {
				n["currency"] = el.Format.Currency
			}

			out = append(out, map[string]any{"number": n})

		case Plural:
			cases := make([]any, len(el.Cases))
			for i, c := range el.Cases {
				cases[i] = map[string]any{
					"selector": c.Selector.String(),
					"message":  c.Message.ToNative(),
				}
			}

			out = append(out, map[string]any{"plural": map[string]any{
				"parameter": el.Parameter,
				"cases":     cases,
			}})

		case Select:
			cases := make([]any, len(el.Cases))
			for i, c := range el.Cases {
				cases[i] = map[string]any{
					"selector": c.Selector,
					"message":  c.Message.ToNative(),
				}
			}

			out = append(out, map[string]any{"select": map[string]any{
				"parameter": el.Parameter,
				"cases":     cases,
			}})

		default:
			out = append(out, map[string]any{"unknown": typeName(el)})
		}
	}

	return out
}

// validate reports the first element of m, in document order, that is not one
// of the element types of this package.
func (m *Message) validate() error {
	if m == nil {
		return nil
	}

	for _, el := range m.Elements {
		var err error

		switch el := el.(type) {
		case Text, Parameter, Number:

		case Plural:
			for _, c := range el.Cases {
				if err = c.Message.validate(); err != nil {
					break
				}
			}

		case Select:
			for _, c := range el.Cases {
				if err = c.Message.validate(); err != nil {
					break
				}
			}

		default:
			err = ErrUnknownElement.With(slog.String("type", typeName(el)))
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler for Message.
// It fails with [ErrUnknownElement] if m holds an element of a foreign type.
func (m *Message) MarshalJSON() ([]byte, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	return json.Marshal(m.ToNative())
}

// FormatJSON writes m as JSON to the writer.
func (m *Message) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(m)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// FormatYAML writes m as YAML to the writer.
// A non-positive indent selects flow style.
func (m *Message) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	if err := m.validate(); err != nil {
		return err
	}

	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, m.ToNative(), opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(yamlData)

	return err
}

// FormatMsgpack writes m as MessagePack to the writer, with map keys sorted.
func (m *Message) FormatMsgpack(_ context.Context, w io.Writer) error {
	if err := m.validate(); err != nil {
		return err
	}

	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)

	return enc.Encode(m.ToNative())
}
