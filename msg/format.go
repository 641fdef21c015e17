package msg

import (
	"context"
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/language"
)

// maxSimilar bounds the number of name suggestions attached to a missing
// parameter error.
const maxSimilar = 3

// formatter holds the state of a single Format call.
type formatter struct {
	ctx    context.Context
	params Parameters
	locale language.Tag
	opts   options
}

// Format renders m with the given bindings and locale.
//
// Formatting stops at the first error in document order and returns no
// partial output. Plural and select expressions without a matching case
// render as empty text.
func (m *Message) Format(
	ctx context.Context,
	params Parameters,
	locale language.Tag,
	opts ...Option,
) (string, error) {
	f := &formatter{
		ctx:    ctx,
		params: params,
		locale: locale,
		opts:   makeOptions(opts...),
	}

	var buf strings.Builder

	err := f.message(&buf, m, 0)
	if err != nil {
		f.opts.logger.DebugContext(ctx, "format failed",
			slog.Any("error", err),
			slog.String("locale", locale.String()),
		)

		return "", err
	}

	f.opts.logger.TraceContext(ctx, "format complete",
		slog.String("locale", locale.String()),
		slog.Int("output_length", buf.Len()),
	)

	return buf.String(), nil
}

func (f *formatter) message(buf *strings.Builder, m *Message, depth int) error {
	if m == nil {
		return nil
	}

	if limit := f.opts.key.maxDepth; limit > 0 && depth > limit {
		return ErrMaxDepthExceeded.With(
			slog.Int("depth", depth),
			slog.Int("max_depth", limit),
		)
	}

	for _, el := range m.Elements {
		if depth == 0 {
			if err := f.ctx.Err(); err != nil {
				return context.Cause(f.ctx)
			}
		}

		err := f.element(buf, el, depth)
		if err != nil {
			return err
		}
	}

	return nil
}

func (f *formatter) element(buf *strings.Builder, el Element, depth int) error {
	switch el := el.(type) {
	case Text:
		buf.WriteString(el.Value)

	case Parameter:
		v, err := f.lookup(el.Name)
		if err != nil {
			return err
		}

		buf.WriteString(v.String())

	case Plural:
		return f.plural(buf, el, depth)

	case Select:
		return f.select_(buf, el, depth)

	case Number:
		return f.number(buf, el)

	default:
		return ErrUnknownElement.With(slog.String("type", typeName(el)))
	}

	return nil
}

func (f *formatter) plural(buf *strings.Builder, p Plural, depth int) error {
	v, err := f.lookup(p.Parameter)
	if err != nil {
		return err
	}

	count, ok := v.Int()
	if !ok {
		count, err = strconv.ParseInt(v.str, 10, 64)
		if err != nil {
			return ErrInvalidParameterType.Wrap(err).With(
				slog.String(attrParameter, p.Parameter),
			)
		}
	}

	body := selectPlural(p, count, f.locale, f.opts.plural)

	f.opts.logger.TraceContext(f.ctx, "plural case",
		slog.String(attrParameter, p.Parameter),
		slog.Int64("count", count),
		slog.Bool("matched", body != nil),
	)

	if body == nil {
		return nil
	}

	var sub strings.Builder

	err = f.message(&sub, body, depth+1)
	if err != nil {
		return err
	}

	buf.WriteString(
		strings.ReplaceAll(sub.String(), "#", strconv.FormatInt(count, 10)),
	)

	return nil
}

// select_ is named to avoid the keyword.
func (f *formatter) select_(buf *strings.Builder, s Select, depth int) error {
	v, err := f.lookup(s.Parameter)
	if err != nil {
		return err
	}

	text, ok := v.Text()
	if !ok {
		return ErrInvalidParameterType.With(
			slog.String(attrParameter, s.Parameter),
			slog.String("kind", v.Kind().String()),
		)
	}

	body := selectCase(s, text)

	f.opts.logger.TraceContext(f.ctx, "select case",
		slog.String(attrParameter, s.Parameter),
		slog.String("value", text),
		slog.Bool("matched", body != nil),
	)

	return f.message(buf, body, depth+1)
}

func (f *formatter) number(buf *strings.Builder, n Number) error {
	v, err := f.lookup(n.Parameter)
	if err != nil {
		return err
	}

	var x float64

	if i, ok := v.Int(); ok {
		x = float64(i)
	} else {
		x, err = strconv.ParseFloat(v.str, 64)
		if err != nil {
			return ErrInvalidParameterType.Wrap(err).With(
				slog.String(attrParameter, n.Parameter),
			)
		}
	}

	s, err := f.opts.number.FormatNumber(x, n.Format, f.locale)
	if err != nil {
		return ErrInvalidParameterType.Wrap(err).With(
			slog.String(attrParameter, n.Parameter),
		)
	}

	buf.WriteString(s)

	return nil
}

// lookup resolves name or fails with ErrMissingParameter, suggesting bound
// names that fuzzily match.
func (f *formatter) lookup(name string) (Value, error) {
	v, ok := f.params.Lookup(name)
	if ok {
		return v, nil
	}

	err := ErrMissingParameter.With(slog.String(attrParameter, name))

	if similar := f.similar(name); len(similar) > 0 {
		err = err.With(slog.Any("similar", similar))
	}

	return Value{}, err
}

func (f *formatter) similar(name string) []string {
	if f.params.Len() == 0 || name == "" {
		return nil
	}

	matches := fuzzy.Find(name, f.params.Names())

	names := make([]string, 0, min(len(matches), maxSimilar))
	for _, m := range matches {
		if len(names) == maxSimilar {
			break
		}

		names = append(names, m.Str)
	}

	return names
}

func typeName(el Element) string {
	if el == nil {
		return "nil"
	}

	return reflect.TypeOf(el).String()
}
