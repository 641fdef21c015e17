package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of one pretty handler. Styles come from a
// renderer bound to the handler's output, so they render as plain text when
// the output is not a terminal.
type palette struct {
	key, str, num, boolean, null, other lipgloss.Style
	level                               map[slog.Level]lipgloss.Style
}

func newPalette(w io.Writer) *palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return &palette{
		key:     fg("8"),
		str:     fg("6"),
		num:     fg("3"),
		boolean: fg("2"),
		null:    fg("8"),
		other:   fg("5"),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): fg("4"),
			slog.Level(LevelDebug): fg("4"),
			slog.Level(LevelInfo):  fg("2"),
			slog.Level(LevelWarn):  fg("3"),
			slog.Level(LevelError): fg("1"),
		},
	}
}

// levelStyle returns the style of the nearest named level at or below l.
func (p *palette) levelStyle(l slog.Level) lipgloss.Style {
	best, found := slog.Level(LevelTrace), false

	for named := range p.level {
		if named <= l && (!found || named > best) {
			best, found = named, true
		}
	}

	return p.level[best]
}

// prettyHandler is a slog.Handler producing styled single-line text records
// or indented multi-line JSON-like records.
type prettyHandler struct {
	opts    slog.HandlerOptions
	format  Format
	palette *palette
	mu      *sync.Mutex
	w       io.Writer
	attrs   []slog.Attr // preformatted, group-qualified
	groups  []string
}

func newPrettyHandler(
	w io.Writer,
	format Format,
	opts *slog.HandlerOptions,
) *prettyHandler {
	return &prettyHandler{
		opts:    *opts,
		format:  format,
		palette: newPalette(w),
		mu:      &sync.Mutex{},
		w:       w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]slog.Attr, 0, 4+len(h.attrs)+r.NumAttrs())

	if !r.Time.IsZero() {
		if t := h.replace(nil, slog.Time(slog.TimeKey, r.Time)); t.Key != "" {
			fields = append(fields, t)
		}
	}

	fields = append(fields, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil {
			fields = append(fields,
				slog.String(slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	fields = append(fields, slog.String(slog.MessageKey, r.Message))
	fields = append(fields, h.attrs...)

	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, h.qualify(a)...)

		return true
	})

	buf := new(bytes.Buffer)

	if h.format == FormatJSON {
		h.writeBlock(buf, fields, r.Level)
	} else {
		h.writeLine(buf, fields, r.Level)
	}

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	c := *h
	c.attrs = slices.Clip(c.attrs)

	for _, a := range attrs {
		c.attrs = append(c.attrs, h.qualify(a)...)
	}

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.groups = append(slices.Clip(h.groups), name)

	return &c
}

// qualify resolves a and flattens it into attributes whose keys are
// qualified by the open groups, as in "group.key".
func (h *prettyHandler) qualify(a slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()
	a = h.replace(h.groups, a)

	if a.Equal(slog.Attr{}) {
		return nil
	}

	return flatten(strings.Join(h.groups, "."), a, nil)
}

func flatten(prefix string, a slog.Attr, out []slog.Attr) []slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() != slog.KindGroup {
		if a.Key == "" {
			return out
		}

		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}

		return append(out, a)
	}

	// Inline groups with empty keys.
	key := prefix
	if a.Key != "" && prefix != "" {
		key = prefix + "." + a.Key
	} else if a.Key != "" {
		key = a.Key
	}

	for _, member := range a.Value.Group() {
		out = flatten(key, member, out)
	}

	return out
}

func (h *prettyHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil {
		return a
	}

	return h.opts.ReplaceAttr(groups, a)
}

// writeLine renders fields as "key=value" pairs on one line.
func (h *prettyHandler) writeLine(buf *bytes.Buffer, fields []slog.Attr, level slog.Level) {
	for i, a := range fields {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(h.palette.key.Render(a.Key))
		buf.WriteByte('=')
		buf.WriteString(h.value(a, level))
	}
}

// writeBlock renders fields one per line inside braces.
func (h *prettyHandler) writeBlock(buf *bytes.Buffer, fields []slog.Attr, level slog.Level) {
	buf.WriteString("{")

	first := true

	for _, a := range fields {
		if !first {
			buf.WriteByte(',')
		}

		first = false

		buf.WriteString("\n  ")
		buf.WriteString(h.palette.key.Render(a.Key))
		buf.WriteString(": ")
		buf.WriteString(h.value(a, level))
	}

	buf.WriteString("\n}")
}

func (h *prettyHandler) value(a slog.Attr, level slog.Level) string {
	p := h.palette
	v := a.Value

	if a.Key == slog.LevelKey {
		if l, ok := v.Any().(slog.Level); ok {
			return p.levelStyle(l).Render(strings.ToUpper(Level(l).String()))
		}

		return p.levelStyle(level).Render(v.String())
	}

	switch v.Kind() {
	case slog.KindString:
		return p.str.Render(v.String())

	case slog.KindInt64:
		return p.num.Render(strconv.FormatInt(v.Int64(), 10))

	case slog.KindUint64:
		return p.num.Render(strconv.FormatUint(v.Uint64(), 10))

	case slog.KindFloat64:
		return p.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64))

	case slog.KindBool:
		return p.boolean.Render(strconv.FormatBool(v.Bool()))

	case slog.KindDuration:
		return p.num.Render(v.Duration().String())

	case slog.KindTime:
		return p.str.Render(v.Time().Format(time.RFC3339))

	default:
		switch x := v.Any().(type) {
		case nil:
			return p.null.Render("null")

		case error:
			return p.other.Render(x.Error())

		case fmt.Stringer:
			return p.other.Render(x.String())

		default:
			return p.other.Render(fmt.Sprint(x))
		}
	}
}
