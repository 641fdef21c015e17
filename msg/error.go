package msg

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Predefined errors (sentinel values).
var (
	ErrParse                = NewError("parse error")
	ErrFormat               = NewError("format error")
	ErrMaxDepthExceeded     = NewError("maximum nesting depth exceeded")
	ErrMissingParameter     = NewError("missing parameter")
	ErrInvalidParameterType = NewError("invalid parameter type")
	ErrDuplicateParameter   = NewError("duplicate parameter")
	ErrInvalidValueType     = NewError("invalid value type")
	ErrInvalidCurrency      = NewError("invalid currency code")
	ErrNumberRange          = NewError("number out of range")
	ErrUnknownElement       = NewError("unknown message element")
	ErrReadInput            = NewError("failed to read input")
)

// attrParameter is the attribute key naming the offending parameter.
const attrParameter = "parameter"

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
//
// Every Error derived from a sentinel through [Error.With] or [Error.Wrap]
// matches that sentinel with [errors.Is].
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	base  *Error      // Sentinel this error was derived from
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	e := &Error{msg: msg}
	e.base = e

	return e
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
//
// The message is "<msg>: <err>" with any attributes appended in brackets,
// omitting whichever parts are empty.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	s := strings.Join(part, ": ")

	if len(e.attrs) > 0 {
		kv := make([]string, len(e.attrs))
		for i, a := range e.attrs {
			kv[i] = a.Key + "=" + strconv.Quote(a.Value.String())
		}

		s += " [" + strings.Join(kv, " ") + "]"
	}

	return s
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.base == nil {
		return false
	}

	return e.base == t.base
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
		base:  e.base,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		base:  e.base,
	}
}

// Attr returns the value of the first attribute named key found in the error
// chain of err.
func Attr(err error, key string) (slog.Value, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			for _, a := range e.attrs {
				if a.Key == key {
					return a.Value, true
				}
			}
		}

		err = errors.Unwrap(err)
	}

	return slog.Value{}, false
}

// ParameterName returns the name of the parameter that caused err, or the
// empty string if err does not concern a parameter.
func ParameterName(err error) string {
	v, ok := Attr(err, attrParameter)
	if !ok {
		return ""
	}

	return v.String()
}

// ParseError describes where and why a template was rejected.
type ParseError struct {
	Position

	Source   string   // The template text being parsed
	Expected []string // Tokens that would have been accepted at Position
	Found    string   // Text found at Position ("" at end of input)

	err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))

	if e.err != nil && !errors.Is(e.err, ErrParse) {
		buf.WriteString(": ")
		buf.WriteString(e.err.Error())

		return buf.String()
	}

	if len(e.Expected) > 0 {
		buf.WriteString(": expected ")
		buf.WriteString(strings.Join(quoteAll(e.Expected), " or "))
	}

	if e.Found == "" {
		buf.WriteString(", found end of input")
	} else {
		buf.WriteString(", found ")
		buf.WriteString(strconv.Quote(e.Found))
	}

	return buf.String()
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.err }

// Is reports whether target is [ErrParse]. Every ParseError belongs to the
// parse failure category regardless of its cause.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", "parse error"),
		slog.Int("line", e.Line),
		slog.Int("column", e.Column),
		slog.Int("offset", e.Offset),
		slog.Any("expected", e.Expected),
		slog.String("found", e.Found),
	)
}

// Snippet returns the offending source line followed by a line holding a
// caret under the error column.
//
//	1 | {count, plural, one{x} other}
//	  |                             ^
func (e *ParseError) Snippet() (line, marker string) {
	lines := strings.Split(e.Source, "\n")
	if e.Line < 1 || e.Line > len(lines) {
		return "", ""
	}

	num := strconv.Itoa(e.Line)
	line = num + " | " + lines[e.Line-1]

	var pad strings.Builder

	pad.WriteString(strings.Repeat(" ", len(num)) + " | ")

	// Tabs are copied; other runes pad to their display width.
	col := 1
	for _, r := range lines[e.Line-1] {
		if col >= e.Column {
			break
		}

		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}

		col++
	}

	if col < e.Column {
		pad.WriteString(strings.Repeat(" ", e.Column-col))
	}

	return line, pad.String() + "^"
}

func quoteAll(s []string) []string {
	q := make([]string, len(s))
	for i, v := range s {
		q[i] = strconv.Quote(v)
	}

	return q
}
