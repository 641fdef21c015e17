package msg

import (
	"iter"
	"log/slog"
	"math"
	"slices"
	"strconv"

	"fortio.org/safecast"
)

// ValueKind identifies the runtime shape of a [Value].
type ValueKind int

const (
	KindString ValueKind = iota // string
	KindInt                     // number
)

// String returns the name of k.
func (k ValueKind) String() string {
	if k == KindInt {
		return "number"
	}

	return "string"
}

// Value is a parameter value: either text or a signed integer.
// The zero Value is the empty string.
type Value struct {
	kind ValueKind
	str  string
	num  int64
}

// StringValue returns a text Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue returns an integer Value.
func NumberValue(n int64) Value { return Value{kind: KindInt, num: n} }

// Kind returns the shape of v.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the text of a string Value.
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }

// Int returns the integer of a number Value.
func (v Value) Int() (int64, bool) { return v.num, v.kind == KindInt }

// String renders v as it appears in formatted output.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.num, 10)
	}

	return v.str
}

// LogValue implements slog.LogValuer.
func (v Value) LogValue() slog.Value {
	if v.kind == KindInt {
		return slog.Int64Value(v.num)
	}

	return slog.StringValue(v.str)
}

// Param is a single named binding.
type Param struct {
	Name  string
	Value Value
}

// Str returns a string binding.
func Str(name, s string) Param { return Param{Name: name, Value: StringValue(s)} }

// Int returns an integer binding.
func Int(name string, n int64) Param { return Param{Name: name, Value: NumberValue(n)} }

// Parameters is an immutable set of bindings with pairwise distinct names,
// kept in construction order. The zero Parameters is empty.
type Parameters struct {
	list  []Param
	index map[string]int
}

// NewParameters returns the binding set holding params.
// It fails with [ErrDuplicateParameter] if two params share a name.
func NewParameters(params ...Param) (Parameters, error) {
	ps := Parameters{
		list:  slices.Clone(params),
		index: make(map[string]int, len(params)),
	}

	for i, p := range ps.list {
		if _, dup := ps.index[p.Name]; dup {
			return Parameters{}, ErrDuplicateParameter.With(
				slog.String(attrParameter, p.Name),
			)
		}

		ps.index[p.Name] = i
	}

	return ps, nil
}

// MustParameters is like [NewParameters] but panics on duplicate names.
// It is intended for literal binding sets.
func MustParameters(params ...Param) Parameters {
	ps, err := NewParameters(params...)
	if err != nil {
		panic(err)
	}

	return ps
}

// ParametersFromMap converts decoded configuration values to a binding set
// ordered by name. Strings become text values; integers, and floats with no
// fractional part, become numbers. Any other value fails with
// [ErrInvalidValueType].
func ParametersFromMap(m map[string]any) (Parameters, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}

	slices.Sort(names)

	params := make([]Param, 0, len(names))

	for _, name := range names {
		v, err := valueOf(m[name])
		if err != nil {
			return Parameters{}, WrapError(err).With(
				slog.String(attrParameter, name),
			)
		}

		params = append(params, Param{Name: name, Value: v})
	}

	return NewParameters(params...)
}

// ParametersFromStrings returns a binding set of text values ordered by name.
func ParametersFromStrings(m map[string]string) Parameters {
	params := make([]Param, 0, len(m))
	for name, s := range m {
		params = append(params, Str(name, s))
	}

	slices.SortFunc(params, func(a, b Param) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		default:
			return 0
		}
	})

	// Map keys are distinct.
	return MustParameters(params...)
}

func valueOf(v any) (Value, error) {
	var (
		n   int64
		err error
	)

	switch v := v.(type) {
	case Value:
		return v, nil
	case string:
		return StringValue(v), nil
	case int:
		return NumberValue(int64(v)), nil
	case int8:
		return NumberValue(int64(v)), nil
	case int16:
		return NumberValue(int64(v)), nil
	case int32:
		return NumberValue(int64(v)), nil
	case int64:
		return NumberValue(v), nil
	case uint:
		n, err = safecast.Conv[int64](v)
	case uint8:
		return NumberValue(int64(v)), nil
	case uint16:
		return NumberValue(int64(v)), nil
	case uint32:
		return NumberValue(int64(v)), nil
	case uint64:
		n, err = safecast.Conv[int64](v)
	case float32:
		return valueOf(float64(v))
	case float64:
		if v != math.Trunc(v) {
			return Value{}, ErrInvalidValueType.With(slog.Float64("value", v))
		}

		n, err = safecast.Convert[int64](v)
	default:
		return Value{}, ErrInvalidValueType.With(slog.Any("value", v))
	}

	if err != nil {
		return Value{}, ErrNumberRange.Wrap(err)
	}

	return NumberValue(n), nil
}

// Lookup returns the value bound to name.
func (ps Parameters) Lookup(name string) (Value, bool) {
	i, ok := ps.index[name]
	if !ok {
		return Value{}, false
	}

	return ps.list[i].Value, true
}

// Len returns the number of bindings.
func (ps Parameters) Len() int { return len(ps.list) }

// Names returns the bound names in order.
func (ps Parameters) Names() []string {
	names := make([]string, len(ps.list))
	for i, p := range ps.list {
		names[i] = p.Name
	}

	return names
}

// All returns an iterator over the bindings in order.
func (ps Parameters) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, p := range ps.list {
			if !yield(p.Name, p.Value) {
				return
			}
		}
	}
}

// LogValue implements slog.LogValuer.
func (ps Parameters) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(ps.list))
	for i, p := range ps.list {
		attrs[i] = slog.Any(p.Name, p.Value)
	}

	return slog.GroupValue(attrs...)
}
