package msg

import (
	"errors"
	"log/slog"
	"math"
	"reflect"
	"testing"
)

func TestNewParameters(t *testing.T) {
	t.Parallel()

	ps, err := NewParameters(Str("name", "World"), Int("count", 3))
	if err != nil {
		t.Fatalf("NewParameters error: %v", err)
	}

	if ps.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ps.Len())
	}

	if got := ps.Names(); !reflect.DeepEqual(got, []string{"name", "count"}) {
		t.Errorf("Names() = %v, want construction order", got)
	}

	v, ok := ps.Lookup("count")
	if !ok {
		t.Fatal("count not bound")
	}

	if n, ok := v.Int(); !ok || n != 3 {
		t.Errorf("count = %v, want number 3", v)
	}

	if _, ok := ps.Lookup("missing"); ok {
		t.Error("Lookup(missing) reported a binding")
	}
}

func TestNewParameters_Duplicate(t *testing.T) {
	t.Parallel()

	_, err := NewParameters(Str("a", "1"), Str("b", "2"), Int("a", 3))
	if !errors.Is(err, ErrDuplicateParameter) {
		t.Fatalf("expected ErrDuplicateParameter, got %v", err)
	}

	if ParameterName(err) != "a" {
		t.Errorf("ParameterName = %q, want %q", ParameterName(err), "a")
	}
}

func TestMustParameters_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustParameters did not panic on duplicate names")
		}
	}()

	_ = MustParameters(Str("a", "1"), Str("a", "2"))
}

func TestParameters_ZeroValue(t *testing.T) {
	t.Parallel()

	var ps Parameters

	if ps.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ps.Len())
	}

	if _, ok := ps.Lookup("x"); ok {
		t.Error("zero Parameters reported a binding")
	}
}

func TestParameters_All(t *testing.T) {
	t.Parallel()

	ps := MustParameters(Str("a", "1"), Str("b", "2"), Str("c", "3"))

	var names []string

	for name := range ps.All() {
		names = append(names, name)
		if name == "b" {
			break
		}
	}

	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Errorf("iterated %v, want [a b]", names)
	}
}

func TestParametersFromMap(t *testing.T) {
	t.Parallel()

	ps, err := ParametersFromMap(map[string]any{
		"name":  "World",
		"count": 3,
		"whole": 4.0,
		"small": uint8(7),
		"big":   uint64(math.MaxInt64),
		"raw":   NumberValue(-1),
	})
	if err != nil {
		t.Fatalf("ParametersFromMap error: %v", err)
	}

	want := []string{"big", "count", "name", "raw", "small", "whole"}
	if got := ps.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	tests := []struct {
		name string
		want Value
	}{
		{"name", StringValue("World")},
		{"count", NumberValue(3)},
		{"whole", NumberValue(4)},
		{"small", NumberValue(7)},
		{"big", NumberValue(math.MaxInt64)},
		{"raw", NumberValue(-1)},
	}

	for _, tt := range tests {
		if got, _ := ps.Lookup(tt.name); got != tt.want {
			t.Errorf("%s = %#v, want %#v", tt.name, got, tt.want)
		}
	}
}

func TestParametersFromMap_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  any
		target error
	}{
		{"fraction", 1.5, ErrInvalidValueType},
		{"bool", true, ErrInvalidValueType},
		{"nil", nil, ErrInvalidValueType},
		{"slice", []string{"a"}, ErrInvalidValueType},
		{"overflow", uint64(math.MaxUint64), ErrNumberRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParametersFromMap(map[string]any{"p": tt.value})
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}

			if ParameterName(err) != "p" {
				t.Errorf("ParameterName = %q, want %q", ParameterName(err), "p")
			}
		})
	}
}

func TestParametersFromStrings(t *testing.T) {
	t.Parallel()

	ps := ParametersFromStrings(map[string]string{"b": "2", "a": "1"})

	if got := ps.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v, want sorted", got)
	}

	v, _ := ps.Lookup("b")
	if s, ok := v.Text(); !ok || s != "2" {
		t.Errorf("b = %#v, want string 2", v)
	}
}

func TestValue_LogValue(t *testing.T) {
	t.Parallel()

	if got := NumberValue(5).LogValue(); got.Kind() != slog.KindInt64 || got.Int64() != 5 {
		t.Errorf("NumberValue LogValue = %v", got)
	}

	if got := StringValue("x").LogValue(); got.Kind() != slog.KindString || got.String() != "x" {
		t.Errorf("StringValue LogValue = %v", got)
	}

	var zero Value
	if zero.Kind() != KindString || zero.String() != "" {
		t.Errorf("zero Value = %#v, want empty string", zero)
	}
}
