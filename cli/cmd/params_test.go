package cmd

import (
	"errors"
	"testing"

	"github.com/ardnew/msgfmt/msg"
)

func TestReadParams(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "yaml", file: "params.yaml", content: "name: Ada\ncount: 2\n"},
		{name: "yml", file: "params.yml", content: "{name: Ada, count: 2}\n"},
		{name: "toml", file: "params.toml", content: "name = \"Ada\"\ncount = 2\n"},
		{name: "json", file: "params.json", content: `{"name": "Ada", "count": 2}`},
		{name: "unknown extension", file: "params.conf", content: "name: Ada\ncount: 2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, dir, tt.file, tt.content)

			ps, err := readParams(t.Context(), path)
			if err != nil {
				t.Fatalf("readParams() error = %v", err)
			}

			if ps.Len() != 2 {
				t.Errorf("Len() = %d, want 2", ps.Len())
			}

			if v, ok := ps.Lookup("name"); !ok || v.String() != "Ada" {
				t.Errorf("name = %v, want Ada", v)
			}

			if v, ok := ps.Lookup("count"); !ok {
				t.Error("count not bound")
			} else if n, ok := v.Int(); !ok || n != 2 {
				t.Errorf("count = %v, want number 2", v)
			}
		})
	}
}

func TestReadParams_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		target  error
	}{
		{name: "malformed", file: "bad.json", content: `{"name": `, target: ErrReadParams},
		{name: "nested map", file: "nested.yaml", content: "user:\n  name: Ada\n", target: msg.ErrInvalidValueType},
		{name: "fraction", file: "ratio.toml", content: "ratio = 0.5\n", target: msg.ErrInvalidValueType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, dir, tt.file, tt.content)

			_, err := readParams(t.Context(), path)
			if !errors.Is(err, tt.target) {
				t.Fatalf("readParams() error = %v, want %v", err, tt.target)
			}

			if !errors.Is(err, ErrReadParams) {
				t.Errorf("readParams() error = %v, want ErrReadParams", err)
			}
		})
	}

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		if _, err := readParams(t.Context(), dir+"/none.yaml"); !errors.Is(err, ErrReadParams) {
			t.Errorf("readParams() error = %v, want ErrReadParams", err)
		}
	})
}

func TestBindings_Parameters(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "params.yaml", "city: Oslo\n")

	b := Bindings{
		Param:  map[string]string{"b": "two", "a": "one"},
		Int:    map[string]int64{"n": 7},
		Params: path,
	}

	ps, err := b.parameters(t.Context())
	if err != nil {
		t.Fatalf("parameters() error = %v", err)
	}

	want := []string{"city", "a", "b", "n"}
	got := ps.Names()

	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBindings_Parameters_Duplicate(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "params.json", `{"name": "file"}`)

	b := Bindings{Param: map[string]string{"name": "flag"}, Params: path}

	_, err := b.parameters(t.Context())
	if !errors.Is(err, msg.ErrDuplicateParameter) {
		t.Fatalf("parameters() error = %v, want ErrDuplicateParameter", err)
	}

	if got := msg.ParameterName(err); got != "name" {
		t.Errorf("ParameterName() = %q, want %q", got, "name")
	}
}

func TestFormatting_Options(t *testing.T) {
	t.Parallel()

	if got := len(Formatting{}.options()); got != 2 {
		t.Errorf("len(options()) = %d, want 2", got)
	}

	if got := len(Formatting{CLDR: true}.options()); got != 3 {
		t.Errorf("len(options()) with CLDR = %d, want 3", got)
	}
}

func TestParseLocale(t *testing.T) {
	t.Parallel()

	tag, err := parseLocale("pt-BR")
	if err != nil || tag.String() != "pt-BR" {
		t.Errorf("parseLocale(pt-BR) = %v, %v", tag, err)
	}

	_, err = parseLocale("not a locale")
	if !errors.Is(err, ErrInvalidLocale) {
		t.Errorf("parseLocale() error = %v, want ErrInvalidLocale", err)
	}

	if v, ok := msg.Attr(err, "locale"); !ok || v.String() != "not a locale" {
		t.Errorf("locale attribute = %v", v)
	}
}
