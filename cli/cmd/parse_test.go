package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ardnew/msgfmt/msg"
)

const parseSourceText = "Hi {name}, {n, plural, one{# new} other{# new}}"

func TestParse_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func(context.Context) error
		want string
	}{
		{
			name: "tree",
			run:  (&Tree{Input: Input{Source: "-"}}).Run,
			want: strings.Join([]string{
				`Text "Hi "`,
				`Parameter name`,
				`Text ", "`,
				`Plural n`,
				`  Case one`,
				`    Text "# new"`,
				`  Case other`,
				`    Text "# new"`,
				``,
			}, "\n"),
		},
		{
			name: "template",
			run:  (&Template{Input: Input{Source: "-"}}).Run,
			want: parseSourceText + "\n",
		},
		{
			name: "json compact",
			run:  (&JSON{Input: Input{Source: "-"}}).Run,
			want: `[{"text":"Hi "},{"parameter":"name"},{"text":", "},` +
				`{"plural":{"cases":[{"message":[{"text":"# new"}],"selector":"one"},` +
				`{"message":[{"text":"# new"}],"selector":"other"}],"parameter":"n"}}]` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := run(t, parseSourceText, tt.run)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Run() output =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestParse_Run_Structured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		run    func(context.Context) error
		decode func([]byte, any) error
	}{
		{
			name:   "json indented",
			run:    (&JSON{Input: Input{Source: "-"}, Indent: 2}).Run,
			decode: json.Unmarshal,
		},
		{
			name:   "yaml block",
			run:    (&YAML{Input: Input{Source: "-"}, Indent: 2}).Run,
			decode: decodeYAML,
		},
		{
			name:   "yaml flow",
			run:    (&YAML{Input: Input{Source: "-"}}).Run,
			decode: decodeYAML,
		},
		{
			name:   "msgpack",
			run:    (&Msgpack{Input: Input{Source: "-"}}).Run,
			decode: msgpack.Unmarshal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, "Hi {name}", tt.run)
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			var decoded []map[string]any
			if err := tt.decode([]byte(out), &decoded); err != nil {
				t.Fatalf("decode error = %v\n%s", err, out)
			}

			if len(decoded) != 2 || decoded[0]["text"] != "Hi " || decoded[1]["parameter"] != "name" {
				t.Errorf("decoded = %#v", decoded)
			}
		})
	}
}

func TestParse_Run_SyntaxError(t *testing.T) {
	t.Parallel()

	out, err := run(t, "{n, plural, one{x} other}", (&Tree{Input: Input{Source: "-"}}).Run)

	var perr *msg.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Run() error = %v, want *msg.ParseError", err)
	}

	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}

	if out != "" {
		t.Errorf("Run() output = %q, want none", out)
	}
}

func TestParse_Run_MaxDepth(t *testing.T) {
	t.Parallel()

	src := "{a, select, x{{b, select, y{z}}}}"

	_, err := run(t, src, (&Template{Input: Input{Source: "-", MaxDepth: 1}}).Run)
	if !errors.Is(err, msg.ErrMaxDepthExceeded) {
		t.Errorf("Run() error = %v, want ErrMaxDepthExceeded", err)
	}

	var buf bytes.Buffer

	ctx := WithStdio(t.Context(), strings.NewReader(src), &buf, nil)
	if err := (&Template{Input: Input{Source: "-", MaxDepth: 2}}).Run(ctx); err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

func decodeYAML(data []byte, v any) error { return yaml.Unmarshal(data, v) }
