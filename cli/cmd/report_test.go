package cmd

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/ardnew/msgfmt/msg"
)

func TestReport(t *testing.T) {
	t.Parallel()

	perr := &msg.ParseError{
		Position: msg.Position{Line: 2, Column: 4, Offset: 9},
		Source:   "first\nHi {\nthird",
		Expected: []string{"identifier"},
	}

	tests := []struct {
		name string
		err  error
		want string
		ok   bool
	}{
		{
			name: "parse error",
			err:  perr,
			want: "parse error at line 2, column 4: expected \"identifier\", found end of input\n" +
				"2 | Hi {\n" +
				"  |    ^\n",
			ok: true,
		},
		{
			name: "wrapped",
			err:  fmt.Errorf("render: %w", perr),
			want: "parse error at line 2, column 4: expected \"identifier\", found end of input\n" +
				"2 | Hi {\n" +
				"  |    ^\n",
			ok: true,
		},
		{
			name: "other error",
			err:  io.EOF,
		},
		{
			name: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			if ok := Report(&buf, tt.err); ok != tt.ok {
				t.Errorf("Report() = %v, want %v", ok, tt.ok)
			}

			if buf.String() != tt.want {
				t.Errorf("Report() wrote\n%q\nwant\n%q", buf.String(), tt.want)
			}
		})
	}
}

func TestReport_NoSnippet(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	Report(&buf, &msg.ParseError{Position: msg.Position{Line: 5, Column: 1}, Found: "}"})

	want := "parse error at line 5, column 1, found \"}\"\n"
	if buf.String() != want {
		t.Errorf("Report() wrote %q, want %q", buf.String(), want)
	}
}
