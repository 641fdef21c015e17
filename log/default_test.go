package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

// swapDefault installs a package-level logger writing to buf and restores
// the previous one when the test ends.
func swapDefault(t *testing.T, buf *bytes.Buffer, opts ...Option) {
	t.Helper()

	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	SetDefault(Make(buf, plainJSON(opts...)...))
}

func TestDefault_PackageFunctions(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		level string
		log   func()
	}{
		{"TRACE", func() { Trace("m") }},
		{"TRACE", func() { TraceContext(ctx, "m") }},
		{"DEBUG", func() { Debug("m") }},
		{"DEBUG", func() { DebugContext(ctx, "m") }},
		{"INFO", func() { Info("m") }},
		{"INFO", func() { InfoContext(ctx, "m") }},
		{"WARN", func() { Warn("m") }},
		{"WARN", func() { WarnContext(ctx, "m") }},
		{"ERROR", func() { Error("m") }},
		{"ERROR", func() { ErrorContext(ctx, "m") }},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer

			swapDefault(t, &buf, WithLevel(LevelTrace))
			tt.log()

			if record := decode(t, &buf); record["level"] != tt.level {
				t.Errorf("level = %v, want %s", record["level"], tt.level)
			}
		})
	}
}

func TestDefault_Config(t *testing.T) {
	var buf bytes.Buffer

	swapDefault(t, &buf, WithLevel(LevelInfo))

	Config(WithLevel(LevelError))
	Info("suppressed")

	if buf.Len() != 0 {
		t.Errorf("record below reconfigured level written: %q", buf.String())
	}

	if Default().Level() != LevelError {
		t.Errorf("Default().Level() = %v, want error", Default().Level())
	}

	Error("written")

	if !strings.Contains(buf.String(), "written") {
		t.Error("Config should keep the default output")
	}
}

func TestDefault_With(t *testing.T) {
	var buf bytes.Buffer

	swapDefault(t, &buf, WithLevel(LevelInfo))

	With().Info("bare")

	if record := decode(t, &buf); record["msg"] != "bare" {
		t.Errorf("msg = %v", record["msg"])
	}
}

func TestDefault_Caller(t *testing.T) {
	var buf bytes.Buffer

	swapDefault(t, &buf, WithLevel(LevelInfo), WithCaller(true))

	Info("from package function")

	if !strings.Contains(buf.String(), "default_test.go") {
		t.Errorf("source should name the calling file: %s", buf.String())
	}
}
