package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/msgfmt/msg"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type (
	stdioKey struct{}

	// Stdio holds the streams used by commands.
	Stdio struct {
		In       io.Reader
		Out, Err io.Writer
	}
)

// WithStdio returns a new context.Context whose commands read from in and
// write to out and errOut. Nil streams fall back to the process streams.
func WithStdio(ctx context.Context, in io.Reader, out, errOut io.Writer) context.Context {
	return context.WithValue(ctx, stdioKey{}, Stdio{In: in, Out: out, Err: errOut})
}

// stdioFrom returns the streams stored by WithStdio, defaulting to the
// process streams.
func stdioFrom(ctx context.Context) Stdio {
	s, _ := ctx.Value(stdioKey{}).(Stdio)

	if s.In == nil {
		s.In = os.Stdin
	}

	if s.Out == nil {
		s.Out = os.Stdout
	}

	if s.Err == nil {
		s.Err = os.Stderr
	}

	return s
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// parseSource parses the template in the file at path, or in stdin if path
// is empty or "-".
func parseSource(ctx context.Context, path string, opts ...msg.Option) (*msg.Message, error) {
	var r io.Reader

	if path == "" || path == stdinSource {
		r = stdioFrom(ctx).In
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, ErrReadSource.Wrap(err).With(slog.String("file", path))
		}
		defer f.Close()

		r = f
	}

	return msg.ParseReader(ctx, r, opts...)
}
