package msg

import (
	"context"
	"encoding/binary"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/klauspost/readahead"
	"github.com/zeebo/xxh3"
)

// globalCache stores parse results keyed by the hash of source and options.
var globalCache sync.Map

// entry holds the parse result of one source/options pair.
type entry struct {
	once sync.Once
	msg  *Message
	err  error
}

// hashOptions hashes the options that affect parse results.
func hashOptions(key optionsKey) uint64 {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(int64(key.maxDepth)))

	return xxh3.Hash(buf[:])
}

// cacheKey combines the source hash with the options hash.
func cacheKey(source string, key optionsKey) string {
	return strconv.FormatUint(xxh3.HashString(source)^hashOptions(key), 36)
}

// ParseString parses a template.
//
// Results, including failures, are cached for the life of the process and
// shared between callers; use [WithoutCache] to bypass the cache.
func ParseString(ctx context.Context, s string, opts ...Option) (*Message, error) {
	o := makeOptions(opts...)

	o.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(s)),
	)

	if o.noCache {
		return parse(ctx, s, o)
	}

	key := cacheKey(s, o.key)

	value, cacheHit := globalCache.LoadOrStore(key, new(entry))

	e, ok := value.(*entry)
	if !ok {
		return parse(ctx, s, o)
	}

	o.logger.TraceContext(ctx, "cache lookup",
		slog.String("key", key),
		slog.Bool("cache_hit", cacheHit),
	)

	e.once.Do(func() {
		e.msg, e.err = parse(ctx, s, o)
	})

	return e.msg, e.err
}

// ParseReader reads a template from r and parses it with [ParseString].
func ParseReader(ctx context.Context, r io.Reader, opts ...Option) (*Message, error) {
	// Wrap reader with async read-ahead for concurrent I/O.
	ra := readahead.NewReader(r)
	defer ra.Close()

	data, err := io.ReadAll(ra)
	if err != nil {
		return nil, ErrReadInput.Wrap(err).
			With(slog.String("source", "reader"))
	}

	return ParseString(ctx, string(data), opts...)
}

// MustParse is like [ParseString] but panics on error.
// It is intended for templates known at compile time.
func MustParse(s string, opts ...Option) *Message {
	m, err := ParseString(context.Background(), s, opts...)
	if err != nil {
		panic(err)
	}

	return m
}

// ClearCache removes all cached parse results.
// This is primarily useful for testing or when memory needs to be reclaimed.
func ClearCache() {
	globalCache.Clear()
}
