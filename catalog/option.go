package catalog

import (
	"runtime"

	"golang.org/x/text/language"

	"github.com/ardnew/msgfmt/log"
	"github.com/ardnew/msgfmt/msg"
)

// DefaultLocale is the last locale consulted when a message is missing from
// the requested locale and its parents.
var DefaultLocale = language.English

type options struct {
	fallback    language.Tag
	concurrency int
	logger      log.Logger
	format      []msg.Option
}

// Option configures a [Catalog].
type Option func(*options)

// WithDefaultLocale sets the locale of last resort.
func WithDefaultLocale(tag language.Tag) Option {
	return func(o *options) { o.fallback = tag }
}

// WithConcurrency bounds the number of files decoded and parsed at once.
// Values below one select the number of usable CPUs.
func WithConcurrency(n int) Option {
	return func(o *options) { o.concurrency = n }
}

// WithLogger sets the logger receiving load and lookup records.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithFormatOptions sets the options used to parse and format every template
// of the catalog.
func WithFormatOptions(opts ...msg.Option) Option {
	return func(o *options) { o.format = append(o.format, opts...) }
}

func makeOptions(opts ...Option) options {
	o := options{fallback: DefaultLocale}

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	return o
}
