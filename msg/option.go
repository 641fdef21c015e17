package msg

import (
	"github.com/ardnew/msgfmt/log"
)

// DefaultMaxDepth is the default maximum nesting depth of plural and select
// case bodies.
// Users may modify this before parsing to change the default.
var DefaultMaxDepth = 64

// optionsKey holds the options that affect parse results.
// It participates in parse cache keys.
type optionsKey struct {
	maxDepth int
}

// options holds parse and format configuration.
type options struct {
	key     optionsKey
	plural  PluralResolver
	number  NumberFormatter
	logger  log.Logger // outside optionsKey, doesn't affect cache
	noCache bool
}

// Option configures parsing or formatting behavior.
type Option func(*options)

// WithMaxDepth sets the maximum nesting depth of case bodies. Templates
// nested deeper fail with [ErrMaxDepthExceeded].
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.key.maxDepth = depth
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPluralResolver replaces the plural category rule used to match
// category selectors. Exact selectors and the "other" fallback are not
// affected.
func WithPluralResolver(r PluralResolver) Option {
	return func(o *options) {
		if r != nil {
			o.plural = r
		}
	}
}

// WithNumberFormatter replaces the service rendering number elements.
func WithNumberFormatter(f NumberFormatter) Option {
	return func(o *options) {
		if f != nil {
			o.number = f
		}
	}
}

// WithoutCache disables the parse cache for a single parse.
func WithoutCache() Option {
	return func(o *options) {
		o.noCache = true
	}
}

// makeOptions returns the defaults overridden by opts.
func makeOptions(opts ...Option) options {
	o := options{
		key:    optionsKey{maxDepth: DefaultMaxDepth},
		plural: FixedRule{},
		number: DefaultNumberFormatter,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
