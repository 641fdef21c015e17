package log

// Option applies a configuration option to config.
type Option func(config) config

// apply applies opts to cfg in order. Nil options are ignored.
func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}
