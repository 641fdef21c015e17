package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] that reads a YAML configuration
// file:
//
//	log-level: debug
//	log_format: json
//	log:
//	  pretty: false
//	locale: de
//
// Keys may use hyphens or underscores, and nested maps are joined with
// hyphens, so all three entries above name flags of the log group. A
// malformed file is reported by kong with its path.
//
// Command-line flags and environment variables override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	c := make(config)
	c.flatten("", tree)

	return c, nil
}

// config implements [kong.Resolver] for flattened YAML configuration.
type config map[string]any

func (c config) flatten(prefix string, tree map[string]any) {
	for k, v := range tree {
		key := strings.ReplaceAll(k, "_", "-")
		if prefix != "" {
			key = prefix + "-" + key
		}

		switch v := v.(type) {
		case map[string]any:
			c.flatten(key, v)

		// Kong parses numbers from strings.
		case int, int64, uint64:
			c[key] = fmt.Sprint(v)

		case float64:
			c[key] = strconv.FormatFloat(v, 'f', -1, 64)

		default:
			c[key] = v
		}
	}
}

// Validate implements [kong.Resolver].
func (c config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (c config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := c[strings.ReplaceAll(flag.Name, "_", "-")]; ok {
		return value, nil
	}

	// Not found, let kong use defaults.
	return nil, nil
}
