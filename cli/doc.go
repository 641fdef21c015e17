// Package cli contains the command line interface for msgfmt.
//
// # Usage
//
// Without a subcommand, msgfmt renders a template read from a file or
// standard input:
//
//	msgfmt -t '{count, plural, one {# item} other {# items}}' -I count=3
//	echo 'Hello, {name}!' | msgfmt -P name=World
//
// The subcommands are:
//
//   - parse: print the syntax tree of a template as a tree, JSON, YAML,
//     msgpack, or the normalized template text
//   - catalog render: render one message of a directory of locale files
//   - catalog list: print the locales and keys of a catalog
//   - init: write the current flag values to the configuration file
//   - version: print version information
//
// # Configuration
//
// Flag values are resolved in order from the command line, environment
// variables prefixed with MSGFMT_ (for example MSGFMT_LOG_LEVEL), and the
// configuration files config.json and config.yaml in the user configuration
// directory. The YAML loader ([resolve]) accepts nested maps and either
// hyphens or underscores in keys:
//
//	log:
//	  level: debug
//	  pretty: false
//	locale: de-CH
//
// Dotenv files named .env in the working directory and the configuration
// directory are loaded into the environment before flags are parsed.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp layout (RFC3339, kitchen, none, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output on terminals
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o msgfmt .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/msgfmt/pprof)
package cli
