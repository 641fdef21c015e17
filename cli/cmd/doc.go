// Package cmd implements the msgfmt subcommands: render, parse, catalog,
// init and version.
package cmd

var (
	// ConfigIdentifier is the kong variable identifier containing the path of
	// the configuration file written by [Init].
	ConfigIdentifier = "config"

	// MaxDepthIdentifier is the kong variable identifier containing the
	// default maximum nesting depth of templates.
	MaxDepthIdentifier = "maxDepth"
)
