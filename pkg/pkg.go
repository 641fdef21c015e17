//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
)

// Version is the semantic version of msgfmt embedded at build time.
//
//go:embed VERSION
var Version string

const (
	// Name is the command name. It also names the configuration and cache
	// directories and prefixes environment variables.
	Name = "msgfmt"
	// Description is a short summary used in help output.
	Description = "Parse and render ICU-style message templates"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
//
//nolint:gochecknoglobals
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
