package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/msgfmt/pkg"
)

// Version prints the program name and version.
type Version struct{}

// Run executes the version command.
func (Version) Run(ctx context.Context) error {
	_, err := fmt.Fprintln(stdioFrom(ctx).Out, pkg.Name, strings.TrimSpace(pkg.Version))

	return err
}
