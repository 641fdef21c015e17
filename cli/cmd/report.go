package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/msgfmt/msg"
)

// Report writes the location of a template syntax error in err to w: the
// error message, the offending source line, and a caret under the error
// column. It reports whether err held a syntax error.
func Report(w io.Writer, err error) bool {
	var perr *msg.ParseError
	if !errors.As(err, &perr) {
		return false
	}

	r := lipgloss.NewRenderer(w)
	style := func(color string) lipgloss.Style {
		// Tabs must keep their width for the caret to line up.
		return r.NewStyle().
			Foreground(lipgloss.Color(color)).
			TabWidth(lipgloss.NoTabConversion)
	}

	fmt.Fprintln(w, style("1").Render(perr.Error()))

	if line, marker := perr.Snippet(); line != "" {
		fmt.Fprintln(w, style("8").Render(line))
		fmt.Fprintln(w, style("3").Render(marker))
	}

	return true
}
