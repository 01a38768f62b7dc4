package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Color constants
const (
	colorGreen  = "#04B575"
	colorPurple = "#7D56F4"
	colorCyan   = "#00D4FF"
	colorGray6  = "#666666"
)

var (
	versionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorPurple)).Underline(true)
	productStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorCyan))
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGreen))
	refStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray6))
)

// RichHandler converts the markdown heading tiers into styled terminal
// output. When stdout isn't a terminal it falls back to the plain handler so
// redirected output stays diffable.
func RichHandler(cmd *cobra.Command, body string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return PlainHandler(cmd, body)
	}

	out := cmd.OutOrStdout()

	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			fmt.Fprintln(out, versionStyle.Render(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "### "):
			fmt.Fprintln(out, productStyle.Render(strings.TrimPrefix(line, "### ")))
		case strings.HasPrefix(line, "#### "):
			fmt.Fprintln(out, "  "+typeStyle.Render(strings.TrimPrefix(line, "#### ")))
		case strings.HasPrefix(line, "- !"):
			// dim the merge request reference, keep the rest as-is
			ref, rest, found := strings.Cut(strings.TrimPrefix(line, "- "), " ")
			if found {
				fmt.Fprintf(out, "  • %s %s\n", refStyle.Render(ref), rest)
			} else {
				fmt.Fprintf(out, "  • %s\n", ref)
			}
		case strings.HasPrefix(line, "- "):
			fmt.Fprintf(out, "  • %s\n", strings.TrimPrefix(line, "- "))
		default:
			fmt.Fprintln(out, line)
		}
	}

	return nil
}
