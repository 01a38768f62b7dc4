// Package output provides the selectable output styles for rendered
// changelog text. The core renderer produces plain markdown; handlers here
// own any conversion to richer presentations.
package output

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ryclarke/changelog-tool/config"
)

const (
	// Plain emits the rendered markdown unchanged.
	Plain = "plain"
	// Rich converts the markdown to styled terminal output.
	Rich = "rich"
	// TUI displays the changelog in an interactive scrollable pager.
	TUI = "tui"
)

// AvailableStyles lists all supported output styles.
var AvailableStyles = []string{Plain, Rich, TUI}

// Handler represents a function for presenting rendered changelog text.
type Handler func(cmd *cobra.Command, body string) error

// GetHandler returns an output Handler based on the configuration.
func GetHandler(ctx context.Context) Handler {
	switch config.Viper(ctx).GetString(config.OutputStyle) {
	case Rich:
		return RichHandler
	case TUI:
		return TUIHandler
	default:
		return PlainHandler
	}
}

// PlainHandler writes the rendered markdown to the command's output stream.
func PlainHandler(cmd *cobra.Command, body string) error {
	_, err := cmd.OutOrStdout().Write([]byte(body))

	return err
}
