package changelog

import (
	"context"
	"fmt"
	"strings"

	"github.com/ryclarke/changelog-tool/config"
)

// Options controls changelog rendering.
type Options struct {
	// StripInternal omits merge request references and author names,
	// producing output suitable for public release notes.
	StripInternal bool
	// ForceVersionHeadings renders the version heading even when the tree
	// holds exactly one version (suppressed by default in that case).
	ForceVersionHeadings bool
	// VersionPrefix is stripped once from the front of each version heading.
	VersionPrefix string
}

// OptionsFromConfig builds rendering options from the current configuration.
func OptionsFromConfig(ctx context.Context) Options {
	viper := config.Viper(ctx)

	return Options{
		StripInternal:        viper.GetBool(config.StripInternal),
		ForceVersionHeadings: viper.GetBool(config.ForceVersionHeadings),
		VersionPrefix:        viper.GetString(config.StripVersionPrefix),
	}
}

// Render walks the tree in its deterministic sort order and produces the
// changelog as markdown text. Rendering is pure and idempotent: the same
// tree and options always yield byte-identical output.
func Render(tree Tree, opts Options) string {
	var out strings.Builder

	versions := tree.Versions()
	if len(versions) == 0 {
		return ""
	}

	showVersions := len(versions) > 1 || opts.ForceVersionHeadings

	for _, version := range versions {
		if showVersions {
			fmt.Fprintf(&out, "## %s\n\n", NormalizeVersion(version, opts.VersionPrefix))
		}

		for _, product := range tree.Products(version) {
			fmt.Fprintf(&out, "### %s (%d)\n\n", product, tree.Count(version, product))

			for _, changeType := range tree.Types(version, product) {
				records := tree.Records(version, product, changeType)
				fmt.Fprintf(&out, "#### %s (%d)\n\n", changeType, len(records))

				for _, record := range records {
					if opts.StripInternal {
						fmt.Fprintf(&out, "- %s\n", NormalizeTitle(record.Title))
					} else {
						fmt.Fprintf(&out, "- !%d %s (%s)\n", record.ID, NormalizeTitle(record.Title), record.Author)
					}
				}

				out.WriteString("\n")
			}
		}
	}

	return strings.TrimRight(out.String(), "\n") + "\n"
}
