// Package list implements the flat merge request listing command.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryclarke/changelog-tool/changelog"
	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/milestone"
	"github.com/ryclarke/changelog-tool/scm"
	"github.com/ryclarke/changelog-tool/utils"
)

// Cmd configures the list command
func Cmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list <version>",
		Short: "List the merge requests assigned to a release milestone",
		Long: `List the merge requests assigned to a release milestone

This is the flat listing view: one line per merge request with its reference
and title. A merge request carrying exactly one label shows that label's raw
text bracketed as a display tag, regardless of the label conventions.`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return utils.ValidateRequiredConfig(cmd.Context(), config.Project)
		},
		RunE: run,
	}

	return listCmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	viper := config.Viper(ctx)

	provider := scm.Get(ctx, viper.GetString(config.Provider), viper.GetString(config.Project))

	release, err := milestone.ResolveRelease(ctx, provider, args[0], false)
	if err != nil {
		return err
	}

	records, err := provider.ListMergeRequests(scm.MergeRequestFilter{
		State:          "merged",
		MilestoneTitle: release.Title,
		All:            true,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch merge requests for %q: %w", release.Title, err)
	}

	for _, record := range records {
		if tag := changelog.DisplayTag(record.Labels); tag != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "- !%d %s %s\n", record.ID, tag, changelog.NormalizeTitle(record.Title))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "- !%d %s\n", record.ID, changelog.NormalizeTitle(record.Title))
		}
	}

	return nil
}
