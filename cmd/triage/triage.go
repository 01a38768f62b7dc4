// Package triage implements the sprint-to-release triage workflow.
package triage

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cobra"

	"github.com/ryclarke/changelog-tool/changelog"
	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/milestone"
	"github.com/ryclarke/changelog-tool/scm"
	"github.com/ryclarke/changelog-tool/utils"
)

const (
	releaseFlag         = "release"
	applyFlag           = "apply"
	labelFlag           = "label"
	createMilestoneFlag = "create-milestone"
)

// Cmd configures the triage command
func Cmd() *cobra.Command {
	triageCmd := &cobra.Command{
		Use:   "triage <sprint> ... --release <version>",
		Short: "Assign merge requests collected from sprints to a release milestone",
		Long: `Assign merge requests collected from sprints to a release milestone

Merge requests merged under the given sprint milestones are collected and
assigned to the release milestone. Sprints that cannot be resolved (missing
or ambiguous) are skipped and reported. This command is a dry run unless
--apply is set.`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			viper := config.Viper(cmd.Context())

			if apply, _ := cmd.Flags().GetBool(applyFlag); apply {
				viper.Set(config.DryRun, false)
			}

			return utils.ValidateRequiredConfig(cmd.Context(), config.Project)
		},
		RunE: run,
	}

	triageCmd.Flags().StringP(releaseFlag, "r", "", "release milestone to assign collected merge requests to")
	triageCmd.Flags().StringSliceP(labelFlag, "l", nil, "additional label(s) to apply to each collected merge request")
	triageCmd.Flags().Bool(applyFlag, false, "apply milestone and label changes (dry-run otherwise)")
	triageCmd.Flags().Bool(createMilestoneFlag, false, "create the release milestone if it does not exist")
	triageCmd.MarkFlagRequired(releaseFlag)

	return triageCmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	viper := config.Viper(ctx)

	provider := scm.Get(ctx, viper.GetString(config.Provider), viper.GetString(config.Project))

	releaseTitle, _ := cmd.Flags().GetString(releaseFlag)
	autoCreate, _ := cmd.Flags().GetBool(createMilestoneFlag)
	extraLabels, _ := cmd.Flags().GetStringSlice(labelFlag)

	if err := scm.ValidateWorkflow(provider.Capabilities(), &scm.WorkflowOptions{
		CreateMilestone: autoCreate,
	}); err != nil {
		return err
	}

	release, err := milestone.ResolveRelease(ctx, provider, releaseTitle, autoCreate)
	if err != nil {
		return err
	}

	records, report, err := milestone.Collect(ctx, provider, args)
	if err != nil {
		return err
	}

	printReport(cmd, report)

	dryRun := viper.GetBool(config.DryRun)

	for _, record := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "- !%d %s (%s)\n", record.ID, changelog.NormalizeTitle(record.Title), record.Author)

		if dryRun {
			continue
		}

		if err := provider.SetMilestone(record.ID, release.ID); err != nil {
			return err
		}

		if len(extraLabels) > 0 {
			// Keep the existing label order intact so that convention matching
			// stays stable; new labels are appended in flag order.
			seen := mapset.NewSet(record.Labels...)
			labels := append([]string(nil), record.Labels...)

			for _, label := range extraLabels {
				if seen.Add(label) {
					labels = append(labels, label)
				}
			}

			if err := provider.SetLabels(record.ID, labels); err != nil {
				return err
			}
		}
	}

	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "\nDry run: %d merge request(s) would be assigned to %q (use --apply to persist)\n", len(records), release.Title)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "\nAssigned %d merge request(s) to %q\n", len(records), release.Title)
	}

	return nil
}

func printReport(cmd *cobra.Command, report *milestone.Report) {
	if len(report.Collected) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Collected sprints: %v\n", report.Collected)
	}

	// Skipped sprints are reported, not silent
	skipped := make([]string, 0, len(report.Skipped))
	for sprint := range report.Skipped {
		skipped = append(skipped, sprint)
	}

	sort.Strings(skipped)

	for _, sprint := range skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "WARNING: skipped sprint %q: %v\n", sprint, report.Skipped[sprint])
	}

	fmt.Fprintln(cmd.OutOrStdout())
}
