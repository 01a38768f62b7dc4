// Package generate implements the changelog generation command.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryclarke/changelog-tool/changelog"
	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/milestone"
	"github.com/ryclarke/changelog-tool/output"
	"github.com/ryclarke/changelog-tool/scm"
	"github.com/ryclarke/changelog-tool/utils"
)

const (
	stripInternalFlag   = "strip-internal"
	forceHeadingsFlag   = "force-version-headings"
	publishFlag         = "publish"
	createMilestoneFlag = "create-milestone"
	applyFlag           = "apply"
)

// Cmd configures the generate command
func Cmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:     "generate <version> ...",
		Aliases: []string{"gen"},
		Short:   "Generate a changelog for one or more release milestones",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			viper := config.Viper(cmd.Context())

			viper.BindPFlag(config.StripInternal, cmd.Flags().Lookup(stripInternalFlag))
			viper.BindPFlag(config.ForceVersionHeadings, cmd.Flags().Lookup(forceHeadingsFlag))

			// Publishing mutates the remote; require an explicit --apply
			if apply, _ := cmd.Flags().GetBool(applyFlag); apply {
				viper.Set(config.DryRun, false)
			}

			if publish, _ := cmd.Flags().GetBool(publishFlag); publish && len(args) > 1 {
				return fmt.Errorf("--publish supports exactly one release milestone, got %d", len(args))
			}

			return utils.ValidateRequiredConfig(cmd.Context(), config.Project)
		},
		RunE: run,
	}

	generateCmd.Flags().BoolP(stripInternalFlag, "s", false, "omit merge request references and authors from the output")
	generateCmd.Flags().Bool(forceHeadingsFlag, false, "render the version heading even for a single release")
	generateCmd.Flags().Bool(publishFlag, false, "publish the rendered changelog as a release note")
	generateCmd.Flags().Bool(createMilestoneFlag, false, "create the release milestone if it does not exist")
	generateCmd.Flags().Bool(applyFlag, false, "apply remote mutations (publishing is a dry-run otherwise)")

	return generateCmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	viper := config.Viper(ctx)

	provider := scm.Get(ctx, viper.GetString(config.Provider), viper.GetString(config.Project))

	autoCreate, _ := cmd.Flags().GetBool(createMilestoneFlag)
	publish, _ := cmd.Flags().GetBool(publishFlag)

	if err := scm.ValidateWorkflow(provider.Capabilities(), &scm.WorkflowOptions{
		Publish:         publish,
		CreateMilestone: autoCreate,
	}); err != nil {
		return err
	}

	releases := make([]*scm.Milestone, 0, len(args))
	records := make([]*scm.MergeRequest, 0)

	for _, version := range args {
		release, err := milestone.ResolveRelease(ctx, provider, version, autoCreate)
		if err != nil {
			return err
		}

		mrs, err := provider.ListMergeRequests(scm.MergeRequestFilter{
			State:          "merged",
			MilestoneTitle: release.Title,
			All:            true,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch merge requests for %q: %w", release.Title, err)
		}

		releases = append(releases, release)
		records = append(records, mrs...)
	}

	tree := changelog.Aggregate(records, changelog.NewClassifier(ctx, releases...))
	body := changelog.Render(tree, changelog.OptionsFromConfig(ctx))

	if err := output.GetHandler(ctx)(cmd, body); err != nil {
		return err
	}

	if !publish {
		return nil
	}

	tag := changelog.NormalizeVersion(releases[0].Title, viper.GetString(config.StripVersionPrefix))

	if viper.GetBool(config.DryRun) {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nDry run: skipping release publication for %q (use --apply to publish)\n", tag)

		return nil
	}

	if err := provider.PublishRelease(tag, body); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "\nPublished release notes for %q\n", tag)

	return nil
}
