// Package milestones implements the milestone listing command.
package milestones

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/scm"
	"github.com/ryclarke/changelog-tool/utils"
)

const (
	scopeFlag = "scope"
	stateFlag = "state"
)

var scopes = []string{string(scm.ScopeProject), string(scm.ScopeGroup)}

// Cmd configures the milestones command
func Cmd() *cobra.Command {
	milestonesCmd := &cobra.Command{
		Use:     "milestones",
		Aliases: []string{"milestone", "ms"},
		Short:   "List milestones with their IDs and states",
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return utils.ValidateRequiredConfig(cmd.Context(), config.Project)
		},
		RunE: run,
	}

	milestonesCmd.Flags().String(scopeFlag, string(scm.ScopeProject), fmt.Sprintf("milestone scope: %v", scopes))
	milestonesCmd.Flags().String(stateFlag, "all", "milestone state filter (active, closed, all)")

	return milestonesCmd
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	viper := config.Viper(ctx)

	scope, _ := cmd.Flags().GetString(scopeFlag)
	state, _ := cmd.Flags().GetString(stateFlag)

	provider := scm.Get(ctx, viper.GetString(config.Provider), viper.GetString(config.Project))

	if err := scm.ValidateWorkflow(provider.Capabilities(), &scm.WorkflowOptions{
		Scope: scm.Scope(scope),
	}); err != nil {
		return err
	}

	milestones, err := provider.ListMilestones(scm.MilestoneFilter{
		Scope: scm.Scope(scope),
		State: state,
	})
	if err != nil {
		return err
	}

	if len(milestones) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No milestones found")

		return nil
	}

	for _, m := range milestones {
		fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s (%s)\n", m.ID, m.Title, m.State)
	}

	return nil
}
