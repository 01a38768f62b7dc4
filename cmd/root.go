package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryclarke/changelog-tool/cmd/generate"
	"github.com/ryclarke/changelog-tool/cmd/list"
	"github.com/ryclarke/changelog-tool/cmd/milestones"
	"github.com/ryclarke/changelog-tool/cmd/triage"
	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/output"
	"github.com/ryclarke/changelog-tool/scm"
	"github.com/ryclarke/changelog-tool/utils"

	// Register the SCM providers
	_ "github.com/ryclarke/changelog-tool/scm/github"
)

const (
	configFlag         = "config"
	projectFlag        = "project"
	groupFlag          = "group"
	providerFlag       = "provider"
	syncFlag           = "sync"
	maxConcurrencyFlag = "max-concurrency"
	outputStyleFlag    = "style"
)

// RootCmd configures the top-level root command along with all subcommands and flags
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "changelog-tool",
		Short: "Generate changelogs from classified merge requests",
		Long: `Generate changelogs from classified merge requests

This tool classifies merge requests by their labels and milestone assignment
into a version → product → change-type hierarchy and renders it as grouped,
reproducible changelog text. It also provides the supporting triage workflow
for assigning merge requests collected from sprints to a release milestone.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper := config.Viper(cmd.Context())

			viper.BindPFlag(config.Provider, cmd.Flags().Lookup(providerFlag))
			viper.BindPFlag(config.Project, cmd.Flags().Lookup(projectFlag))
			viper.BindPFlag(config.Group, cmd.Flags().Lookup(groupFlag))
			viper.BindPFlag(config.MaxConcurrency, cmd.Flags().Lookup(maxConcurrencyFlag))
			viper.BindPFlag(config.OutputStyle, cmd.Flags().Lookup(outputStyleFlag))

			if err := utils.ValidateEnumConfig(cmd.Context(), config.OutputStyle, output.AvailableStyles); err != nil {
				return err
			}

			// A typo'd provider name would otherwise panic inside scm.Get
			if err := utils.ValidateEnumConfig(cmd.Context(), config.Provider, scm.Providers()); err != nil {
				return err
			}

			// Allow the `--sync` flag to override max-concurrency to 1
			if sync, _ := cmd.Flags().GetBool(syncFlag); sync {
				viper.Set(config.MaxConcurrency, 1)
			}

			return nil
		},
		Version: config.Version,
	}

	// Add all subcommands to the root
	rootCmd.AddCommand(
		generate.Cmd(),
		list.Cmd(),
		milestones.Cmd(),
		triage.Cmd(),
	)

	rootCmd.PersistentFlags().StringVar(&config.CfgFile, configFlag, "", "config file (default is changelog-tool.yaml)")
	rootCmd.PersistentFlags().StringP(projectFlag, "p", "", "target project (e.g. owner/repo)")
	rootCmd.PersistentFlags().StringP(groupFlag, "g", "", "group containing sprint milestones")
	rootCmd.PersistentFlags().String(providerFlag, "", "SCM provider (default: github)")
	rootCmd.PersistentFlags().StringP(outputStyleFlag, "o", output.Plain, fmt.Sprintf("output format style: \"%v\"", strings.Join(output.AvailableStyles, "\", \"")))

	rootCmd.PersistentFlags().Bool(syncFlag, false, "execute collection synchronously (alias for --max-concurrency=1)")
	rootCmd.PersistentFlags().Int(maxConcurrencyFlag, runtime.NumCPU(), "maximum number of concurrent operations")

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	ctx := config.Init(context.Background())

	if err := RootCmd().ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
