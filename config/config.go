// Package config manages configuration for changelog-tool using Viper.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

var (
	CfgFile string

	// Version is dynamically set at build time using the -X linker flag.
	// Default value is used for testing and development builds.
	Version = "dev"
)

const (
	Provider  = "scm.provider"
	Project   = "scm.project"
	Group     = "scm.group"
	AuthToken = "auth-token"

	TypePrefix       = "labels.type-prefix"
	TypeSeparator    = "labels.type-separator"
	ProductPrefix    = "labels.product-prefix"
	ProductSeparator = "labels.product-separator"
	DefaultProduct   = "labels.default-product"
	DefaultType      = "labels.default-type"

	StripInternal        = "changelog.strip-internal"
	ForceVersionHeadings = "changelog.force-version-headings"
	StripVersionPrefix   = "changelog.strip-version-prefix"

	SprintState  = "milestones.sprint-state"
	ReleaseState = "milestones.release-state"

	OutputStyle    = "output.style"
	MaxConcurrency = "max-concurrency"
	DryRun         = "dry-run"
)

// Init constructs the root configuration, reading in the config file and
// matching ENV variables, and returns a context carrying the Viper instance.
func Init(ctx context.Context) context.Context {
	v := New()

	if CfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(CfgFile)
	} else {
		v.SetConfigName("changelog-tool")

		// Search in the working directory
		v.AddConfigPath(".")

		// Search in the user's config directory
		if usrConfig, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(usrConfig)
		}

		// On Darwin, os.UserConfigDir() returns ~/Library/Application Support. As this is
		// a command-line tool, prefer XDG_CONFIG_HOME when it is available.
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			v.AddConfigPath(xdgConfigHome)
		} else if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config"))
		}
	}

	// If a config file is found, read it in.
	if err := v.ReadInConfig(); err == nil {
		fmt.Printf("Using config file: %v\n\n", v.ConfigFileUsed())
	}

	return SetViper(ctx, v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(Provider, "github")

	// Label conventions for the two classification axes.
	v.SetDefault(TypePrefix, "CL")
	v.SetDefault(TypeSeparator, ":")
	v.SetDefault(ProductPrefix, "P")
	v.SetDefault(ProductSeparator, ":")
	v.SetDefault(DefaultProduct, "General")
	v.SetDefault(DefaultType, "Other")

	v.SetDefault(StripInternal, false)
	v.SetDefault(ForceVersionHeadings, false)
	v.SetDefault(StripVersionPrefix, "")

	// Sprints are collected while active; releases may already be closed.
	v.SetDefault(SprintState, "active")
	v.SetDefault(ReleaseState, "all")

	v.SetDefault(OutputStyle, "plain")
	v.SetDefault(MaxConcurrency, runtime.NumCPU())
	v.SetDefault(DryRun, true)
}
