// Package utils provides utility functions and helpers for changelog-tool.
package utils

import (
	"context"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ryclarke/changelog-tool/config"
)

// ValidateRequiredConfig checks viper and returns an error if a key isn't set
func ValidateRequiredConfig(ctx context.Context, opts ...string) error {
	viper := config.Viper(ctx)

	for _, opt := range opts {
		if viper.GetString(opt) == "" {
			return fmt.Errorf("%s is required - set as flag or env", opt)
		}
	}

	return nil
}

// ValidateEnumConfig validates that a config value is one of the allowed choices.
func ValidateEnumConfig(ctx context.Context, key string, validChoices []string) error {
	viper := config.Viper(ctx)

	if value := viper.GetString(key); value != "" && !mapset.NewSet(validChoices...).Contains(value) {
		return fmt.Errorf("invalid %s: %q (expected one of %v)", key, value, validChoices)
	}

	return nil
}
