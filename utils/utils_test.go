package utils

import (
	"context"
	"testing"

	"github.com/ryclarke/changelog-tool/config"
)

func testContext() context.Context {
	return config.SetViper(context.Background(), config.New())
}

func TestValidateRequiredConfig(t *testing.T) {
	ctx := testContext()

	if err := ValidateRequiredConfig(ctx, config.Project); err == nil {
		t.Error("Expected error for unset required config")
	}

	config.Viper(ctx).Set(config.Project, "owner/repo")

	if err := ValidateRequiredConfig(ctx, config.Project); err != nil {
		t.Errorf("Expected no error for set config, got %v", err)
	}
}

func TestValidateEnumConfig(t *testing.T) {
	ctx := testContext()
	choices := []string{"plain", "rich", "tui"}

	// default "plain" is valid
	if err := ValidateEnumConfig(ctx, config.OutputStyle, choices); err != nil {
		t.Errorf("Expected no error for default style, got %v", err)
	}

	config.Viper(ctx).Set(config.OutputStyle, "bogus")

	if err := ValidateEnumConfig(ctx, config.OutputStyle, choices); err == nil {
		t.Error("Expected error for invalid enum value")
	}
}
