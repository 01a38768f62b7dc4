package config

import (
	"context"
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	v := New()

	tests := map[string]any{
		Provider:       "github",
		TypePrefix:     "CL",
		TypeSeparator:  ":",
		ProductPrefix:  "P",
		DefaultProduct: "General",
		DefaultType:    "Other",
		SprintState:    "active",
		ReleaseState:   "all",
		OutputStyle:    "plain",
		DryRun:         true,
	}

	for key, want := range tests {
		if got := v.Get(key); got != want {
			t.Errorf("Default for %s = %v, want %v", key, got, want)
		}
	}

	if v.GetInt(MaxConcurrency) < 1 {
		t.Errorf("Expected positive max-concurrency default, got %d", v.GetInt(MaxConcurrency))
	}
}

func TestContextRoundTrip(t *testing.T) {
	v := New()
	v.Set(Project, "owner/repo")

	ctx := SetViper(context.Background(), v)

	if got := Viper(ctx).GetString(Project); got != "owner/repo" {
		t.Errorf("Viper(ctx).GetString(Project) = %q, want %q", got, "owner/repo")
	}
}

func TestContextFallback(t *testing.T) {
	// An unconfigured context falls back to the global viper instance
	if Viper(context.Background()) != viper.GetViper() {
		t.Error("Expected fallback to the global viper instance")
	}

	if Viper(SetViper(context.Background(), nil)) != viper.GetViper() {
		t.Error("Expected nil SetViper to fall back to the global viper instance")
	}
}

func TestChild(t *testing.T) {
	parent := New()
	parent.Set(Project, "owner/repo")

	ctx := SetViper(context.Background(), parent)
	child := Child(ctx)

	if got := child.GetString(Project); got != "owner/repo" {
		t.Errorf("Child should inherit parent settings, got %q", got)
	}

	child.Set(Project, "other/repo")

	if parent.GetString(Project) != "owner/repo" {
		t.Error("Child mutations must not affect the parent")
	}
}
