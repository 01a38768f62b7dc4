// Package test provides utility functions for testing purposes across multiple packages.
package test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ryclarke/changelog-tool/config"
)

// LoadFixture loads test configuration from the config package.
// The configPath parameter should be the relative path from the test file
// to the config directory (e.g., "../config", "../../config").
func LoadFixture(t *testing.T, configPath string) context.Context {
	t.Helper()

	viper := config.New()
	ctx := config.SetViper(context.Background(), viper)

	viper.SetConfigName("fixture")
	viper.AddConfigPath(configPath)

	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("Failed to load fixture config: %v", err)
	}

	return ctx
}

// FakeCmd creates a minimal cobra.Command for testing with the given context,
// capturing output in the returned buffer.
func FakeCmd(t *testing.T, ctx context.Context) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	cmd := &cobra.Command{
		Use: "test",
	}
	cmd.SetContext(ctx)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	return cmd, &out
}

// AssertError validates that an error matches expected results.
func AssertError(t *testing.T, err error, wantErr bool) {
	t.Helper()

	if wantErr != (err != nil) {
		t.Fatalf("Expected error = %v, got: %v", wantErr, err)
	}
}

// AssertEqual verifies two values are equal.
func AssertEqual(t *testing.T, got, want any) {
	t.Helper()

	if got != want {
		t.Errorf("got = %q, want: %q", got, want)
	}
}

// AssertDeepEqual verifies two string slices are equal element-wise.
func AssertDeepEqual(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("Expected length %d, got: %d (%v)", len(want), len(got), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected element[%d] = %q, got: %q", i, want[i], got[i])
		}
	}
}

// AssertContains verifies that got contains all want substrings.
func AssertContains(t *testing.T, got string, want ...string) {
	t.Helper()

	for _, needle := range want {
		if !strings.Contains(got, needle) {
			t.Errorf("Expected output to contain %q, got: %v", needle, got)
		}
	}
}

// AssertNotContains verifies that got contains none of the unwanted substrings.
func AssertNotContains(t *testing.T, got string, unwanted ...string) {
	t.Helper()

	for _, needle := range unwanted {
		if strings.Contains(got, needle) {
			t.Errorf("Expected output to not contain %q, got: %s", needle, got)
		}
	}
}
