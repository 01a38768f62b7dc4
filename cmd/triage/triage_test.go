package triage

import (
	"bytes"
	"testing"

	"github.com/ryclarke/changelog-tool/scm"
	"github.com/ryclarke/changelog-tool/scm/fake"

	testhelper "github.com/ryclarke/changelog-tool/utils/test"
)

func seedProvider(t *testing.T) *fake.Fake {
	t.Helper()

	f := fake.NewFake("test-project")

	sprint4 := &scm.Milestone{ID: 4, Title: "Sprint 4", State: "active", Group: true}
	sprint5 := &scm.Milestone{ID: 5, Title: "Sprint 5", State: "active", Group: true}

	f.AddMilestones(
		&scm.Milestone{ID: 1, Title: "1.0", State: "active"},
		sprint4,
		sprint5,
	)
	f.AddMergeRequests(
		&scm.MergeRequest{ID: 1, Author: "alice", Title: "Add feature", Milestone: sprint4},
		&scm.MergeRequest{ID: 2, Author: "bob", Title: "Fix crash", Labels: []string{"CL:Bugfix"}, Milestone: sprint5},
	)

	t.Cleanup(fake.Install(f))

	return f
}

func runCmd(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	ctx := testhelper.LoadFixture(t, "../../config")

	var out bytes.Buffer

	cmd := Cmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	return &out, cmd.ExecuteContext(ctx)
}

func TestCmd(t *testing.T) {
	cmd := Cmd()

	if cmd.Flags().Lookup("release") == nil {
		t.Error("release flag not found")
	}

	if cmd.Flags().Lookup("apply") == nil {
		t.Error("apply flag not found")
	}
}

func TestTriageDryRun(t *testing.T) {
	f := seedProvider(t)

	out, err := runCmd(t, "--release", "1.0", "Sprint 4", "Sprint 5")
	if err != nil {
		t.Fatalf("triage failed: %v", err)
	}

	testhelper.AssertContains(t, out.String(),
		"Collected sprints: [Sprint 4 Sprint 5]",
		"- !1 Add feature (alice)",
		"- !2 Fix crash (bob)",
		"Dry run: 2 merge request(s) would be assigned to \"1.0\"",
	)

	if len(f.Assigned) != 0 {
		t.Errorf("Expected no mutations in dry run, got %v", f.Assigned)
	}
}

func TestTriageApply(t *testing.T) {
	f := seedProvider(t)

	out, err := runCmd(t, "--release", "1.0", "--apply", "Sprint 4", "Sprint 5")
	if err != nil {
		t.Fatalf("triage failed: %v", err)
	}

	testhelper.AssertContains(t, out.String(), "Assigned 2 merge request(s) to \"1.0\"")

	if f.Assigned[1] != 1 || f.Assigned[2] != 1 {
		t.Errorf("Expected both merge requests assigned to milestone [1], got %v", f.Assigned)
	}
}

func TestTriageApplyLabels(t *testing.T) {
	f := seedProvider(t)

	if _, err := runCmd(t, "--release", "1.0", "--apply", "--label", "triaged", "Sprint 5"); err != nil {
		t.Fatalf("triage failed: %v", err)
	}

	// Existing labels keep their position; new labels are appended after them
	testhelper.AssertDeepEqual(t, f.Labels[2], []string{"CL:Bugfix", "triaged"})
}

// Merged labels are deduplicated and persisted in a reproducible order.
func TestTriageApplyLabelsDeterministic(t *testing.T) {
	f := seedProvider(t)

	args := []string{"--release", "1.0", "--apply", "Sprint 5",
		"--label", "triaged", "--label", "CL:Bugfix", "--label", "alpha"}

	if _, err := runCmd(t, args...); err != nil {
		t.Fatalf("triage failed: %v", err)
	}

	testhelper.AssertDeepEqual(t, f.Labels[2], []string{"CL:Bugfix", "triaged", "alpha"})
}

// Missing sprints are skipped with a warning, the rest are still triaged.
func TestTriageSkippedSprint(t *testing.T) {
	f := seedProvider(t)

	out, err := runCmd(t, "--release", "1.0", "--apply", "Sprint 3", "Sprint 4")
	if err != nil {
		t.Fatalf("triage failed: %v", err)
	}

	testhelper.AssertContains(t, out.String(),
		`WARNING: skipped sprint "Sprint 3"`,
		"Assigned 1 merge request(s)",
	)

	if f.Assigned[1] != 1 {
		t.Errorf("Expected !1 assigned despite skipped sprint, got %v", f.Assigned)
	}
}

func TestTriageMissingRelease(t *testing.T) {
	seedProvider(t)

	if _, err := runCmd(t, "--release", "9.9", "Sprint 4"); err == nil {
		t.Error("Expected error for missing release milestone")
	}
}

func TestTriageRequiresRelease(t *testing.T) {
	seedProvider(t)

	if _, err := runCmd(t, "Sprint 4"); err == nil {
		t.Error("Expected error when --release is not set")
	}
}
