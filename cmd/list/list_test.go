package list

import (
	"bytes"
	"testing"

	"github.com/ryclarke/changelog-tool/scm"
	"github.com/ryclarke/changelog-tool/scm/fake"

	testhelper "github.com/ryclarke/changelog-tool/utils/test"
)

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

	if cmd.Use != "list <version>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	if err := cmd.Args(cmd, []string{"1.0", "1.1"}); err == nil {
		t.Error("Expected error for more than one argument")
	}
}

func TestList(t *testing.T) {
	f := fake.NewFake("test-project")

	release := &scm.Milestone{ID: 1, Title: "1.0", State: "active"}
	f.AddMilestones(release)
	f.AddMergeRequests(
		&scm.MergeRequest{ID: 1, Author: "alice", Title: "Add feature", Labels: []string{"feature"}, Milestone: release},
		&scm.MergeRequest{ID: 2, Author: "bob", Title: `Resolve "Fix crash"`, Labels: []string{"CL:Bugfix", "P:Core"}, Milestone: release},
		&scm.MergeRequest{ID: 3, Author: "carol", Title: "Update docs", Milestone: release},
	)

	t.Cleanup(fake.Install(f))

	out, err := runCmd(t, "1.0")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// a single label shows bracketed regardless of convention; multiple or
	// zero labels show no tag
	testhelper.AssertContains(t, out.String(),
		"- !1 [feature] Add feature\n",
		"- !2 Fix crash\n",
		"- !3 Update docs\n",
	)
}

func TestListMissingRelease(t *testing.T) {
	t.Cleanup(fake.Install(fake.NewFake("test-project")))

	if _, err := runCmd(t, "9.9"); err == nil {
		t.Error("Expected error for missing release milestone")
	}
}
