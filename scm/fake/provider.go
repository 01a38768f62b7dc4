// Package fake implements a mock provider for testing purposes.
package fake

import (
	"context"
	"fmt"
	"maps"

	"github.com/ryclarke/changelog-tool/scm"
)

var _ scm.Provider = new(Fake)

// installed holds pre-seeded fake providers keyed by project name, so that
// command-level tests can seed data before scm.Get constructs the provider.
var installed = make(map[string]*Fake)

func init() {
	// Register the fake provider factory
	scm.Register("fake", New)
}

// Fake implements a mock provider for testing purposes.
type Fake struct {
	Project       string
	Milestones    []*scm.Milestone
	MergeRequests []*scm.MergeRequest
	Labels        map[int][]string // label mutations by merge request ID
	Assigned      map[int]int      // milestone assignments by merge request ID
	Releases      map[string]string
	Errors        map[string]error // configurable errors for testing
	Caps          *scm.Capabilities
}

// New creates a new fake provider for the specified project, returning a
// pre-seeded instance if one was installed for that project name.
func New(_ context.Context, project string) scm.Provider {
	if f, exists := installed[project]; exists {
		return f
	}

	return NewFake(project)
}

// NewFake creates an empty fake provider for the specified project.
func NewFake(project string) *Fake {
	return &Fake{
		Project:  project,
		Labels:   make(map[int][]string),
		Assigned: make(map[int]int),
		Releases: make(map[string]string),
		Errors:   make(map[string]error),
		Caps: &scm.Capabilities{
			GroupMilestones:  true,
			Releases:         true,
			CreateMilestones: true,
		},
	}
}

// Install seeds the given fake provider for retrieval via scm.Get.
// Cleanup of the installed instance is the caller's responsibility.
func Install(f *Fake) func() {
	installed[f.Project] = f

	return func() {
		delete(installed, f.Project)
	}
}

// SeedErrors configures errors to be returned by the named methods.
func (f *Fake) SeedErrors(errors map[string]error) {
	maps.Copy(f.Errors, errors)
}

// AddMilestones adds milestones to the fake provider.
func (f *Fake) AddMilestones(milestones ...*scm.Milestone) {
	f.Milestones = append(f.Milestones, milestones...)
}

// AddMergeRequests adds merge requests to the fake provider. Supplied order
// is preserved by ListMergeRequests.
func (f *Fake) AddMergeRequests(mrs ...*scm.MergeRequest) {
	f.MergeRequests = append(f.MergeRequests, mrs...)
}

// ListMergeRequests returns copies of the configured merge requests matching
// the given filter, preserving seeded order.
func (f *Fake) ListMergeRequests(filter scm.MergeRequestFilter) ([]*scm.MergeRequest, error) {
	if err := f.Errors["ListMergeRequests"]; err != nil {
		return nil, err
	}

	result := make([]*scm.MergeRequest, 0)

	for _, mr := range f.MergeRequests {
		if filter.MilestoneTitle != "" && (mr.Milestone == nil || mr.Milestone.Title != filter.MilestoneTitle) {
			continue
		}

		if !matchLabels(mr.Labels, filter.Labels) {
			continue
		}

		result = append(result, copyMR(mr))
	}

	return result, nil
}

// ListMilestones returns copies of the configured milestones matching the given filter.
func (f *Fake) ListMilestones(filter scm.MilestoneFilter) ([]*scm.Milestone, error) {
	if err := f.Errors["ListMilestones"]; err != nil {
		return nil, err
	}

	result := make([]*scm.Milestone, 0)

	for _, m := range f.Milestones {
		if filter.Scope == scm.ScopeGroup && !m.Group {
			continue
		}

		if filter.Scope == scm.ScopeProject && m.Group {
			continue
		}

		if filter.Title != "" && m.Title != filter.Title {
			continue
		}

		if filter.State != "" && filter.State != "all" && m.State != filter.State {
			continue
		}

		result = append(result, copyMilestone(m))
	}

	return result, nil
}

// CreateMilestone creates a new project milestone with the given title.
func (f *Fake) CreateMilestone(title string) (*scm.Milestone, error) {
	if err := f.Errors["CreateMilestone"]; err != nil {
		return nil, err
	}

	milestone := &scm.Milestone{
		ID:    len(f.Milestones) + 1,
		Title: title,
		State: "active",
	}

	f.Milestones = append(f.Milestones, milestone)

	return copyMilestone(milestone), nil
}

// SetLabels records a label mutation for the given merge request.
func (f *Fake) SetLabels(mrID int, labels []string) error {
	if err := f.Errors["SetLabels"]; err != nil {
		return err
	}

	mr := f.findMR(mrID)
	if mr == nil {
		return fmt.Errorf("merge request !%d not found", mrID)
	}

	mr.Labels = append([]string(nil), labels...)
	f.Labels[mrID] = append([]string(nil), labels...)

	return nil
}

// SetMilestone records a milestone assignment for the given merge request.
func (f *Fake) SetMilestone(mrID, milestoneID int) error {
	if err := f.Errors["SetMilestone"]; err != nil {
		return err
	}

	mr := f.findMR(mrID)
	if mr == nil {
		return fmt.Errorf("merge request !%d not found", mrID)
	}

	for _, m := range f.Milestones {
		if m.ID == milestoneID {
			mr.Milestone = copyMilestone(m)
			f.Assigned[mrID] = milestoneID

			return nil
		}
	}

	return fmt.Errorf("milestone [%d] not found", milestoneID)
}

// PublishRelease records the published release notes by tag.
func (f *Fake) PublishRelease(tag, notes string) error {
	if err := f.Errors["PublishRelease"]; err != nil {
		return err
	}

	f.Releases[tag] = notes

	return nil
}

// Capabilities reports the configured capabilities (all enabled by default).
func (f *Fake) Capabilities() *scm.Capabilities {
	return f.Caps
}

func (f *Fake) findMR(mrID int) *scm.MergeRequest {
	for _, mr := range f.MergeRequests {
		if mr.ID == mrID {
			return mr
		}
	}

	return nil
}

func matchLabels(have, want []string) bool {
	for _, label := range want {
		found := false

		for _, existing := range have {
			if existing == label {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

func copyMR(mr *scm.MergeRequest) *scm.MergeRequest {
	// Return a copy to prevent mutations
	result := &scm.MergeRequest{
		ID:          mr.ID,
		Author:      mr.Author,
		Title:       mr.Title,
		Description: mr.Description,
		Labels:      append([]string(nil), mr.Labels...),
	}

	if mr.Milestone != nil {
		result.Milestone = copyMilestone(mr.Milestone)
	}

	return result
}

func copyMilestone(m *scm.Milestone) *scm.Milestone {
	clone := *m

	return &clone
}
