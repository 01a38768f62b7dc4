package github

import (
	"fmt"

	"github.com/google/go-github/v66/github"

	"github.com/ryclarke/changelog-tool/scm"
)

// ListMilestones returns the project milestones matching the given filter.
// GitHub has no group-level milestone API, so group scope is rejected here
// and callers are expected to validate capabilities first.
func (g *Github) ListMilestones(filter scm.MilestoneFilter) ([]*scm.Milestone, error) {
	if filter.Scope == scm.ScopeGroup {
		return nil, fmt.Errorf("group milestones are not supported by the github provider")
	}

	opt := &github.MilestoneListOptions{
		State:       milestoneState(filter.State),
		ListOptions: github.ListOptions{PerPage: 50},
	}

	output := make([]*scm.Milestone, 0)

	for {
		milestones, resp, err := g.client.Issues.ListMilestones(g.ctx, g.owner, g.repo, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list milestones: %w", err)
		}

		for _, m := range milestones {
			if filter.Title != "" && m.GetTitle() != filter.Title {
				continue
			}

			output = append(output, parseMilestone(m))
		}

		if resp.NextPage == 0 {
			break
		}

		opt.Page = resp.NextPage
	}

	return output, nil
}

// CreateMilestone creates a new project milestone with the given title.
func (g *Github) CreateMilestone(title string) (*scm.Milestone, error) {
	milestone, _, err := g.client.Issues.CreateMilestone(g.ctx, g.owner, g.repo, &github.Milestone{
		Title: &title,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create milestone %q: %w", title, err)
	}

	return parseMilestone(milestone), nil
}

// PublishRelease persists rendered changelog text as a GitHub release.
func (g *Github) PublishRelease(tag, notes string) error {
	_, _, err := g.client.Repositories.CreateRelease(g.ctx, g.owner, g.repo, &github.RepositoryRelease{
		TagName: &tag,
		Name:    &tag,
		Body:    &notes,
	})
	if err != nil {
		return fmt.Errorf("failed to publish release %q: %w", tag, err)
	}

	return nil
}

func parseMilestone(m *github.Milestone) *scm.Milestone {
	return &scm.Milestone{
		ID:    m.GetNumber(),
		Title: m.GetTitle(),
		State: parseMilestoneState(m.GetState()),
	}
}

// milestoneState translates the provider-neutral milestone state into the
// GitHub API equivalent.
func milestoneState(state string) string {
	switch state {
	case "active", "open":
		return "open"
	case "closed":
		return "closed"
	default:
		return "all"
	}
}

func parseMilestoneState(state string) string {
	if state == "open" {
		return "active"
	}

	return state
}
