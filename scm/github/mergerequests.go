package github

import (
	"fmt"
	"strconv"

	"github.com/google/go-github/v66/github"

	"github.com/ryclarke/changelog-tool/scm"
)

// ListMergeRequests returns the pull requests matching the given filter,
// sorted most recently updated first. The issues API is used because it
// carries label and milestone metadata and supports milestone filtering.
func (g *Github) ListMergeRequests(filter scm.MergeRequestFilter) ([]*scm.MergeRequest, error) {
	opt := &github.IssueListByRepoOptions{
		State:       issueState(filter.State),
		Labels:      filter.Labels,
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: 50},
	}

	if filter.MilestoneTitle != "" {
		milestone, err := g.findMilestone(filter.MilestoneTitle)
		if err != nil {
			return nil, err
		}

		opt.Milestone = strconv.Itoa(milestone.ID)
	}

	output := make([]*scm.MergeRequest, 0)

	for {
		issues, resp, err := g.client.Issues.ListByRepo(g.ctx, g.owner, g.repo, opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list merge requests: %w", err)
		}

		for _, issue := range issues {
			// The issues API returns plain issues as well; only PRs are wanted.
			if !issue.IsPullRequest() {
				continue
			}

			// The API only knows "closed"; a closed PR without a merge
			// timestamp was rejected, not merged.
			if filter.State == "merged" && issue.GetPullRequestLinks().MergedAt == nil {
				continue
			}

			output = append(output, parseMergeRequest(issue))
		}

		if resp.NextPage == 0 {
			break
		}

		opt.Page = resp.NextPage

		if !filter.All {
			break
		}
	}

	return output, nil
}

// SetLabels replaces the label set of a pull request.
func (g *Github) SetLabels(mrID int, labels []string) error {
	if _, _, err := g.client.Issues.ReplaceLabelsForIssue(g.ctx, g.owner, g.repo, mrID, labels); err != nil {
		return fmt.Errorf("failed to set labels on !%d: %w", mrID, err)
	}

	return nil
}

// SetMilestone assigns a milestone to a pull request.
func (g *Github) SetMilestone(mrID, milestoneID int) error {
	_, _, err := g.client.Issues.Edit(g.ctx, g.owner, g.repo, mrID, &github.IssueRequest{
		Milestone: &milestoneID,
	})
	if err != nil {
		return fmt.Errorf("failed to assign milestone on !%d: %w", mrID, err)
	}

	return nil
}

func (g *Github) findMilestone(title string) (*scm.Milestone, error) {
	milestones, err := g.ListMilestones(scm.MilestoneFilter{Scope: scm.ScopeProject, Title: title})
	if err != nil {
		return nil, err
	}

	switch len(milestones) {
	case 0:
		return nil, fmt.Errorf("%w: %q", scm.ErrMilestoneNotFound, title)
	case 1:
		return milestones[0], nil
	}

	return nil, &scm.AmbiguousError{Title: title, Candidates: milestones}
}

func parseMergeRequest(issue *github.Issue) *scm.MergeRequest {
	mr := &scm.MergeRequest{
		ID:          issue.GetNumber(),
		Author:      issue.GetUser().GetLogin(),
		Title:       issue.GetTitle(),
		Description: issue.GetBody(),
		Labels:      make([]string, 0, len(issue.Labels)),
	}

	for _, label := range issue.Labels {
		mr.Labels = append(mr.Labels, label.GetName())
	}

	if milestone := issue.GetMilestone(); milestone != nil {
		mr.Milestone = parseMilestone(milestone)
	}

	return mr
}

// issueState translates the provider-neutral merge request state into the
// GitHub API equivalent. Merged pull requests are reported as closed.
func issueState(state string) string {
	switch state {
	case "merged", "closed":
		return "closed"
	case "opened", "open":
		return "open"
	default:
		return "all"
	}
}
