// Package milestone resolves milestones by title and collects merge requests
// from sprint milestones for triage. Lookup outcomes are signalled as typed
// errors so the command layer decides exit behavior; nothing here terminates
// the process.
package milestone

import (
	"context"
	"errors"
	"fmt"

	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/scm"
)

// Resolve looks up a single milestone by title, distinguishing the three
// lookup outcomes: scm.ErrMilestoneNotFound for zero matches, the milestone
// for exactly one, and *scm.AmbiguousError when multiple candidates match
// without a unique exact-title match.
func Resolve(provider scm.Provider, filter scm.MilestoneFilter) (*scm.Milestone, error) {
	milestones, err := provider.ListMilestones(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}

	switch len(milestones) {
	case 0:
		return nil, fmt.Errorf("%w: %q", scm.ErrMilestoneNotFound, filter.Title)
	case 1:
		return milestones[0], nil
	}

	// A superset listing may contain partial matches; a unique exact-title
	// match still resolves unambiguously.
	var exact *scm.Milestone

	for _, m := range milestones {
		if m.Title != filter.Title {
			continue
		}

		if exact != nil {
			exact = nil
			break
		}

		exact = m
	}

	if exact != nil {
		return exact, nil
	}

	return nil, &scm.AmbiguousError{Title: filter.Title, Candidates: milestones}
}

// ResolveRelease resolves a release milestone at project scope. A missing
// release is fatal unless auto-creation is opted in (and supported by the
// provider).
func ResolveRelease(ctx context.Context, provider scm.Provider, title string, autoCreate bool) (*scm.Milestone, error) {
	release, err := Resolve(provider, scm.MilestoneFilter{
		Scope: scm.ScopeProject,
		Title: title,
		State: config.Viper(ctx).GetString(config.ReleaseState),
	})

	if err == nil || !autoCreate {
		return release, err
	}

	if !errors.Is(err, scm.ErrMilestoneNotFound) {
		return nil, err
	}

	if capErr := scm.ValidateWorkflow(provider.Capabilities(), &scm.WorkflowOptions{CreateMilestone: true}); capErr != nil {
		return nil, capErr
	}

	release, err = provider.CreateMilestone(title)
	if err != nil {
		return nil, fmt.Errorf("failed to create release milestone %q: %w", title, err)
	}

	return release, nil
}
