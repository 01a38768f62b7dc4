package milestone

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/scm"
)

// Report summarizes a sprint collection run: which sprints contributed
// records and which were skipped (with the reason), so skips stay observable
// without aborting the run.
type Report struct {
	Collected []string
	Skipped   map[string]error
}

// Collect fetches the merged merge requests assigned to each of the given
// sprint milestones, fanning out across sprints with bounded concurrency.
// Missing or ambiguous sprints are recoverable: they are skipped and recorded
// in the report, never silently resolved. Records are returned grouped by
// sprint in argument order, preserving provider order within each sprint.
func Collect(ctx context.Context, provider scm.Provider, sprints []string) ([]*scm.MergeRequest, *Report, error) {
	viper := config.Viper(ctx)

	scope := scm.ScopeGroup
	if !provider.Capabilities().GroupMilestones {
		scope = scm.ScopeProject
	}

	report := &Report{Skipped: make(map[string]error)}
	results := make([][]*scm.MergeRequest, len(sprints))

	var mu sync.Mutex

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(viper.GetInt(config.MaxConcurrency))

	for i, sprint := range sprints {
		i, sprint := i, sprint

		group.Go(func() error {
			milestone, err := Resolve(provider, scm.MilestoneFilter{
				Scope: scope,
				Title: sprint,
				State: viper.GetString(config.SprintState),
			})
			if err != nil {
				if recoverable(err) {
					mu.Lock()
					report.Skipped[sprint] = err
					mu.Unlock()

					return nil
				}

				return err
			}

			records, err := provider.ListMergeRequests(scm.MergeRequestFilter{
				State:          "merged",
				MilestoneTitle: milestone.Title,
				All:            true,
			})
			if err != nil {
				return fmt.Errorf("failed to collect merge requests for sprint %q: %w", sprint, err)
			}

			results[i] = records

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	output := make([]*scm.MergeRequest, 0)

	for i, sprint := range sprints {
		if _, skipped := report.Skipped[sprint]; skipped {
			continue
		}

		report.Collected = append(report.Collected, sprint)
		output = append(output, results[i]...)
	}

	return output, report, nil
}

// recoverable reports whether a sprint lookup failure should skip the sprint
// rather than abort the collection run.
func recoverable(err error) bool {
	var ambiguous *scm.AmbiguousError

	return errors.Is(err, scm.ErrMilestoneNotFound) || errors.As(err, &ambiguous)
}
