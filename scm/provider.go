package scm

import (
	"context"
	"fmt"
	"slices"
)

var providerFactories = make(map[string]ProviderFactory)

type ProviderFactory func(ctx context.Context, project string) Provider

// Provider defines the interface for project-management providers.
type Provider interface {
	// ListMergeRequests returns the merge requests matching the given filter,
	// in the provider's native ordering (most recently updated first).
	ListMergeRequests(filter MergeRequestFilter) ([]*MergeRequest, error)

	// ListMilestones returns the milestones matching the given filter.
	ListMilestones(filter MilestoneFilter) ([]*Milestone, error)
	// CreateMilestone creates a new project milestone with the given title.
	CreateMilestone(title string) (*Milestone, error)

	// SetLabels replaces the label set of a merge request.
	SetLabels(mrID int, labels []string) error
	// SetMilestone assigns a milestone to a merge request.
	SetMilestone(mrID, milestoneID int) error

	// PublishRelease persists rendered changelog text as a release note.
	PublishRelease(tag, notes string) error

	// Capabilities reports which optional operations the provider supports.
	Capabilities() *Capabilities
}

// Get retrieves a registered provider by name.
// If the provider is not registered, it panics.
func Get(ctx context.Context, name, project string) Provider {
	if factory, exists := providerFactories[name]; exists {
		return factory(ctx, project)
	}

	panic(fmt.Sprintf("provider %s not registered", name))
}

// Register a new provider factory by name.
func Register(name string, factory ProviderFactory) {
	if _, exists := providerFactories[name]; !exists {
		providerFactories[name] = factory
	}
}

// Providers returns the names of all registered providers, sorted.
func Providers() []string {
	names := make([]string, 0, len(providerFactories))
	for name := range providerFactories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
