package scm

// Milestone is a named grouping (sprint or release) that merge requests can
// be assigned to, scoped to either a single project or a group of projects.
type Milestone struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	State string `json:"state,omitempty"`
	Group bool   `json:"group,omitempty"`
}

// MergeRequest is the normalized snapshot of one merge request as consumed by
// the changelog engine. It is populated by a provider adapter; the engine
// never touches raw API response shapes.
type MergeRequest struct {
	ID          int        `json:"id"`
	Author      string     `json:"author"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
	Milestone   *Milestone `json:"milestone,omitempty"`
}

// MilestoneID returns the milestone ID of the merge request, along with a
// boolean reporting whether a milestone is assigned at all.
func (mr *MergeRequest) MilestoneID() (int, bool) {
	if mr.Milestone == nil {
		return 0, false
	}

	return mr.Milestone.ID, true
}

// MergeRequestFilter selects merge requests from a provider.
type MergeRequestFilter struct {
	State          string   `json:"state,omitempty"`
	MilestoneTitle string   `json:"milestone_title,omitempty"`
	Labels         []string `json:"labels,omitempty"`
	All            bool     `json:"all,omitempty"`
}

// Scope selects between project-level and group-level milestone listings.
type Scope string

const (
	ScopeProject Scope = "project"
	ScopeGroup   Scope = "group"
)

// MilestoneFilter selects milestones from a provider.
type MilestoneFilter struct {
	Scope Scope  `json:"scope,omitempty"`
	Title string `json:"title,omitempty"`
	State string `json:"state,omitempty"`
}
