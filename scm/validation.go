package scm

import (
	"fmt"
)

// Capabilities defines which optional operations are supported by a provider.
type Capabilities struct {
	GroupMilestones  bool
	Releases         bool
	CreateMilestones bool
}

// WorkflowOptions describes the optional operations a workflow intends to use.
type WorkflowOptions struct {
	Scope           Scope
	Publish         bool
	CreateMilestone bool
}

// ValidateWorkflow validates that the requested workflow options are supported
// by the given capabilities.
func ValidateWorkflow(caps *Capabilities, opts *WorkflowOptions) error {
	if opts == nil {
		return nil
	}

	if caps == nil {
		caps = &Capabilities{}
	}

	if !caps.GroupMilestones && opts.Scope == ScopeGroup {
		return fmt.Errorf("provider does not support group milestones")
	}

	if !caps.Releases && opts.Publish {
		return fmt.Errorf("provider does not support publishing releases")
	}

	if !caps.CreateMilestones && opts.CreateMilestone {
		return fmt.Errorf("provider does not support milestone creation")
	}

	return nil
}
