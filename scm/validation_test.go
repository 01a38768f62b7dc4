package scm

import (
	"testing"
)

func TestValidateWorkflow(t *testing.T) {
	full := &Capabilities{GroupMilestones: true, Releases: true, CreateMilestones: true}

	tests := map[string]struct {
		caps    *Capabilities
		opts    *WorkflowOptions
		wantErr bool
	}{
		"nil options always pass": {
			caps: nil,
			opts: nil,
		},
		"nil capabilities reject group scope": {
			caps:    nil,
			opts:    &WorkflowOptions{Scope: ScopeGroup},
			wantErr: true,
		},
		"project scope always passes": {
			caps: &Capabilities{},
			opts: &WorkflowOptions{Scope: ScopeProject},
		},
		"full capabilities pass everything": {
			caps: full,
			opts: &WorkflowOptions{Scope: ScopeGroup, Publish: true, CreateMilestone: true},
		},
		"publish requires releases": {
			caps:    &Capabilities{GroupMilestones: true},
			opts:    &WorkflowOptions{Publish: true},
			wantErr: true,
		},
		"auto-create requires milestone creation": {
			caps:    &Capabilities{Releases: true},
			opts:    &WorkflowOptions{CreateMilestone: true},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := ValidateWorkflow(tt.caps, tt.opts)

			if tt.wantErr != (err != nil) {
				t.Errorf("ValidateWorkflow() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
