package scm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMilestoneNotFound signals that no milestone matched a requested title.
var ErrMilestoneNotFound = errors.New("milestone not found")

// AmbiguousError signals that more than one milestone matched a requested
// title. It carries the candidates so the caller can report which matched.
type AmbiguousError struct {
	Title      string
	Candidates []*Milestone
}

func (e *AmbiguousError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, m := range e.Candidates {
		names[i] = fmt.Sprintf("%q [%d]", m.Title, m.ID)
	}

	return fmt.Sprintf("ambiguous milestone %q: %d candidates match: %s",
		e.Title, len(e.Candidates), strings.Join(names, ", "))
}
