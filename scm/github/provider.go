// Package github implements the scm.Provider interface using the GitHub API.
// Merge requests are mapped onto pull requests via the issues API, which
// carries the label and milestone metadata the changelog engine consumes.
package github

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"

	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/scm"
)

func init() {
	// Register the GitHub provider factory
	scm.Register("github", New)
}

// New creates a GitHub provider for the given project ("owner/repo").
func New(ctx context.Context, project string) scm.Provider {
	owner, repo, _ := strings.Cut(project, "/")

	return &Github{
		// TODO: Add support for enterprise GitHub instances (currently SaaS only)
		client: github.NewClient(http.DefaultClient).WithAuthToken(config.Viper(ctx).GetString(config.AuthToken)),
		ctx:    ctx,
		owner:  owner,
		repo:   repo,
	}
}

type Github struct {
	client *github.Client
	ctx    context.Context
	owner  string
	repo   string
}

// Capabilities reports which optional operations GitHub supports.
// GitHub has no group-level milestones, so sprint collection across a group
// falls back to project scope.
func (g *Github) Capabilities() *scm.Capabilities {
	return &scm.Capabilities{
		GroupMilestones:  false,
		Releases:         true,
		CreateMilestones: true,
	}
}
