package changelog

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/ryclarke/changelog-tool/config"
	"github.com/ryclarke/changelog-tool/scm"
)

// Classification is the (version, product, change-type) cell assigned to a
// merge request.
type Classification struct {
	Version    string
	Product    string
	ChangeType string
}

// Classifier assigns merge requests to changelog cells. It is a pure function
// of its configuration; Classify has no side effects.
type Classifier struct {
	Releases          mapset.Set[int]
	TypeConvention    LabelConvention
	ProductConvention LabelConvention
	DefaultType       string
	DefaultProduct    string
}

// NewClassifier builds a Classifier from the configured label conventions,
// accepting only records assigned to one of the given release milestones.
func NewClassifier(ctx context.Context, releases ...*scm.Milestone) *Classifier {
	viper := config.Viper(ctx)

	ids := mapset.NewSet[int]()
	for _, release := range releases {
		ids.Add(release.ID)
	}

	return &Classifier{
		Releases:          ids,
		TypeConvention:    TypeConvention(ctx),
		ProductConvention: ProductConvention(ctx),
		DefaultType:       viper.GetString(config.DefaultType),
		DefaultProduct:    viper.GetString(config.DefaultProduct),
	}
}

// Classify assigns a merge request to a changelog cell. The boolean is false
// when the record must be excluded: no milestone, or a milestone outside the
// release set. Version is taken solely from the milestone title; product and
// change-type fall back to the configured defaults when no label matches.
func (c *Classifier) Classify(mr *scm.MergeRequest) (Classification, bool) {
	id, ok := mr.MilestoneID()
	if !ok || !c.Releases.Contains(id) {
		return Classification{}, false
	}

	classification := Classification{
		Version:    mr.Milestone.Title,
		Product:    c.DefaultProduct,
		ChangeType: c.DefaultType,
	}

	if product, ok := Extract(mr.Labels, c.ProductConvention); ok {
		classification.Product = product
	}

	if changeType, ok := Extract(mr.Labels, c.TypeConvention); ok {
		classification.ChangeType = changeType
	}

	return classification, true
}
