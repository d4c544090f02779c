package portal

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
	"github.com/ChiobiJason/asa-policy-frontend/internal/view"
)

// PolicyLister is the slice of the API client the aggregator needs.
type PolicyLister interface {
	ApprovedPolicies(ctx context.Context, section string) ([]api.PolicyRecord, error)
}

// Aggregator assembles the grouped listing. Primary path: one concurrent
// fetch per section using the API's section filter. If any of those fails,
// partial results are discarded and a single unfiltered fetch is grouped
// client-side instead; only when that also fails does an error escape.
type Aggregator struct {
	lister PolicyLister
	logger *zap.Logger
}

// NewAggregator wires an aggregator over the API client.
func NewAggregator(lister PolicyLister, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{lister: lister, logger: logger}
}

// FetchGroups returns one sorted group per fixed section.
func (a *Aggregator) FetchGroups(ctx context.Context) ([]Group, error) {
	groups, err := a.fetchPerSection(ctx)
	if err == nil {
		return groups, nil
	}
	a.logger.Warn("per-section fetch failed, falling back to full list", zap.Error(err))

	records, err := a.lister.ApprovedPolicies(ctx, "")
	if err != nil {
		return nil, err
	}
	return GroupBySection(view.MapPolicies(records)), nil
}

func (a *Aggregator) fetchPerSection(ctx context.Context) ([]Group, error) {
	groups := make([]Group, len(Sections))

	// Plain errgroup, no shared context cancellation: a failing section must
	// not abort its siblings, the fallback decision happens after Wait.
	var g errgroup.Group
	for i, sec := range Sections {
		g.Go(func() error {
			records, err := a.lister.ApprovedPolicies(ctx, sec.Key)
			if err != nil {
				return err
			}
			docs := view.MapPolicies(records)
			view.SortDocuments(docs)
			groups[i] = Group{Section: sec, Documents: docs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return groups, nil
}
