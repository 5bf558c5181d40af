package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/cache"
	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// Overview fetches the dashboard aggregate: record counts plus the most
// recently added items.
type Overview struct {
	client *transport.Client
	inv    *cache.Invalidator
	log    *zap.Logger
}

// NewOverview creates the overview reader
func NewOverview(client *transport.Client, inv *cache.Invalidator, log *zap.Logger) *Overview {
	return &Overview{client: client, inv: inv, log: log}
}

// Get fetches the overview once
func (o *Overview) Get(ctx context.Context) (models.OverviewResponse, error) {
	var resp models.OverviewResponse
	err := o.client.Get(ctx, "/overview", nil, &resp)
	return resp, err
}

// Watch delivers the overview and re-fetches it whenever its tag is
// invalidated, until ctx is done.
func (o *Overview) Watch(ctx context.Context) <-chan ListResult[models.OverviewResponse] {
	out := make(chan ListResult[models.OverviewResponse], 1)
	sub := o.inv.Subscribe(cache.TagOverview)

	go func() {
		defer close(out)
		defer sub.Cancel()

		deliver := func() bool {
			resp, err := o.Get(ctx)
			result := ListResult[models.OverviewResponse]{Err: err}
			if err == nil {
				result.Records = []models.OverviewResponse{resp}
			}
			select {
			case out <- result:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !deliver() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-sub.C:
				if !deliver() {
					return
				}
			}
		}
	}()
	return out
}
