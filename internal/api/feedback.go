package api

import (
	"context"

	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/cache"
	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// Feedback reads the user feedback collection. The backend offers no
// mutations for it, so only fetch operations are exposed.
type Feedback struct {
	svc *Service[models.Feedback]
}

// NewFeedback creates the feedback reader
func NewFeedback(client *transport.Client, inv *cache.Invalidator, log *zap.Logger) *Feedback {
	return &Feedback{svc: NewService[models.Feedback](client, inv, cache.TagFeedback, "/feedback", log)}
}

// List fetches feedback entries
func (f *Feedback) List(ctx context.Context, params ListParams) ([]models.Feedback, error) {
	return f.svc.List(ctx, params)
}

// Get fetches one feedback entry by id
func (f *Feedback) Get(ctx context.Context, id string) (models.Feedback, error) {
	return f.svc.Get(ctx, id)
}

// Watch delivers the feedback list and keeps it fresh
func (f *Feedback) Watch(ctx context.Context, params ListParams) <-chan ListResult[models.Feedback] {
	return f.svc.Watch(ctx, params)
}
