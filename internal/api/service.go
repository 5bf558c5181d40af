// Package api exposes typed operations over the backend's collections.
// UI code never talks to the network directly; it goes through these
// services, which attach credentials, normalize errors and keep active
// list views in sync after mutations.
package api

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/cache"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// ListParams are the optional query parameters of a collection fetch
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	return q
}

// ListResult is one delivery from Watch: either a fresh collection
// snapshot or the error that prevented fetching one.
type ListResult[T any] struct {
	Records []T
	Err     error
}

// Service is the cache-and-mutation synchronizer for one backend
// collection. Mutations that succeed invalidate the collection's tag so
// every active Watch re-fetches; failed mutations never do.
type Service[T any] struct {
	client   *transport.Client
	inv      *cache.Invalidator
	tag      cache.Tag
	basePath string
	log      *zap.Logger
}

// NewService creates a synchronizer for the collection at basePath
func NewService[T any](client *transport.Client, inv *cache.Invalidator, tag cache.Tag, basePath string, log *zap.Logger) *Service[T] {
	return &Service[T]{
		client:   client,
		inv:      inv,
		tag:      tag,
		basePath: basePath,
		log:      log,
	}
}

// List fetches the collection once
func (s *Service[T]) List(ctx context.Context, params ListParams) ([]T, error) {
	var records []T
	if err := s.client.Get(ctx, s.basePath, params.values(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches a single record by id
func (s *Service[T]) Get(ctx context.Context, id string) (T, error) {
	var record T
	err := s.client.Get(ctx, s.basePath+"/"+url.PathEscape(id), nil, &record)
	return record, err
}

// Watch fetches the collection and re-fetches it after every invalidation
// of the collection's tag, delivering each result on the returned channel
// until ctx is done. Results of a fetch that completes after cancellation
// are dropped, never delivered.
func (s *Service[T]) Watch(ctx context.Context, params ListParams) <-chan ListResult[T] {
	out := make(chan ListResult[T], 1)
	sub := s.inv.Subscribe(s.tag)

	go func() {
		defer close(out)
		defer sub.Cancel()

		deliver := func() bool {
			records, err := s.List(ctx, params)
			select {
			case out <- ListResult[T]{Records: records, Err: err}:
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

// Create posts a new record as a multipart form. The collection tag is
// invalidated only when the backend accepts the record.
func (s *Service[T]) Create(ctx context.Context, form *transport.Form) (T, error) {
	var record T
	if err := s.client.PostForm(ctx, s.basePath, form, &record); err != nil {
		return record, err
	}
	s.invalidate()
	return record, nil
}

// Update patches a record by id as a multipart form. Media fields absent
// from the form retain their existing assets server-side.
func (s *Service[T]) Update(ctx context.Context, id string, form *transport.Form) (T, error) {
	var record T
	if err := s.client.PatchForm(ctx, s.basePath+"/"+url.PathEscape(id), form, &record); err != nil {
		return record, err
	}
	s.invalidate()
	return record, nil
}

// Remove deletes a record by id
func (s *Service[T]) Remove(ctx context.Context, id string) error {
	if err := s.client.Delete(ctx, s.basePath+"/"+url.PathEscape(id)); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service[T]) invalidate() {
	s.log.Debug("invalidating", zap.String("tag", string(s.tag)))
	s.inv.Publish(s.tag)
}
