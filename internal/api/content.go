package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/url"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/cache"
	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// ErrContentNotFound is returned by GetByType when no page of that type
// has been created yet; the editor flow uses it to branch create vs update.
var ErrContentNotFound = errors.New("content not found")

// ErrInvalidContentType is returned for content types outside the fixed
// enumeration.
var ErrInvalidContentType = errors.New("invalid content type")

// ContentService manages the static content pages. At most one record
// exists per page type.
type ContentService struct {
	client *transport.Client
	inv    *cache.Invalidator
	log    *zap.Logger
}

// NewContent creates the content service
func NewContent(client *transport.Client, inv *cache.Invalidator, log *zap.Logger) *ContentService {
	return &ContentService{client: client, inv: inv, log: log}
}

// GetByType fetches the page of the given type. The backend answers with
// either a single object or an array; both are normalized to the first
// record, any other shape is rejected loudly. Stored HTML entities are
// decoded before the record is returned.
func (c *ContentService) GetByType(ctx context.Context, contentType models.ContentType) (models.Content, error) {
	if !models.ValidContentType(contentType) {
		return models.Content{}, fmt.Errorf("%w: %q", ErrInvalidContentType, contentType)
	}

	q := url.Values{}
	q.Set("type", string(contentType))

	var raw json.RawMessage
	if err := c.client.Get(ctx, "/content", q, &raw); err != nil {
		return models.Content{}, err
	}

	record, err := normalizeContent(raw)
	if err != nil {
		return models.Content{}, err
	}
	record.Content = html.UnescapeString(record.Content)
	return record, nil
}

// Save writes a page, creating the record when none exists for the type
// and updating the existing one otherwise. Either way at most one record
// per type remains.
func (c *ContentService) Save(ctx context.Context, contentType models.ContentType, body string) (models.Content, error) {
	if !models.ValidContentType(contentType) {
		return models.Content{}, fmt.Errorf("%w: %q", ErrInvalidContentType, contentType)
	}

	req := models.ContentRequest{Type: contentType, Content: body}

	existing, err := c.GetByType(ctx, contentType)
	switch {
	case err == nil:
		var updated models.Content
		if err := c.client.PutJSON(ctx, "/content/"+url.PathEscape(existing.ID), req, &updated); err != nil {
			return models.Content{}, err
		}
		c.inv.Publish(cache.TagContent)
		return updated, nil
	case errors.Is(err, ErrContentNotFound):
		var created models.Content
		if err := c.client.PostJSON(ctx, "/content", req, &created); err != nil {
			return models.Content{}, err
		}
		c.inv.Publish(cache.TagContent)
		return created, nil
	default:
		return models.Content{}, err
	}
}

// Watch delivers the page of the given type and re-fetches it after every
// content invalidation, until ctx is done.
func (c *ContentService) Watch(ctx context.Context, contentType models.ContentType) <-chan ListResult[models.Content] {
	out := make(chan ListResult[models.Content], 1)
	sub := c.inv.Subscribe(cache.TagContent)

	go func() {
		defer close(out)
		defer sub.Cancel()

		deliver := func() bool {
			record, err := c.GetByType(ctx, contentType)
			result := ListResult[models.Content]{Err: err}
			if err == nil {
				result.Records = []models.Content{record}
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

// normalizeContent reduces the backend's object-or-array response to zero
// or one record. An empty array or null body means the page does not exist
// yet; shapes that are neither object nor array are an error.
func normalizeContent(raw json.RawMessage) (models.Content, error) {
	parsed := gjson.ParseBytes(raw)

	switch {
	case parsed.Type == gjson.Null || len(raw) == 0:
		return models.Content{}, ErrContentNotFound
	case parsed.IsArray():
		items := parsed.Array()
		if len(items) == 0 {
			return models.Content{}, ErrContentNotFound
		}
		var record models.Content
		if err := json.Unmarshal([]byte(items[0].Raw), &record); err != nil {
			return models.Content{}, fmt.Errorf("decode content: %w", err)
		}
		return record, nil
	case parsed.IsObject():
		var record models.Content
		if err := json.Unmarshal(raw, &record); err != nil {
			return models.Content{}, fmt.Errorf("decode content: %w", err)
		}
		if record.ID == "" && record.Type == "" {
			return models.Content{}, ErrContentNotFound
		}
		return record, nil
	default:
		return models.Content{}, fmt.Errorf("unexpected content response shape: %s", parsed.Type)
	}
}
