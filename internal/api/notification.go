package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/Jaydeep9963/video-player-admin/internal/models"
	"github.com/Jaydeep9963/video-player-admin/internal/transport"
)

// ErrMissingNotificationFields is returned when a push is attempted
// without a title or message.
var ErrMissingNotificationFields = errors.New("title and msg are required")

// NotificationService dispatches push notifications and lists the device
// tokens they fan out to. Fan-out itself happens server-side.
type NotificationService struct {
	client *transport.Client
	log    *zap.Logger
}

// NewNotifications creates the notification service
func NewNotifications(client *transport.Client, log *zap.Logger) *NotificationService {
	return &NotificationService{client: client, log: log}
}

// Tokens lists the registered device push tokens
func (n *NotificationService) Tokens(ctx context.Context) (models.NotificationTokensResponse, error) {
	var resp models.NotificationTokensResponse
	err := n.client.Get(ctx, "/admin/notification/notification-tokens", nil, &resp)
	return resp, err
}

// Send dispatches a notification to all devices. NotificationAt may be
// empty for immediate delivery.
func (n *NotificationService) Send(ctx context.Context, payload models.NotificationPayload) (models.SendNotificationResponse, error) {
	if payload.Title == "" || payload.Msg == "" {
		return models.SendNotificationResponse{}, ErrMissingNotificationFields
	}

	var resp models.SendNotificationResponse
	err := n.client.PostJSON(ctx, "/admin/notification/send-notification", models.SendNotificationRequest{Data: payload}, &resp)
	if err != nil {
		return models.SendNotificationResponse{}, err
	}
	if resp.Data != nil {
		n.log.Info("notification dispatched",
			zap.Int("sent", resp.Data.TotalSent),
			zap.Int("failed", resp.Data.TotalFailure))
	}
	return resp, nil
}

// History lists previously sent notifications. The response shape is
// backend-defined, so it is returned raw for the caller to render.
func (n *NotificationService) History(ctx context.Context, page, limit int) (json.RawMessage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var raw json.RawMessage
	err := n.client.Get(ctx, "/admin/notification/history", q, &raw)
	return raw, err
}
