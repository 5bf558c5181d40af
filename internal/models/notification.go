package models

// NotificationToken is one registered device push token
type NotificationToken struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NotificationTokensResponse is returned by the notification-tokens endpoint
type NotificationTokensResponse struct {
	Results []NotificationToken `json:"results"`
	Total   int                 `json:"total"`
}

// NotificationPayload is the inner data object of a send-notification request
type NotificationPayload struct {
	Title          string `json:"title"`
	Msg            string `json:"msg"`
	NotificationAt string `json:"notification_at,omitempty"`
}

// SendNotificationRequest is the body for the send-notification endpoint
type SendNotificationRequest struct {
	Data NotificationPayload `json:"data"`
}

// SendNotificationStats summarizes fan-out results reported by the backend
type SendNotificationStats struct {
	TotalSent    int `json:"totalSent"`
	TotalSuccess int `json:"totalSuccess"`
	TotalFailure int `json:"totalFailure"`
}

// SendNotificationResponse is returned by the send-notification endpoint
type SendNotificationResponse struct {
	Message string                 `json:"message"`
	Data    *SendNotificationStats `json:"data,omitempty"`
}
