package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/misk/misk-api/internal/pkg/email"
)

const (
	fcmEndpoint  = "https://fcm.googleapis.com/v1/projects/%s/messages:send"
	maxBodyRunes = 240
)

// FCMConfig holds Firebase Cloud Messaging configuration
type FCMConfig struct {
	AccessToken string // OAuth2 bearer for the HTTP v1 API
	ProjectID   string
	DeviceToken string // operator device
}

// FCMClient pushes booking alerts to the operator's device
type FCMClient struct {
	config     FCMConfig
	endpoint   string
	httpClient *http.Client
}

// NewFCMClient creates a new FCM client
func NewFCMClient(config FCMConfig) *FCMClient {
	return &FCMClient{
		config:   config,
		endpoint: fmt.Sprintf(fcmEndpoint, config.ProjectID),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FCMRequest represents the FCM HTTP v1 API request
type FCMRequest struct {
	Message FCMMessage `json:"message"`
}

type FCMMessage struct {
	Token        string            `json:"token"`
	Notification *FCMNotification  `json:"notification,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
	Android      *FCMAndroid       `json:"android,omitempty"`
	Webpush      *FCMWebpush       `json:"webpush,omitempty"`
}

type FCMNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type FCMAndroid struct {
	Priority string `json:"priority,omitempty"` // "high" or "normal"
}

type FCMWebpush struct {
	Notification *FCMWebpushNotification `json:"notification,omitempty"`
}

type FCMWebpushNotification struct {
	Icon string `json:"icon,omitempty"`
}

func (c *FCMClient) Name() string { return "fcm" }

// Send pushes the subject as title and a shortened text body.
func (c *FCMClient) Send(ctx context.Context, msg *email.EmailMessage) error {
	if c.config.AccessToken == "" || c.config.ProjectID == "" || c.config.DeviceToken == "" {
		return email.ErrNotConfigured
	}

	request := FCMRequest{
		Message: FCMMessage{
			Token: c.config.DeviceToken,
			Notification: &FCMNotification{
				Title: msg.Subject,
				Body:  shorten(msg.TextContent),
			},
			Data:    map[string]string{"kind": "booking_request"},
			Android: &FCMAndroid{Priority: "high"},
			Webpush: &FCMWebpush{
				Notification: &FCMWebpushNotification{Icon: "/icon-192.png"},
			},
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal FCM request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send FCM request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("FCM returned status %d", resp.StatusCode)
	}

	return nil
}

func shorten(s string) string {
	if utf8.RuneCountInString(s) <= maxBodyRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxBodyRunes-1]) + "…"
}
