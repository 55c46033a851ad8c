package email

import "errors"

// ErrNotConfigured is returned when a transport lacks credentials.
var ErrNotConfigured = errors.New("email transport not configured")

// EmailMessage represents an email to send
type EmailMessage struct {
	To          string
	ToName      string
	Subject     string
	HTMLContent string
	TextContent string
}
