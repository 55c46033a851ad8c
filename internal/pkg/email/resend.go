package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendConfig holds Resend API settings
type ResendConfig struct {
	APIKey string
	From   string
}

// ResendTransport sends emails via the Resend API
type ResendTransport struct {
	from   string
	client *resend.Client
}

func NewResendTransport(config ResendConfig) *ResendTransport {
	t := &ResendTransport{from: config.From}
	if config.APIKey != "" {
		t.client = resend.NewClient(config.APIKey)
	}
	return t
}

func (t *ResendTransport) Name() string { return "resend" }

func (t *ResendTransport) Send(ctx context.Context, msg *EmailMessage) error {
	if t.client == nil {
		return ErrNotConfigured
	}

	sent, err := t.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    t.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTMLContent,
		Text:    msg.TextContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send via resend: %w", err)
	}
	if sent == nil || sent.Id == "" {
		return fmt.Errorf("resend returned no message id")
	}
	return nil
}
