package sms

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/misk/misk-api/internal/pkg/email"
)

// Twilio rejects bodies longer than this.
const maxBodyRunes = 1600

// TwilioConfig holds Twilio credentials and numbers
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	To         string
}

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioTransport delivers the text body of a notification as an SMS.
type TwilioTransport struct {
	from string
	to   string
	api  messageCreator
}

func NewTwilioTransport(config TwilioConfig) *TwilioTransport {
	t := &TwilioTransport{from: config.From, to: config.To}
	if config.AccountSID != "" && config.AuthToken != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: config.AccountSID,
			Password: config.AuthToken,
		})
		t.api = client.Api
	}
	return t
}

func (t *TwilioTransport) Name() string { return "twilio" }

// Send ignores msg.To; the SMS always goes to the configured operator number.
func (t *TwilioTransport) Send(ctx context.Context, msg *email.EmailMessage) error {
	if t.api == nil || t.from == "" || t.to == "" {
		return email.ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(t.to)
	params.SetFrom(t.from)
	params.SetBody(Body(msg))

	resp, err := t.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	if resp == nil || resp.Sid == nil {
		return fmt.Errorf("twilio returned no message sid")
	}
	return nil
}

// Body builds the SMS text from the subject and plain-text content.
func Body(msg *email.EmailMessage) string {
	body := msg.Subject
	if msg.TextContent != "" {
		body += "\n\n" + msg.TextContent
	}
	if utf8.RuneCountInString(body) <= maxBodyRunes {
		return body
	}
	runes := []rune(body)
	return string(runes[:maxBodyRunes-1]) + "…"
}
