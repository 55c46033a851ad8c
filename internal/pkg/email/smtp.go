package email

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds SMTP relay settings
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS (usually port 465)
	Username string
	Password string
	From     string
}

// SMTPTransport sends emails through an SMTP relay
type SMTPTransport struct {
	config SMTPConfig
}

func NewSMTPTransport(config SMTPConfig) *SMTPTransport {
	if config.From == "" {
		config.From = config.Username
	}
	return &SMTPTransport{config: config}
}

func (t *SMTPTransport) Name() string { return "smtp" }

func (t *SMTPTransport) configured() bool {
	return t.config.Host != "" && t.config.Username != "" && t.config.Password != ""
}

// Send dials the relay and delivers msg as multipart text+HTML.
func (t *SMTPTransport) Send(ctx context.Context, msg *EmailMessage) error {
	if !t.configured() {
		return ErrNotConfigured
	}

	m := mail.NewMsg()
	if err := m.From(t.config.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if msg.ToName != "" {
		if err := m.AddToFormat(msg.ToName, msg.To); err != nil {
			return fmt.Errorf("invalid recipient: %w", err)
		}
	} else if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.TextContent)
	if msg.HTMLContent != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLContent)
	}

	opts := []mail.Option{
		mail.WithPort(t.config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(t.config.Username),
		mail.WithPassword(t.config.Password),
	}
	if t.config.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(t.config.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send via smtp: %w", err)
	}
	return nil
}
