package main

import (
	"fmt"

	"github.com/misk/misk-api/internal/config"
	"github.com/misk/misk-api/internal/domain/notification"
	"github.com/misk/misk-api/internal/pkg/email"
	"github.com/misk/misk-api/internal/pkg/push"
	"github.com/misk/misk-api/internal/pkg/sms"
	"github.com/misk/misk-api/internal/pkg/telegram"
)

// newTransport builds a notification transport by name. An empty name or
// "none" disables that slot.
func newTransport(name string, cfg *config.Config) (notification.Transport, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "smtp":
		return email.NewSMTPTransport(email.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Secure:   cfg.SMTPSecure,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		}), nil
	case "resend":
		return email.NewResendTransport(email.ResendConfig{
			APIKey: cfg.ResendAPIKey,
			From:   cfg.ResendFrom,
		}), nil
	case "sendgrid":
		return email.NewSendGridClient(email.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFrom,
			FromName:  "Misk Studios",
		}), nil
	case "twilio":
		return sms.NewTwilioTransport(sms.TwilioConfig{
			AccountSID: cfg.TwilioAccountSID,
			AuthToken:  cfg.TwilioAuthToken,
			From:       cfg.TwilioFrom,
			To:         cfg.AdminPhone,
		}), nil
	case "telegram":
		t, err := telegram.NewTransport(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			return nil, err
		}
		return t, nil
	case "fcm":
		return push.NewFCMClient(push.FCMConfig{
			AccessToken: cfg.FCMAccessToken,
			ProjectID:   cfg.FCMProjectID,
			DeviceToken: cfg.FCMDeviceToken,
		}), nil
	default:
		return nil, fmt.Errorf("unknown notification transport %q", name)
	}
}
