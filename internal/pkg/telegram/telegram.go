package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/misk/misk-api/internal/pkg/email"
)

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Transport posts notifications to a Telegram chat.
type Transport struct {
	bot    botSender
	chatID int64
}

// NewTransport connects the bot. An empty token yields a disabled transport.
func NewTransport(token string, chatID int64) (*Transport, error) {
	if token == "" {
		log.Warn().Msg("Telegram bot token is empty, telegram notifications disabled")
		return &Transport{chatID: chatID}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Transport{bot: bot, chatID: chatID}, nil
}

func (t *Transport) Name() string { return "telegram" }

func (t *Transport) Send(ctx context.Context, msg *email.EmailMessage) error {
	if t.bot == nil || t.chatID == 0 {
		return email.ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	text := msg.Subject
	if msg.TextContent != "" {
		text += "\n\n" + msg.TextContent
	}

	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
