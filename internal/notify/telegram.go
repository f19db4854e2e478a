package notify

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"github.com/hrishikesh1231/hrishi-service-backend/internal/models"
)

// TelegramAlert posts new-order alerts to a fixed admin chat.
type TelegramAlert struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	panelURL string
}

func NewTelegramAlert(botToken string, chatID int64, panelURL string) (*TelegramAlert, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, errors.Wrap(err, "telegram init")
	}
	return &TelegramAlert{bot: bot, chatID: chatID, panelURL: panelURL}, nil
}

func (t *TelegramAlert) SendOrderAlert(_ context.Context, o models.Order) error {
	msg := tgbotapi.NewMessage(t.chatID, AdminAlertText(o, t.panelURL))
	if _, err := t.bot.Send(msg); err != nil {
		return errors.Wrap(err, "telegram send")
	}
	return nil
}
