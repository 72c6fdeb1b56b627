package notification

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pings the venue's ops chat when a booking request goes
// through. An empty token disables it without failing startup.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingSubmitted(ctx context.Context, draft *domain.BookingDraft, conf *domain.BookingConfirmation) {
	ids := draft.SelectedMenuItems()
	items := make([]string, 0, len(ids))
	for _, id := range ids {
		items = append(items, fmt.Sprint(id))
	}

	text := fmt.Sprintf(
		"*New booking request %s*\n\n"+
			"Event: %s on %s at %s\n"+
			"Guests: %d\n"+
			"Contact: %s (%s)\n"+
			"Menu items: %s",
		conf.BookingID,
		draft.EventType,
		draft.EventDate.Format("02.01.2006"),
		draft.EventTime,
		draft.GuestCount,
		draft.CustomerName,
		draft.CustomerPhone,
		strings.Join(items, ", "),
	)

	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
