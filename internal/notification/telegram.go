package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/malyshevd/PhotoBooker/internal/domain"
)

// TelegramNotifier pings the studio owner's chat when a booking request goes
// out. Best-effort only: a failed notification never fails the booking.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	ownerChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, ownerChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, ownerChatID: ownerChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, ownerChatID: ownerChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingSubmitted(ctx context.Context, req *domain.BookingRequest, service *domain.Service) {
	text := fmt.Sprintf(
		"*New booking request*\n\n"+
			"Service: %s\n"+
			"Date: %s\n"+
			"Time: %s — %s\n"+
			"Occasion: %s\n"+
			"Client: %s (%s, %s)",
		service.Name,
		req.BookingDate,
		req.StartTime, req.EndTime,
		req.Occasion,
		req.Name, req.Email, req.Phone,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.ownerChatID == 0 {
		n.logger.Debug("notification skipped (no owner chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.ownerChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.ownerChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.ownerChatID),
			logger.String("error", err.Error()),
		)
	}
}
