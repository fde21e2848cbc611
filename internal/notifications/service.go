package notifications

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Service pushes one-line reports to a Telegram chat.
type Service struct {
	logger *slog.Logger
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewService(logger *slog.Logger, token string, chatID int64) (*Service, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Service{
		logger: logger,
		api:    api,
		chatID: chatID,
	}, nil
}

// Notify sends message to the configured chat. A nil service drops the
// message, so callers do not need to know whether Telegram is configured.
func (s *Service) Notify(ctx context.Context, message string) error {
	if s == nil {
		return nil
	}
	if _, err := s.api.Send(tgbotapi.NewMessage(s.chatID, message)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	s.logger.Info("notification sent", "chat_id", s.chatID)
	return nil
}
