package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// CallbackFunc handles a decoded inline button press.
type CallbackFunc func(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) error

func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := fn(ctx, chatID); err != nil {
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
			return nil
		}
		return nil
	}
}

// withCallbackErrorHandling logs callback failures and always answers the
// callback so the client stops showing a spinner.
func (h *Handler) withCallbackErrorHandling(fn CallbackFunc) CallbackFunc {
	return func(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) error {
		if err := fn(ctx, cb, data); err != nil {
			h.logger.Error("callback error",
				zap.String("data", data.Raw),
				zap.Int64("user_id", cb.From.ID),
				zap.Error(err),
			)
			h.answerCallback(cb.ID, msgInternalError)
			return nil
		}
		return nil
	}
}
