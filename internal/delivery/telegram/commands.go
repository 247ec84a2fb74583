package telegram

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/astro-quiz-bot/internal/service"
)

// handleStart greets the chat.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, err := h.settingsService.GetOrCreate(ctx, chatID); err != nil {
			h.logger.Warn("failed to create default settings",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
		}

		msg := newMessage(chatID, welcomeMessage())
		msg.ReplyMarkup = buildStartKeyboard()
		return h.send(msg)
	}
}

// handleHelp explains commands and modes.
func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMessage()))
	}
}

// handleQuiz starts a new quiz for the chat.
func (h *Handler) handleQuiz() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.startQuiz(ctx, chatID)
	}
}

// handleMode shows the difficulty picker, or sets the mode directly when
// given as an argument ("/mode hard").
func (h *Handler) handleMode(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if arg := strings.TrimSpace(args); arg != "" {
			mode, ok := entities.ParseMode(arg)
			if !ok {
				return h.send(newPlainMessage(chatID, msgInvalidMode))
			}

			if err := h.settingsService.UpdateMode(ctx, chatID, mode); err != nil {
				if errors.Is(err, service.ErrInvalidMode) {
					return h.send(newPlainMessage(chatID, msgInvalidMode))
				}
				return err
			}
		}

		text, keyboard, err := h.RenderMode(ctx, chatID)
		if err != nil {
			h.logger.Error("failed to render mode",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			return h.send(newPlainMessage(chatID, msgSettingsUnavailable))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = keyboard
		return h.send(msg)
	}
}

// handleCategories shows the category picker.
func (h *Handler) handleCategories() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, keyboard, err := h.RenderCategories(ctx, chatID)
		if err != nil {
			h.logger.Error("failed to render categories",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			return h.send(newPlainMessage(chatID, msgSettingsUnavailable))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = keyboard
		return h.send(msg)
	}
}

// handleSettings displays chat settings.
func (h *Handler) handleSettings() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.logger.Debug("rendering settings", zap.Int64("chat_id", chatID))

		text, keyboard, err := h.RenderSettings(ctx, chatID)
		if err != nil {
			h.logger.Error("failed to render settings",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			return h.send(newPlainMessage(chatID, msgSettingsUnavailable))
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = keyboard
		return h.send(msg)
	}
}
