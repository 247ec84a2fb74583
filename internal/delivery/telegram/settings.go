package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// handleSettingsCallback applies a settings button press and redraws the
// settings screen in place.
func (h *Handler) handleSettingsCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, data callbackData) error {
	chatID := cb.Message.Chat.ID
	toast := ""

	switch data.param(0) {
	case settingsMenu:

	case settingsMode:
		mode, ok := entities.ParseMode(data.param(1))
		if !ok {
			return fmt.Errorf("invalid mode in callback %q", data.Raw)
		}
		if err := h.settingsService.UpdateMode(ctx, chatID, mode); err != nil {
			return err
		}
		toast = "Mode: " + formatMode(mode)

	case settingsCategory:
		category, ok := entities.ParseCategory(data.param(1))
		if !ok {
			return fmt.Errorf("invalid category in callback %q", data.Raw)
		}
		if _, err := h.settingsService.ToggleCategory(ctx, chatID, category); err != nil {
			if errors.Is(err, entities.ErrLastCategory) {
				h.answerCallback(cb.ID, msgLastCategory)
				return nil
			}
			return err
		}

	case settingsCount:
		count, err := strconv.Atoi(data.param(1))
		if err != nil {
			return fmt.Errorf("invalid count in callback %q: %w", data.Raw, err)
		}
		if err := h.settingsService.UpdateQuestionCount(ctx, chatID, count); err != nil {
			return err
		}
		toast = fmt.Sprintf("%d questions per quiz", count)

	default:
		return fmt.Errorf("unknown settings action %q", data.Raw)
	}

	text, keyboard, err := h.RenderSettings(ctx, chatID)
	if err != nil {
		return err
	}

	edit := newEdit(chatID, cb.Message.MessageID, text)
	edit.ReplyMarkup = &keyboard
	if err := h.editMessage(edit); err != nil {
		return err
	}

	h.answerCallback(cb.ID, toast)
	return nil
}
