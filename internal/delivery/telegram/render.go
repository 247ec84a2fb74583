package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RenderSettings renders settings message with keyboard.
func (h *Handler) RenderSettings(ctx context.Context, chatID int64) (string, tgbotapi.InlineKeyboardMarkup, error) {
	settings, err := h.settingsService.GetOrCreate(ctx, chatID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	return buildSettingsMessage(settings), buildSettingsKeyboard(settings), nil
}

// RenderMode renders the difficulty picker.
func (h *Handler) RenderMode(ctx context.Context, chatID int64) (string, tgbotapi.InlineKeyboardMarkup, error) {
	settings, err := h.settingsService.GetOrCreate(ctx, chatID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	return buildModeMessage(settings), buildModeKeyboard(settings), nil
}

// RenderCategories renders the category picker.
func (h *Handler) RenderCategories(ctx context.Context, chatID int64) (string, tgbotapi.InlineKeyboardMarkup, error) {
	settings, err := h.settingsService.GetOrCreate(ctx, chatID)
	if err != nil {
		return "", tgbotapi.InlineKeyboardMarkup{}, err
	}

	return buildCategoriesMessage(settings), buildCategoriesKeyboard(settings), nil
}
