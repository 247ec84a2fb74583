package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// Bot is the part of *tgbotapi.BotAPI the handler talks to.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, chatID int64) (*entities.ChatSettings, error)
	UpdateMode(ctx context.Context, chatID int64, mode entities.Mode) error
	ToggleCategory(ctx context.Context, chatID int64, category entities.Category) (*entities.ChatSettings, error)
	UpdateQuestionCount(ctx context.Context, chatID int64, count int) error
}

type QuizService interface {
	StartSession(chatID int64, settings *entities.ChatSettings) (*entities.QuizSession, error)
	Answer(chatID int64, shortID string, questionNum, optionIndex int) (*entities.QuizSession, *entities.QuizAnswer, error)
	Next(chatID int64, shortID string) (*entities.QuizSession, error)
	Finish(chatID int64)
}
