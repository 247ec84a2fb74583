package service

import (
	"context"
	"time"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

// Dataset is the read-only astrology data the generators traverse.
type Dataset interface {
	Planets() []entities.Planet
	Signs() []entities.Sign
	Houses() []entities.House
	Aspects() []entities.Aspect
}

// SessionStorage keeps the active quiz session of each chat.
type SessionStorage interface {
	Store(session *entities.QuizSession)
	Get(chatID int64) (*entities.QuizSession, bool)
	Update(chatID int64, fn func(*entities.QuizSession) error) (*entities.QuizSession, bool, error)
	Delete(chatID int64)
	DeleteStale(cutoff time.Time) int
}

// SettingsRepository persists per-chat quiz preferences.
type SettingsRepository interface {
	Create(ctx context.Context, settings *entities.ChatSettings) error
	GetByChatID(ctx context.Context, chatID int64) (*entities.ChatSettings, error)
	UpdateMode(ctx context.Context, chatID int64, mode entities.Mode) error
	UpdateQuestionCount(ctx context.Context, chatID int64, count int) error
	ToggleCategory(ctx context.Context, chatID int64, category entities.Category) (*entities.ChatSettings, error)
}
