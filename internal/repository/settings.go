package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository keeps chat settings in memory.
// It is used when no database is configured; settings are lost on restart.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings map[int64]entities.ChatSettings
}

// NewSettingsRepository creates an empty in-memory SettingsRepository.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		settings: make(map[int64]entities.ChatSettings),
	}
}

// Create stores settings unless the chat already has some.
func (r *SettingsRepository) Create(_ context.Context, settings *entities.ChatSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.settings[settings.ChatID]; ok {
		return nil
	}
	r.settings[settings.ChatID] = clone(*settings)
	return nil
}

// GetByChatID returns a copy of the chat settings.
// Returns ErrSettingsNotFound if settings don't exist.
func (r *SettingsRepository) GetByChatID(_ context.Context, chatID int64) (*entities.ChatSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.settings[chatID]
	if !ok {
		return nil, ErrSettingsNotFound
	}
	s = clone(s)
	return &s, nil
}

// UpdateMode updates only the mode.
func (r *SettingsRepository) UpdateMode(_ context.Context, chatID int64, mode entities.Mode) error {
	return r.update(chatID, func(s *entities.ChatSettings) error {
		s.Mode = mode
		return nil
	})
}

// UpdateQuestionCount updates only the quiz length.
func (r *SettingsRepository) UpdateQuestionCount(_ context.Context, chatID int64, count int) error {
	return r.update(chatID, func(s *entities.ChatSettings) error {
		s.QuestionCount = count
		return nil
	})
}

// ToggleCategory selects or deselects a category and returns the updated settings.
func (r *SettingsRepository) ToggleCategory(_ context.Context, chatID int64, category entities.Category) (*entities.ChatSettings, error) {
	var updated entities.ChatSettings
	err := r.update(chatID, func(s *entities.ChatSettings) error {
		if err := s.ToggleCategory(category); err != nil {
			return err
		}
		updated = clone(*s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *SettingsRepository) update(chatID int64, fn func(s *entities.ChatSettings) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.settings[chatID]
	if !ok {
		return ErrSettingsNotFound
	}
	s = clone(s)
	if err := fn(&s); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	r.settings[chatID] = s
	return nil
}

func clone(s entities.ChatSettings) entities.ChatSettings {
	s.Categories = append([]entities.Category(nil), s.Categories...)
	return s
}
