package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/astro-quiz-bot/internal/repository"
)

var ErrInvalidQuestionCount = errors.New("invalid question count")

type SettingsService struct {
	repository           SettingsRepository
	defaultQuestionCount int
}

func NewSettingsService(repository SettingsRepository, defaultQuestionCount int) *SettingsService {
	if !entities.IsValidQuestionCount(defaultQuestionCount) {
		defaultQuestionCount = entities.QuestionCounts[1]
	}

	return &SettingsService{
		repository:           repository,
		defaultQuestionCount: defaultQuestionCount,
	}
}

func (s *SettingsService) GetOrCreate(ctx context.Context, chatID int64) (*entities.ChatSettings, error) {
	settings, err := s.repository.GetByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			// Create default settings.
			if err := s.repository.Create(ctx, entities.NewChatSettings(chatID, s.defaultQuestionCount)); err != nil {
				return nil, err
			}
			return s.repository.GetByChatID(ctx, chatID)
		}
		return nil, err
	}

	return settings, nil
}

func (s *SettingsService) UpdateMode(ctx context.Context, chatID int64, mode entities.Mode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	if _, err := s.GetOrCreate(ctx, chatID); err != nil {
		return err
	}
	return s.repository.UpdateMode(ctx, chatID, mode)
}

// ToggleCategory selects or deselects a category and returns the new settings.
// Deselecting the last selected category fails with entities.ErrLastCategory.
func (s *SettingsService) ToggleCategory(ctx context.Context, chatID int64, category entities.Category) (*entities.ChatSettings, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	if _, err := s.GetOrCreate(ctx, chatID); err != nil {
		return nil, err
	}
	return s.repository.ToggleCategory(ctx, chatID, category)
}

func (s *SettingsService) UpdateQuestionCount(ctx context.Context, chatID int64, count int) error {
	if !entities.IsValidQuestionCount(count) {
		return fmt.Errorf("%w: %d", ErrInvalidQuestionCount, count)
	}

	if _, err := s.GetOrCreate(ctx, chatID); err != nil {
		return err
	}
	return s.repository.UpdateQuestionCount(ctx, chatID, count)
}
