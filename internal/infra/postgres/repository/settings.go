package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/astro-quiz-bot/internal/domain/entities"
	"github.com/aliskhannn/astro-quiz-bot/internal/infra/postgres"
	"github.com/aliskhannn/astro-quiz-bot/internal/repository"
)

// SettingsRepository provides access to chat settings stored in PostgreSQL.
type SettingsRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewSettingsRepository creates a new SettingsRepository with the provided database pool.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{
		db:         pool,
		transactor: postgres.NewTransactor(pool),
	}
}

// Create inserts settings for a chat unless they already exist.
func (r *SettingsRepository) Create(ctx context.Context, settings *entities.ChatSettings) error {
	query := `
		INSERT INTO chat_settings (chat_id, mode, categories, question_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (chat_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		settings.ChatID,
		string(settings.Mode),
		categoriesToStrings(settings.Categories),
		settings.QuestionCount,
		settings.CreatedAt,
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create settings: %w", err)
	}

	return nil
}

// GetByChatID retrieves settings by chat ID.
// Returns repository.ErrSettingsNotFound if settings don't exist.
func (r *SettingsRepository) GetByChatID(ctx context.Context, chatID int64) (*entities.ChatSettings, error) {
	return getByChatID(ctx, r.db, chatID, false)
}

// UpdateMode updates only the mode field.
func (r *SettingsRepository) UpdateMode(ctx context.Context, chatID int64, mode entities.Mode) error {
	query := `
		UPDATE chat_settings
		SET mode = $2, updated_at = NOW()
		WHERE chat_id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, chatID, string(mode))
	if err != nil {
		return fmt.Errorf("update mode: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return repository.ErrSettingsNotFound
	}

	return nil
}

// UpdateQuestionCount updates only the question_count field.
func (r *SettingsRepository) UpdateQuestionCount(ctx context.Context, chatID int64, count int) error {
	query := `
		UPDATE chat_settings
		SET question_count = $2, updated_at = NOW()
		WHERE chat_id = $1
	`

	cmdTag, err := r.db.Exec(ctx, query, chatID, count)
	if err != nil {
		return fmt.Errorf("update question count: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return repository.ErrSettingsNotFound
	}

	return nil
}

// ToggleCategory selects or deselects a category. The row is locked for the
// duration of the read-modify-write so concurrent toggles cannot leave the
// chat with no categories.
func (r *SettingsRepository) ToggleCategory(ctx context.Context, chatID int64, category entities.Category) (*entities.ChatSettings, error) {
	var updated *entities.ChatSettings

	err := r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		settings, err := getByChatID(ctx, tx, chatID, true)
		if err != nil {
			return err
		}

		if err := settings.ToggleCategory(category); err != nil {
			return err
		}

		query := `
			UPDATE chat_settings
			SET categories = $2, updated_at = $3
			WHERE chat_id = $1
		`
		if _, err := tx.Exec(ctx, query, chatID, categoriesToStrings(settings.Categories), settings.UpdatedAt); err != nil {
			return fmt.Errorf("update categories: %w", err)
		}

		updated = settings
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func getByChatID(ctx context.Context, db postgres.DBTX, chatID int64, forUpdate bool) (*entities.ChatSettings, error) {
	query := `
		SELECT chat_id, mode, categories, question_count, created_at, updated_at
		FROM chat_settings
		WHERE chat_id = $1
	`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		settings   entities.ChatSettings
		mode       string
		categories []string
	)
	err := db.QueryRow(ctx, query, chatID).Scan(
		&settings.ChatID,
		&mode,
		&categories,
		&settings.QuestionCount,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("get settings by chat id: %w", err)
	}

	settings.Mode = entities.Mode(mode)
	settings.Categories = make([]entities.Category, 0, len(categories))
	for _, c := range categories {
		settings.Categories = append(settings.Categories, entities.Category(c))
	}

	return &settings, nil
}

func categoriesToStrings(categories []entities.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}
