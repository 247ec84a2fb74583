package postgres

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS chat_settings (
	chat_id        BIGINT PRIMARY KEY,
	mode           TEXT NOT NULL DEFAULT 'easy',
	categories     TEXT[] NOT NULL,
	question_count INT NOT NULL DEFAULT 10,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate creates the tables the bot needs if they do not exist yet.
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
