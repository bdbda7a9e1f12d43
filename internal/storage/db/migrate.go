package db

import (
	"context"
	"database/sql"
	"fmt"
)

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id   TEXT PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vocabulary_items (
		category_id   TEXT NOT NULL REFERENCES categories (id) ON DELETE CASCADE,
		id            TEXT NOT NULL,
		english       TEXT NOT NULL DEFAULT '',
		welsh         TEXT NOT NULL,
		english_texts TEXT[] NOT NULL DEFAULT '{}',
		welsh_texts   TEXT[] NOT NULL DEFAULT '{}',
		images        TEXT[] NOT NULL DEFAULT '{}',
		english_audio TEXT[] NOT NULL DEFAULT '{}',
		welsh_audio   TEXT[] NOT NULL DEFAULT '{}',
		PRIMARY KEY (category_id, id)
	)`,
}

// Migrate creates the vocabulary tables when they do not exist yet.
func Migrate(ctx context.Context, db Execer) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed migration step %d: %w", i+1, err)
		}
	}
	return nil
}
