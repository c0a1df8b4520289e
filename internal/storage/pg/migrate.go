package pg

import (
	"context"
	"fmt"
)

const articlesSchema = `
CREATE TABLE IF NOT EXISTS articles (
	id           UUID PRIMARY KEY,
	title        TEXT NOT NULL,
	author       TEXT NOT NULL DEFAULT '',
	language     TEXT NOT NULL DEFAULT 'english',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	published_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles (created_at);
CREATE INDEX IF NOT EXISTS idx_articles_published_at ON articles (published_at);
`

// Migrate creates the articles table and its order-column indexes.
func Migrate(ctx context.Context, pool *ConnectionPool) error {
	if _, err := pool.GetConn().Exec(ctx, articlesSchema); err != nil {
		return fmt.Errorf("failed to apply articles schema: %w", err)
	}
	return nil
}
