package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pagekit-io/connect/internal/domain"
)

// Save inserts one article, filling in id and timestamps when absent.
func (s *ArticleSource) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}
	if article.PublishedAt.IsZero() {
		article.PublishedAt = article.CreatedAt
	}

	cmd := `
        INSERT INTO articles (id, title, author, language, created_at, published_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		article.ID,
		article.Title,
		article.Author,
		article.Language,
		article.CreatedAt,
		article.PublishedAt,
	).Scan(&id)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("failed to insert article: %w", err)
	}

	return id, nil
}

// SaveBulk inserts articles with pgx's COPY protocol.
func (s *ArticleSource) SaveBulk(ctx context.Context, articles []domain.Article) error {
	rows := make([][]any, 0, len(articles))
	for _, article := range articles {
		if article.ID == uuid.Nil {
			article.ID = uuid.New()
		}
		if article.CreatedAt.IsZero() {
			article.CreatedAt = time.Now()
		}
		if article.PublishedAt.IsZero() {
			article.PublishedAt = article.CreatedAt
		}
		rows = append(rows, []any{
			article.ID,
			article.Title,
			article.Author,
			article.Language,
			article.CreatedAt,
			article.PublishedAt,
		})
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"articles"},
		[]string{"id", "title", "author", "language", "created_at", "published_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert articles: %w", err)
	}

	return nil
}
