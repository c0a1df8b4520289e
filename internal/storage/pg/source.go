package pg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pagekit-io/connect/internal/domain"
	"github.com/pagekit-io/connect/pkg/connection"
)

// Alias qualifies order columns in the article queries; paginators reading
// from this source must be configured with it.
const Alias = "a"

// Identifier allowlist for ORDER BY interpolation. The paginator's field
// mapping already restricts columns, but the source re-checks before any
// identifier reaches SQL text.
var orderColumns = map[string]struct{}{
	"title":        {},
	"author":       {},
	"created_at":   {},
	"published_at": {},
}

// ArticleSource reads ordered article windows from Postgres.
type ArticleSource struct {
	db *pgxpool.Pool
}

func NewArticleSource(pool *ConnectionPool) *ArticleSource {
	return &ArticleSource{db: pool.GetConn()}
}

func (s *ArticleSource) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

func (s *ArticleSource) Fetch(ctx context.Context, skip, take int, orderBy string, dir connection.OrderDirection) ([]domain.Article, error) {
	column, err := resolveOrderColumn(orderBy)
	if err != nil {
		return nil, err
	}
	if !dir.Valid() {
		return nil, fmt.Errorf("invalid order direction %q", dir)
	}

	// column and direction are allowlisted above; skip/take stay bound params
	query := fmt.Sprintf(`
		SELECT a.id, a.title, a.author, a.language, a.created_at, a.published_at
		FROM articles a
		ORDER BY %s %s, a.id ASC
		OFFSET $1 LIMIT $2
	`, column, dir)

	slog.Debug("Fetching article window", "skip", skip, "take", take, "order_by", column, "direction", dir)

	rows, err := s.db.Query(ctx, query, skip, take)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article window: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Author, &a.Language, &a.CreatedAt, &a.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func resolveOrderColumn(orderBy string) (string, error) {
	column := orderBy
	if prefix, rest, ok := strings.Cut(orderBy, "."); ok {
		if prefix != Alias {
			return "", fmt.Errorf("unknown table alias %q in order column", prefix)
		}
		column = rest
	}
	if _, ok := orderColumns[column]; !ok {
		return "", fmt.Errorf("cannot order articles by %q", column)
	}
	return Alias + "." + column, nil
}

var _ connection.Source[domain.Article] = (*ArticleSource)(nil)
