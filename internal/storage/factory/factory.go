package factory

import (
	"context"
	"fmt"

	"github.com/pagekit-io/connect/internal/domain"
	"github.com/pagekit-io/connect/internal/storage"
	"github.com/pagekit-io/connect/internal/storage/es"
	"github.com/pagekit-io/connect/internal/storage/memory"
	"github.com/pagekit-io/connect/internal/storage/pg"
	"github.com/pagekit-io/connect/pkg/connection"
)

// ArticleSource is what the factory hands back: the source itself plus the
// table alias paginators must qualify order columns with (empty for
// non-SQL backends).
type ArticleSource struct {
	connection.Source[domain.Article]
	Alias string
}

// NewArticleSource builds the configured article source, running schema or
// index bootstrap for the backends that need it.
func NewArticleSource(ctx context.Context, cfg *StorageConfig) (*ArticleSource, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		if err := pg.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		return &ArticleSource{
			Source: pg.NewArticleSource(pool),
			Alias:  pg.Alias,
		}, nil

	case storage.ES:
		source, err := es.NewArticleSource(*cfg.Es)
		if err != nil {
			return nil, err
		}
		if err := source.EnsureIndex(ctx); err != nil {
			return nil, err
		}
		return &ArticleSource{Source: source}, nil

	case storage.InMem:
		return &ArticleSource{Source: memory.NewStore()}, nil

	default:
		return nil, fmt.Errorf("unsupported storage type %q", cfg.Type)
	}
}
