// Command seed fills the configured article backend with generated articles
// so pagination can be exercised against real data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/pagekit-io/connect/internal/domain"
	"github.com/pagekit-io/connect/internal/storage/factory"
	"github.com/pagekit-io/connect/pkg/config/env"
)

type bulkStorer interface {
	SaveBulk(ctx context.Context, articles []domain.Article) error
}

func main() {
	count := flag.Int("count", 100, "number of articles to generate")
	flag.Parse()

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/seed/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	source, err := factory.NewArticleSource(ctx, storageCfg)
	if err != nil {
		slog.Error("Failed to create article source", "error", err)
		os.Exit(1)
	}

	storer, ok := source.Source.(bulkStorer)
	if !ok {
		slog.Error("Configured storage type does not support bulk inserts", "storage", storageCfg.Type)
		os.Exit(1)
	}

	if err := storer.SaveBulk(ctx, generateArticles(*count)); err != nil {
		slog.Error("Failed to seed articles", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeded articles", "count", *count, "storage", storageCfg.Type)
}

func generateArticles(n int) []domain.Article {
	base := time.Now().Add(-time.Duration(n) * time.Hour)

	articles := make([]domain.Article, n)
	for i := range articles {
		created := base.Add(time.Duration(i) * time.Hour)
		articles[i] = domain.Article{
			ID:          uuid.New(),
			Title:       fmt.Sprintf("article %04d", i),
			Author:      fmt.Sprintf("author-%d", i%7),
			Language:    "english",
			CreatedAt:   created,
			PublishedAt: created.Add(30 * time.Minute),
		}
	}
	return articles
}
