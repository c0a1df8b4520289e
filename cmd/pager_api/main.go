package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/pagekit-io/connect/internal/apperr"
	"github.com/pagekit-io/connect/internal/domain"
	"github.com/pagekit-io/connect/internal/router"
	"github.com/pagekit-io/connect/internal/server"
	"github.com/pagekit-io/connect/internal/storage/factory"
	"github.com/pagekit-io/connect/internal/storage/memory"
	"github.com/pagekit-io/connect/pkg/connection"
	pkgserver "github.com/pagekit-io/connect/pkg/server"
)

func main() {
	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
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

	// the in-memory backend starts empty; seed it so the demo serves data
	if store, ok := source.Source.(*memory.Store); ok {
		if err := store.SaveBulk(ctx, sampleArticles()); err != nil {
			slog.Error("Failed to seed in-memory store", "error", err)
			os.Exit(1)
		}
		slog.Info("Seeded in-memory article store", "articles", len(sampleArticles()))
	}

	paginator, err := connection.New(connection.Options[domain.Article]{
		Type:            domain.ArticleType,
		Alias:           source.Alias,
		OrderFieldToKey: domain.ArticleOrderFieldToKey,
		ID:              domain.Article.CursorID,
		ValidateCursor:  true,
	})
	if err != nil {
		slog.Error("Failed to create paginator", "error", err)
		os.Exit(1)
	}

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	s := server.NewServer(e, cfg, pkgserver.NewOkHealthChecker())

	router.NewArticleRouter(e, paginator, source).Bind()

	slog.Info("Starting pager API", "port", cfg.Port, "storage", storageCfg.Type)
	if err := s.Start(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
