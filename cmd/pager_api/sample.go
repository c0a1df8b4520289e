package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/pagekit-io/connect/internal/domain"
)

func sampleArticles() []domain.Article {
	base := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	titles := []string{
		"Cursor pagination without the footguns",
		"Windowed queries in practice",
		"Total counts under concurrent writes",
		"Opaque tokens and why they stay opaque",
		"Ordering guarantees your API forgot",
		"The lookahead row trick",
		"Stable ids for unstable data",
	}

	articles := make([]domain.Article, len(titles))
	for i, title := range titles {
		created := base.Add(time.Duration(i) * 24 * time.Hour)
		articles[i] = domain.Article{
			ID:          uuid.New(),
			Title:       title,
			Author:      "editorial",
			Language:    "english",
			CreatedAt:   created,
			PublishedAt: created.Add(2 * time.Hour),
		}
	}
	return articles
}
