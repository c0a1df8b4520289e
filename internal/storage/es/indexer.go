package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/google/uuid"

	"github.com/pagekit-io/connect/internal/domain"
)

// EnsureIndex creates the article index with its sort-field mappings if it
// does not exist yet.
func (s *ArticleSource) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}
	if exists {
		return nil
	}

	mappings := buildMapping()
	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created", "index", s.indexName)
	return nil
}

// Save indexes one article.
func (s *ArticleSource) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	doc := mapToDocument(article)

	if _, err := s.client.Index(s.indexName).Id(doc.ID).Document(doc).Do(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to index document: %w", err)
	}

	return uuid.Parse(doc.ID)
}

// SaveBulk indexes articles through the bulk API.
func (s *ArticleSource) SaveBulk(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         s.indexName,
		Client:        s.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var failed int64
	for _, article := range articles {
		doc := mapToDocument(article)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed++
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed++
				if err != nil {
					slog.Error("bulk index error", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index error", "status", res.Status, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			failed++
			slog.Error("failed to add document to bulk indexer", "error", err, "id", doc.ID)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return fmt.Errorf("failed to close bulk indexer: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("failed to index %d out of %d articles", failed, len(articles))
	}
	return nil
}

// Refresh makes indexed documents visible to search immediately.
func (s *ArticleSource) Refresh(ctx context.Context) error {
	if _, err := s.client.Indices.Refresh().Index(s.indexName).Do(ctx); err != nil {
		return fmt.Errorf("failed to refresh index: %w", err)
	}
	return nil
}
