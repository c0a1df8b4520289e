package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"

	"github.com/pagekit-io/connect/internal/domain"
	"github.com/pagekit-io/connect/pkg/connection"
)

// Sortable index fields by article column. Text columns sort on their
// keyword subfield.
var sortFields = map[string]string{
	"title":        "title.keyword",
	"author":       "author.keyword",
	"created_at":   "created_at",
	"published_at": "published_at",
}

// ArticleSource reads ordered article windows from an Elasticsearch index.
type ArticleSource struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewArticleSource(config ClientConfig) (*ArticleSource, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &ArticleSource{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (s *ArticleSource) Count(ctx context.Context) (int64, error) {
	res, err := s.client.Count().Index(s.indexName).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return res.Count, nil
}

func (s *ArticleSource) Fetch(ctx context.Context, skip, take int, orderBy string, dir connection.OrderDirection) ([]domain.Article, error) {
	sortField, err := resolveSortField(orderBy)
	if err != nil {
		return nil, err
	}

	order := sortorder.Asc
	if dir == connection.OrderDesc {
		order = sortorder.Desc
	}

	slog.Debug("Fetching article window from es",
		"index", s.indexName,
		"skip", skip,
		"take", take,
		"sort_field", sortField,
		"direction", dir)

	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(skip).
		Size(take).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					sortField: {Order: &order},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &order},
				},
			},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article window: %w", err)
	}

	articles := make([]domain.Article, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc ArticleDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		article, err := doc.toArticle()
		if err != nil {
			return nil, fmt.Errorf("failed to map document %q: %w", doc.ID, err)
		}
		articles = append(articles, article)
	}

	return articles, nil
}

func resolveSortField(orderBy string) (string, error) {
	// accept qualified column names so the source is interchangeable with SQL
	if i := strings.LastIndexByte(orderBy, '.'); i >= 0 {
		orderBy = orderBy[i+1:]
	}
	field, ok := sortFields[orderBy]
	if !ok {
		return "", fmt.Errorf("cannot sort articles by %q", orderBy)
	}
	return field, nil
}

var _ connection.Source[domain.Article] = (*ArticleSource)(nil)
