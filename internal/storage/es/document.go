package es

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"

	"github.com/pagekit-io/connect/internal/domain"
)

// ArticleDocument is the index-side shape of an article. Field names match
// the article table columns so one order-field mapping serves both sources.
type ArticleDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Language    string    `json:"language"`
	CreatedAt   time.Time `json:"created_at"`
	PublishedAt time.Time `json:"published_at"`
}

func mapToDocument(article domain.Article) ArticleDocument {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	return ArticleDocument{
		ID:          article.ID.String(),
		Title:       article.Title,
		Author:      article.Author,
		Language:    article.Language,
		CreatedAt:   article.CreatedAt,
		PublishedAt: article.PublishedAt,
	}
}

func (d ArticleDocument) toArticle() (domain.Article, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Article{}, err
	}
	return domain.Article{
		ID:          id,
		Title:       d.Title,
		Author:      d.Author,
		Language:    d.Language,
		CreatedAt:   d.CreatedAt,
		PublishedAt: d.PublishedAt,
	}, nil
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"title":        textPropertyWithKeyword(),
			"author":       textPropertyWithKeyword(),
			"language":     types.NewKeywordProperty(),
			"created_at":   types.NewDateProperty(),
			"published_at": types.NewDateProperty(),
		},
	}
}

// text fields get a keyword subfield so they stay sortable
func textPropertyWithKeyword() types.Property {
	textProp := types.NewTextProperty()
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
