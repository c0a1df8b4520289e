package domain

import (
	"time"

	"github.com/google/uuid"
)

// ArticleType tags article cursors; a cursor minted here is rejected by any
// paginator configured for another entity.
const ArticleType = "Article"

type Article struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Language    string    `json:"language,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}

// CursorID is the stable identifier article cursors are minted with.
func (a Article) CursorID() string {
	return a.ID.String()
}

// ArticleOrderFieldToKey maps API-facing order fields to article table
// columns. Anything outside this set cannot be ordered by.
func ArticleOrderFieldToKey(field string) (string, bool) {
	switch field {
	case "title":
		return "title", true
	case "author":
		return "author", true
	case "createdAt":
		return "created_at", true
	case "publishedAt":
		return "published_at", true
	default:
		return "", false
	}
}
