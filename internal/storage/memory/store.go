package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pagekit-io/connect/internal/domain"
	"github.com/pagekit-io/connect/pkg/connection"
)

// Store is an in-memory article source backing unit tests and the demo's
// no-database mode.
type Store struct {
	mu       sync.RWMutex
	articles []domain.Article
}

func NewStore() *Store {
	return &Store{}
}

// SaveBulk appends articles, assigning ids where missing.
func (s *Store) SaveBulk(ctx context.Context, articles []domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, article := range articles {
		if article.ID == uuid.Nil {
			article.ID = uuid.New()
		}
		s.articles = append(s.articles, article)
	}

	return nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.articles)), nil
}

// Fetch returns the [skip, skip+take) window of the articles ordered by the
// given column. Qualified column names ("a.created_at") are accepted so the
// store can stand in for a SQL source.
func (s *Store) Fetch(ctx context.Context, skip, take int, orderBy string, dir connection.OrderDirection) ([]domain.Article, error) {
	less, err := lessFunc(orderBy)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	ordered := make([]domain.Article, len(s.articles))
	copy(ordered, s.articles)
	s.mu.RUnlock()

	sort.SliceStable(ordered, func(i, j int) bool {
		if dir == connection.OrderDesc {
			i, j = j, i
		}
		return less(ordered[i], ordered[j])
	})

	if skip >= len(ordered) {
		return nil, nil
	}
	end := skip + take
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[skip:end], nil
}

func lessFunc(orderBy string) (func(a, b domain.Article) bool, error) {
	if i := strings.LastIndexByte(orderBy, '.'); i >= 0 {
		orderBy = orderBy[i+1:]
	}

	// ties fall back to the id so the ordering stays total
	switch orderBy {
	case "title":
		return func(a, b domain.Article) bool {
			if a.Title != b.Title {
				return a.Title < b.Title
			}
			return a.ID.String() < b.ID.String()
		}, nil
	case "author":
		return func(a, b domain.Article) bool {
			if a.Author != b.Author {
				return a.Author < b.Author
			}
			return a.ID.String() < b.ID.String()
		}, nil
	case "created_at":
		return func(a, b domain.Article) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID.String() < b.ID.String()
		}, nil
	case "published_at":
		return func(a, b domain.Article) bool {
			if !a.PublishedAt.Equal(b.PublishedAt) {
				return a.PublishedAt.Before(b.PublishedAt)
			}
			return a.ID.String() < b.ID.String()
		}, nil
	default:
		return nil, fmt.Errorf("cannot order articles by %q", orderBy)
	}
}

var _ connection.Source[domain.Article] = (*Store)(nil)
