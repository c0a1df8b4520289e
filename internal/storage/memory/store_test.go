package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagekit-io/connect/internal/domain"
	"github.com/pagekit-io/connect/pkg/connection"
)

func seedStore(t *testing.T) *Store {
	t.Helper()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore()
	err := store.SaveBulk(context.Background(), []domain.Article{
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Title: "charlie", CreatedAt: base},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Title: "alpha", CreatedAt: base.Add(2 * time.Hour)},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Title: "bravo", CreatedAt: base.Add(time.Hour)},
	})
	require.NoError(t, err)
	return store
}

func TestStore_Count(t *testing.T) {
	store := seedStore(t)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestStore_FetchOrdering(t *testing.T) {
	store := seedStore(t)

	rows, err := store.Fetch(context.Background(), 0, 10, "title", connection.OrderAsc)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "alpha", rows[0].Title)
	assert.Equal(t, "bravo", rows[1].Title)
	assert.Equal(t, "charlie", rows[2].Title)

	rows, err = store.Fetch(context.Background(), 0, 10, "created_at", connection.OrderDesc)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "alpha", rows[0].Title, "newest first")
	assert.Equal(t, "charlie", rows[2].Title)
}

func TestStore_FetchWindow(t *testing.T) {
	store := seedStore(t)

	rows, err := store.Fetch(context.Background(), 1, 1, "title", connection.OrderAsc)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "bravo", rows[0].Title)

	rows, err = store.Fetch(context.Background(), 5, 3, "title", connection.OrderAsc)
	require.NoError(t, err)
	assert.Empty(t, rows, "window past the end yields no rows")
}

func TestStore_FetchQualifiedColumn(t *testing.T) {
	store := seedStore(t)

	rows, err := store.Fetch(context.Background(), 0, 1, "a.created_at", connection.OrderAsc)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "charlie", rows[0].Title)
}

func TestStore_FetchUnknownColumn(t *testing.T) {
	store := seedStore(t)

	_, err := store.Fetch(context.Background(), 0, 1, "password", connection.OrderAsc)
	require.Error(t, err)
}

func TestStore_PaginatesEndToEnd(t *testing.T) {
	store := seedStore(t)

	paginator, err := connection.New(connection.Options[domain.Article]{
		Type:            domain.ArticleType,
		OrderFieldToKey: domain.ArticleOrderFieldToKey,
		ID:              domain.Article.CursorID,
		ValidateCursor:  true,
	})
	require.NoError(t, err)

	first, err := paginator.Paginate(context.Background(), connection.FindOptions{
		First:   2,
		OrderBy: connection.Order{Field: "title", Direction: connection.OrderAsc},
	}, store)
	require.NoError(t, err)
	require.Len(t, first.Edges, 2)
	assert.True(t, first.PageInfo.HasNextPage)

	second, err := paginator.Paginate(context.Background(), connection.FindOptions{
		First:   2,
		After:   first.PageInfo.EndCursor,
		OrderBy: connection.Order{Field: "title", Direction: connection.OrderAsc},
	}, store)
	require.NoError(t, err)
	require.Len(t, second.Edges, 1)
	assert.Equal(t, "charlie", second.Edges[0].Node.Title)
	assert.False(t, second.PageInfo.HasNextPage)
	assert.True(t, second.PageInfo.HasPreviousPage)
}
