package connection

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string
	Name string
}

// stubSource serves windows out of a fixed ordered slice and records the
// arguments of the last Fetch call.
type stubSource struct {
	rows []row

	lastSkip    int
	lastTake    int
	lastOrderBy string
	lastDir     OrderDirection
	fetchCalls  int
}

func (s *stubSource) Count(ctx context.Context) (int64, error) {
	return int64(len(s.rows)), nil
}

func (s *stubSource) Fetch(ctx context.Context, skip, take int, orderBy string, dir OrderDirection) ([]row, error) {
	s.fetchCalls++
	s.lastSkip, s.lastTake, s.lastOrderBy, s.lastDir = skip, take, orderBy, dir

	if skip >= len(s.rows) {
		return nil, nil
	}
	end := skip + take
	if end > len(s.rows) {
		end = len(s.rows)
	}
	return s.rows[skip:end], nil
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("a-%d", i), Name: fmt.Sprintf("article %d", i)}
	}
	return rows
}

func newTestPaginator(t *testing.T, validate bool) *Paginator[row] {
	t.Helper()

	p, err := New(Options[row]{
		Type:  "Article",
		Alias: "a",
		OrderFieldToKey: func(field string) (string, bool) {
			if field == "createdAt" {
				return "created_at", true
			}
			return "", false
		},
		ID:             func(r row) string { return r.ID },
		ValidateCursor: validate,
	})
	require.NoError(t, err)
	return p
}

func defaultFind(first int, after *string) FindOptions {
	return FindOptions{
		First:   first,
		After:   after,
		OrderBy: Order{Field: "createdAt", Direction: OrderAsc},
	}
}

func TestPaginate_FirstPage(t *testing.T) {
	source := &stubSource{rows: makeRows(5)}
	p := newTestPaginator(t, false)

	conn, err := p.Paginate(context.Background(), defaultFind(2, nil), source)
	require.NoError(t, err)

	assert.Equal(t, 0, source.lastSkip)
	assert.Equal(t, 3, source.lastTake, "first page fetches first+1 rows")
	assert.Equal(t, "a.created_at", source.lastOrderBy)
	assert.Equal(t, OrderAsc, source.lastDir)

	assert.Equal(t, int64(5), conn.TotalCount)
	require.Len(t, conn.Edges, 2)
	assert.Equal(t, "a-0", conn.Edges[0].Node.ID)
	assert.Equal(t, "a-1", conn.Edges[1].Node.ID)
	assert.True(t, conn.PageInfo.HasNextPage)
	assert.False(t, conn.PageInfo.HasPreviousPage)
	require.NotNil(t, conn.PageInfo.StartCursor)
	assert.Equal(t, conn.Edges[0].Cursor, *conn.PageInfo.StartCursor)
	require.NotNil(t, conn.PageInfo.EndCursor)
	assert.Equal(t, conn.Edges[1].Cursor, *conn.PageInfo.EndCursor)
}

func TestPaginate_LastPageWithoutCursor(t *testing.T) {
	source := &stubSource{rows: makeRows(5)}
	p := newTestPaginator(t, false)

	conn, err := p.Paginate(context.Background(), defaultFind(10, nil), source)
	require.NoError(t, err)

	assert.Equal(t, 11, source.lastTake)
	require.Len(t, conn.Edges, 5)
	assert.False(t, conn.PageInfo.HasNextPage)
	assert.False(t, conn.PageInfo.HasPreviousPage)
}

func TestPaginate_MiddlePage(t *testing.T) {
	source := &stubSource{rows: makeRows(10)}
	p := newTestPaginator(t, true)

	// cursor at absolute index 2
	after, err := EncodeCursor("a-2", "Article", 2)
	require.NoError(t, err)

	conn, err := p.Paginate(context.Background(), defaultFind(2, &after), source)
	require.NoError(t, err)

	assert.Equal(t, 2, source.lastSkip)
	assert.Equal(t, 4, source.lastTake, "cursor page fetches first+2 rows")

	// the cursor row and the lookahead row are both dropped
	require.Len(t, conn.Edges, 2)
	assert.Equal(t, "a-3", conn.Edges[0].Node.ID)
	assert.Equal(t, "a-4", conn.Edges[1].Node.ID)

	first, err := DecodeCursor(conn.Edges[0].Cursor, "Article")
	require.NoError(t, err)
	assert.Equal(t, 3, first.Index, "edge cursors carry absolute offsets")
	second, err := DecodeCursor(conn.Edges[1].Cursor, "Article")
	require.NoError(t, err)
	assert.Equal(t, 4, second.Index)

	assert.True(t, conn.PageInfo.HasNextPage)
	assert.True(t, conn.PageInfo.HasPreviousPage)
}

func TestPaginate_LastPageWithCursor(t *testing.T) {
	source := &stubSource{rows: makeRows(6)}
	p := newTestPaginator(t, true)

	after, err := EncodeCursor("a-3", "Article", 3)
	require.NoError(t, err)

	conn, err := p.Paginate(context.Background(), defaultFind(5, &after), source)
	require.NoError(t, err)

	// window of 7 from offset 3 only yields 3 rows; no lookahead to drop
	require.Len(t, conn.Edges, 2)
	assert.Equal(t, "a-4", conn.Edges[0].Node.ID)
	assert.Equal(t, "a-5", conn.Edges[1].Node.ID)
	assert.False(t, conn.PageInfo.HasNextPage)
	assert.True(t, conn.PageInfo.HasPreviousPage)
}

func TestPaginate_EmptySource(t *testing.T) {
	source := &stubSource{}
	p := newTestPaginator(t, false)

	conn, err := p.Paginate(context.Background(), defaultFind(10, nil), source)
	require.NoError(t, err)

	assert.Equal(t, int64(0), conn.TotalCount)
	assert.Empty(t, conn.Edges)
	assert.False(t, conn.PageInfo.HasNextPage)
	assert.False(t, conn.PageInfo.HasPreviousPage)
	assert.Nil(t, conn.PageInfo.StartCursor)
	assert.Nil(t, conn.PageInfo.EndCursor)
}

func TestPaginate_StaleCursor(t *testing.T) {
	source := &stubSource{rows: makeRows(10)}
	p := newTestPaginator(t, true)

	// minted for the row that used to sit at offset 2
	after, err := EncodeCursor("a-99", "Article", 2)
	require.NoError(t, err)

	_, err = p.Paginate(context.Background(), defaultFind(2, &after), source)
	require.Error(t, err)

	var stale *StaleCursorError
	require.ErrorAs(t, err, &stale)
	assert.Equal(t, "a-99", stale.ID)
	assert.Equal(t, 2, stale.Index)
}

func TestPaginate_StaleCursorPastEnd(t *testing.T) {
	source := &stubSource{rows: makeRows(3)}
	p := newTestPaginator(t, true)

	after, err := EncodeCursor("a-7", "Article", 7)
	require.NoError(t, err)

	_, err = p.Paginate(context.Background(), defaultFind(2, &after), source)

	var stale *StaleCursorError
	require.ErrorAs(t, err, &stale, "cursor past the end must fail, not return an empty page")
}

func TestPaginate_StaleCursorIgnoredWhenValidationDisabled(t *testing.T) {
	source := &stubSource{rows: makeRows(10)}
	p := newTestPaginator(t, false)

	after, err := EncodeCursor("a-99", "Article", 2)
	require.NoError(t, err)

	conn, err := p.Paginate(context.Background(), defaultFind(2, &after), source)
	require.NoError(t, err)
	require.Len(t, conn.Edges, 2)
	assert.Equal(t, "a-3", conn.Edges[0].Node.ID)
}

func TestPaginate_CursorTypeMismatch(t *testing.T) {
	source := &stubSource{rows: makeRows(5)}
	p := newTestPaginator(t, false)

	after, err := EncodeCursor("u-1", "User", 1)
	require.NoError(t, err)

	_, err = p.Paginate(context.Background(), defaultFind(2, &after), source)

	var mismatch *TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Article", mismatch.Expected)
	assert.Equal(t, "User", mismatch.Actual)
	assert.Zero(t, source.fetchCalls, "no query should run for a rejected cursor")
}

func TestPaginate_MalformedCursor(t *testing.T) {
	source := &stubSource{rows: makeRows(5)}
	p := newTestPaginator(t, false)

	after := "not-a-cursor"
	_, err := p.Paginate(context.Background(), defaultFind(2, &after), source)
	require.ErrorIs(t, err, ErrMalformedCursor)
	assert.Zero(t, source.fetchCalls)
}

func TestPaginate_InvalidPageSize(t *testing.T) {
	source := &stubSource{rows: makeRows(5)}
	p := newTestPaginator(t, false)

	for _, first := range []int{0, -3} {
		_, err := p.Paginate(context.Background(), defaultFind(first, nil), source)
		require.ErrorIs(t, err, ErrInvalidPageSize)
	}
}

func TestPaginate_MissingSource(t *testing.T) {
	p := newTestPaginator(t, false)

	_, err := p.Paginate(context.Background(), defaultFind(2, nil), nil)
	require.ErrorIs(t, err, ErrMissingQuerySource)
}

func TestPaginate_UnsupportedOrderField(t *testing.T) {
	source := &stubSource{rows: makeRows(5)}
	p := newTestPaginator(t, false)

	find := FindOptions{
		First:   2,
		OrderBy: Order{Field: "password", Direction: OrderAsc},
	}
	_, err := p.Paginate(context.Background(), find, source)

	var unsupported *UnsupportedOrderFieldError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "password", unsupported.Field)
	assert.Zero(t, source.fetchCalls)
}

func TestPaginate_NoAlias(t *testing.T) {
	source := &stubSource{rows: makeRows(3)}
	p, err := New(Options[row]{
		Type:            "Article",
		OrderFieldToKey: func(string) (string, bool) { return "created_at", true },
		ID:              func(r row) string { return r.ID },
	})
	require.NoError(t, err)

	_, err = p.Paginate(context.Background(), defaultFind(2, nil), source)
	require.NoError(t, err)
	assert.Equal(t, "created_at", source.lastOrderBy)
}

func TestPaginate_SourceErrorsPropagate(t *testing.T) {
	p := newTestPaginator(t, false)
	boom := errors.New("connection refused")

	_, err := p.Paginate(context.Background(), defaultFind(2, nil), failingSource{err: boom})
	require.ErrorIs(t, err, boom)
}

type failingSource struct {
	err error
}

func (s failingSource) Count(ctx context.Context) (int64, error) {
	return 0, s.err
}

func (s failingSource) Fetch(ctx context.Context, skip, take int, orderBy string, dir OrderDirection) ([]row, error) {
	return nil, s.err
}
