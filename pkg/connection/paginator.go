package connection

import (
	"context"
	"errors"
	"fmt"
)

// Source is the ordered, counted, windowed result source a Paginator reads
// from. Count must reflect the same filter scope as Fetch, excluding only
// ordering and pagination clauses. Fetch returns rows ordered by the resolved
// column, skipping the first skip rows and returning at most take rows.
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Fetch(ctx context.Context, skip, take int, orderBy string, direction OrderDirection) ([]T, error)
}

// Options configure a Paginator for one entity type.
type Options[T any] struct {
	// Type tags every minted cursor; cursors minted for a different type are
	// rejected on decode. Must be unique across the deployment's entity set.
	Type string

	// Alias, when set, qualifies the resolved order column ("a.created_at").
	Alias string

	// OrderFieldToKey maps a logical order field to its storage column name,
	// returning false for fields that cannot be ordered by.
	OrderFieldToKey func(field string) (string, bool)

	// ID extracts the stable identifier used for cursor minting and
	// validation.
	ID func(node T) string

	// ValidateCursor re-checks that the row at a cursor's recorded offset
	// still carries the cursor's id. Catches cursors invalidated by writes
	// ahead of the cursor position; writes behind it go undetected.
	ValidateCursor bool
}

// Paginator assembles Relay-style connections from an ordered source. It is
// stateless across calls and safe for concurrent use.
type Paginator[T any] struct {
	opts Options[T]
}

func New[T any](opts Options[T]) (*Paginator[T], error) {
	if opts.Type == "" {
		return nil, errors.New("connection: entity type is required")
	}
	if opts.ID == nil {
		return nil, errors.New("connection: id accessor is required")
	}
	if opts.OrderFieldToKey == nil {
		return nil, errors.New("connection: order field mapping is required")
	}
	return &Paginator[T]{opts: opts}, nil
}

// Paginate runs one forward pagination request against source.
//
// Without a cursor it fetches first+1 rows: the extra trailing row only
// proves a next page exists and is never returned. With a cursor it resumes
// at the cursor's recorded offset and fetches first+2 rows: the extra leading
// row is the one the cursor points at (used for validation), the extra
// trailing row is again the lookahead. Edges are exactly the rows strictly
// between the cursor row (exclusive) and the lookahead row (exclusive, when
// present), each carrying a cursor minted for its absolute offset.
//
// Count and Fetch are two sequential reads with no transaction spanning
// them, so TotalCount and the window may come from slightly different
// snapshots under concurrent writes.
func (p *Paginator[T]) Paginate(ctx context.Context, find FindOptions, source Source[T]) (*Connection[T], error) {
	if find.First <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPageSize, find.First)
	}
	if source == nil {
		return nil, ErrMissingQuerySource
	}

	skip := 0
	window := find.First + 1
	var cursor *Cursor
	if find.After != nil && *find.After != "" {
		var err error
		cursor, err = DecodeCursor(*find.After, p.opts.Type)
		if err != nil {
			return nil, err
		}
		skip = cursor.Index
		window = find.First + 2
	}

	key, ok := p.opts.OrderFieldToKey(find.OrderBy.Field)
	if !ok {
		return nil, &UnsupportedOrderFieldError{Field: find.OrderBy.Field}
	}
	orderBy := key
	if p.opts.Alias != "" {
		orderBy = p.opts.Alias + "." + key
	}

	total, err := source.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count query failed: %w", err)
	}

	rows, err := source.Fetch(ctx, skip, window, orderBy, find.OrderBy.Direction)
	if err != nil {
		return nil, fmt.Errorf("fetch query failed: %w", err)
	}

	if cursor != nil && p.opts.ValidateCursor {
		if len(rows) == 0 || p.opts.ID(rows[0]) != cursor.ID {
			return nil, &StaleCursorError{ID: cursor.ID, Index: cursor.Index}
		}
	}

	start := 0
	if cursor != nil {
		start = 1
	}
	end := len(rows)
	if len(rows) == window {
		// the lookahead row was returned; it belongs to the next page
		end--
	}

	edges := make([]Edge[T], 0, find.First)
	for i := start; i < end; i++ {
		c, err := EncodeCursor(p.opts.ID(rows[i]), p.opts.Type, i+skip)
		if err != nil {
			return nil, fmt.Errorf("failed to encode edge cursor: %w", err)
		}
		edges = append(edges, Edge[T]{Node: rows[i], Cursor: c})
	}

	pageInfo := PageInfo{
		HasNextPage:     len(rows) == window,
		HasPreviousPage: skip != 0,
	}
	if len(edges) > 0 {
		pageInfo.StartCursor = &edges[0].Cursor
		pageInfo.EndCursor = &edges[len(edges)-1].Cursor
	}

	return &Connection[T]{
		TotalCount: total,
		Edges:      edges,
		PageInfo:   pageInfo,
	}, nil
}
