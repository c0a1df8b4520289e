package connection

import "strings"

// OrderDirection selects the sort direction for the single field a
// pagination call orders by.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

func (d OrderDirection) Valid() bool {
	return d == OrderAsc || d == OrderDesc
}

func (d OrderDirection) String() string {
	return string(d)
}

// ParseOrderDirection accepts the enum value in any casing, defaulting to
// ascending for the empty string.
func ParseOrderDirection(s string) (OrderDirection, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "ASC":
		return OrderAsc, true
	case "DESC":
		return OrderDesc, true
	default:
		return "", false
	}
}

// Order is the single field/direction pair a pagination call sorts by.
// Field is the logical identifier the caller's mapping resolves to a storage
// column; composite ordering is out of scope.
type Order struct {
	Field     string         `json:"field"`
	Direction OrderDirection `json:"direction"`
}

// FindOptions describe one pagination request: page size, optional opaque
// cursor to resume after, and the ordering the result set is scanned in.
type FindOptions struct {
	First   int     `json:"first"`
	After   *string `json:"after,omitempty"`
	OrderBy Order   `json:"orderBy"`
}

// PageInfo carries the returned page's position within the full ordering.
// Start and end cursors are absent when the page has no edges.
type PageInfo struct {
	StartCursor     *string `json:"startCursor,omitempty"`
	EndCursor       *string `json:"endCursor,omitempty"`
	HasNextPage     bool    `json:"hasNextPage"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
}

// Edge pairs one node with the cursor addressing its absolute position.
type Edge[T any] struct {
	Node   T      `json:"node"`
	Cursor string `json:"cursor"`
}

// Connection is the complete response for one pagination call. It is built
// fresh per call and shares no state with other calls.
type Connection[T any] struct {
	TotalCount int64     `json:"totalCount"`
	Edges      []Edge[T] `json:"edges"`
	PageInfo   PageInfo  `json:"pageInfo"`
}
