package connection

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	cursorPrefix    = "C"
	cursorSeparator = "|"

	// prefix, type, id, index
	cursorFieldCount = 4
)

// Cursor addresses one entity at its absolute position within an ordered
// result set. Index is the zero-based offset the entity occupied in the full
// ordering when the cursor was minted; it is only meaningful against a result
// set ordered the same way.
type Cursor struct {
	ID    string
	Type  string
	Index int
}

// EncodeCursor produces the opaque wire form of a cursor: the payload
// "C|<type>|<id>|<index>" encoded as URL-safe base64. Opaque to callers, not
// tamper-proof. Ids or types containing the separator cannot round-trip;
// DecodeCursor rejects such payloads as malformed rather than misparsing them.
func EncodeCursor(id, typ string, index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("cursor index cannot be negative: %d", index)
	}

	payload := strings.Join([]string{cursorPrefix, typ, id, strconv.Itoa(index)}, cursorSeparator)
	return base64.URLEncoding.EncodeToString([]byte(payload)), nil
}

// DecodeCursor reverses EncodeCursor and validates the result against the
// entity type being paginated. It fails with ErrMalformedCursor (wrapped) for
// anything the encoder could not have produced, and with *TypeMismatchError
// when the cursor was minted for a different type.
func DecodeCursor(cursor, expectedType string) (*Cursor, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCursor, err)
	}

	parts := strings.Split(string(raw), cursorSeparator)
	if len(parts) != cursorFieldCount || parts[0] != cursorPrefix {
		return nil, fmt.Errorf("%w: unexpected payload format", ErrMalformedCursor)
	}

	index, err := strconv.Atoi(parts[3])
	if err != nil || index < 0 {
		return nil, fmt.Errorf("%w: invalid index %q", ErrMalformedCursor, parts[3])
	}

	if parts[1] != expectedType {
		return nil, &TypeMismatchError{Expected: expectedType, Actual: parts[1]}
	}

	return &Cursor{
		ID:    parts[2],
		Type:  parts[1],
		Index: index,
	}, nil
}
