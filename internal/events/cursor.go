package events

import (
	"encoding/base64"
	"gathergrove/internal/domain"
	"strings"
	"time"
)

// Cursor marks a position in the event feed: the sort key of the last item
// on the previous page plus its id as a tiebreak. The encoded form is an
// opaque URL-safe token; clients must not parse it.
type Cursor struct {
	SortKey time.Time
	ID      string
}

func (c Cursor) Encode() string {
	raw := c.SortKey.UTC().Format(time.RFC3339Nano) + "|" + c.ID
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token produced by Encode. Any malformed input is a
// validation error, never a panic.
func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, domain.Invalid("malformed page token")
	}

	key, id, ok := strings.Cut(string(raw), "|")
	if !ok || id == "" {
		return Cursor{}, domain.Invalid("malformed page token")
	}

	at, err := time.Parse(time.RFC3339Nano, key)
	if err != nil {
		return Cursor{}, domain.Invalid("malformed page token")
	}

	return Cursor{SortKey: at, ID: id}, nil
}

// follows reports whether an item with the given sort key and id comes
// strictly after the cursor position.
func (c Cursor) follows(key time.Time, id string) bool {
	if key.After(c.SortKey) {
		return true
	}
	return key.Equal(c.SortKey) && id > c.ID
}
