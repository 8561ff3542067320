package queries

import (
	"encoding/base64"
	"fmt"
	"strings"

	"petstay-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 50
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Validation("invalid cursor")

// Booking ids are UUIDv7, so id order is creation order.
func EncodeAfterCursor(id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%s", CursorVersionV1, id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (uuid.UUID, error) {
	if cursor == "" {
		return uuid.Nil, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return uuid.Nil, fmt.Errorf("unsupported cursor version")
	}

	id, err := uuid.Parse(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid UUID: %w", err)
	}
	return id, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func (c *Cursor) afterID() (*uuid.UUID, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	return &id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// paginate trims a limit+1 fetch to limit and derives the next cursor.
func paginate[T any](rows []T, limit int, idOf func(T) uuid.UUID) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	return rows, &Cursor{After: EncodeAfterCursor(idOf(rows[limit-1]))}
}
