// Package pagination implements cursor pagination for list endpoints.
// Tokens are base64-encoded (created_at, id) cursors; callers fetch
// page_size+1 rows and trim after building page info.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
)

type Pagination struct {
	PageToken string `form:"page_token"`
	PageSize  int    `form:"page_size"`
}

type PageInfo struct {
	NextPageToken string `json:"next_page_token,omitempty"`
	HasMore       bool   `json:"has_more"`
}

type Cursor struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}

var ErrInvalidPageToken = errors.New("invalid_page_token")

func EncodeCursor(c Cursor) (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidPageToken
	}
	var c Cursor
	if err := json.Unmarshal(raw, &c); err != nil {
		return Cursor{}, ErrInvalidPageToken
	}
	return c, nil
}

// BuildCursorPageInfo reports whether an extra row beyond pageSize was
// fetched and, if so, encodes the cursor of the last visible item.
func BuildCursorPageInfo[T any](items []T, pageSize int, cursorOf func(T) string) *PageInfo {
	if pageSize <= 0 {
		return nil
	}
	info := &PageInfo{}
	if len(items) > pageSize {
		info.HasMore = true
		info.NextPageToken = cursorOf(items[pageSize-1])
	}
	return info
}
