package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// listEnvelope is the paginated collection shape some endpoints emit.
type listEnvelope struct {
	Results json.RawMessage `json:"results"`
}

// normalizeList accepts either a bare JSON array or a {"results": [...]}
// envelope and returns the array bytes, so downstream decoding only ever
// sees one shape.
func normalizeList(data []byte) (json.RawMessage, error) {
	trimmed := bytesTrimLeft(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env listEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, fmt.Errorf("decode list envelope: %w", err)
		}
		if env.Results == nil {
			return nil, fmt.Errorf("list envelope without results")
		}
		return env.Results, nil
	}
	return data, nil
}

func bytesTrimLeft(data []byte) []byte {
	for i, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			return data[i:]
		}
	}
	return nil
}

// List fetches a collection and decodes it into a slice of T. Empty results
// decode to an empty (non-nil) slice, never an error.
func List[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	data, _, err := c.roundTrip(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	raw, err := normalizeList(data)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0)
	if len(raw) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return items, nil
}
