package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/dvillarroel/actifijo/internal/common"
)

// ValidationError carries the backend's field -> messages mapping for a
// rejected create/update, unchanged, so callers can decide presentation.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d fields)", len(e.Fields))
}

// First returns the first field-level message in deterministic (sorted
// field name) order, or "" when the mapping is empty.
func (e *ValidationError) First() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if msgs := e.Fields[name]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

// mapStatusError translates a non-2xx response into a sentinel or a typed
// validation error. The taxonomy mirrors the server contract: 401/403 mean
// the credential is bad, 404 the record is gone, 400 carries a field map.
func mapStatusError(status int, body []byte) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return common.ErrUnauthorized
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status == http.StatusBadRequest:
		var fields map[string][]string
		if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
		return fmt.Errorf("bad request: %s", body)
	case status >= 500:
		return fmt.Errorf("%w: status %d", common.ErrInternal, status)
	default:
		return fmt.Errorf("unexpected status %d: %s", status, body)
	}
}
