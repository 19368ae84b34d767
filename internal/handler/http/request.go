package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const idURLParam = "id"

// decodeJSON decodes the request body into v. Any decoding failure,
// including an empty body, is reported as ErrInvalidJSON.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// parseID reads the {id} path parameter as a base-10 int64.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, idURLParam)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidID, raw, err)
	}
	return id, nil
}
