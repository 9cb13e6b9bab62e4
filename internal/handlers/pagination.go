// File: internal/handlers/pagination.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultChatPageSize    = 20
	defaultMessagePageSize = 50
	maxPageSize            = 100
)

// parsePagination reads ?page and ?page_size with the given default size.
// Out-of-range or non-numeric values are rejected, not clamped.
func parsePagination(r *http.Request, defaultPageSize int) (page, pageSize int, err error) {
	page, err = queryInt(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("page must be at least 1")
	}

	pageSize, err = queryInt(r, "page_size", defaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, fmt.Errorf("page_size must be between 1 and %d", maxPageSize)
	}

	return page, pageSize, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return value, nil
}
