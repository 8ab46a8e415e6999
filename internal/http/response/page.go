package response

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// Page is the limit/offset pagination envelope used by every list endpoint.
type Page[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

func NewPage[T any](items []T, total int64, limit, offset int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Limit: limit, Offset: offset}
}

// ParseLimitOffset reads the limit/offset query params, applying the
// default and cap.
func ParseLimitOffset(c *gin.Context) (limit, offset int, err error) {
	const op = "pagination.parse"

	limit = defaultLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, domain.ValidationError(op, "limit must be a positive integer")
		}
		if limit > maxLimit {
			limit = maxLimit
		}
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, domain.ValidationError(op, "offset must be a non-negative integer")
		}
	}
	return limit, offset, nil
}
