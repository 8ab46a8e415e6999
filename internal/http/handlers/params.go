package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ovenly/bakeshop-backend/internal/domain"
)

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ValidationError("params.id", "Invalid id: "+raw)
	}
	return uint(id), nil
}

// optionalBoolQuery treats an unparseable value as false rather than
// erroring, matching loose query-string semantics.
func optionalBoolQuery(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		v = false
	}
	return &v
}

func optionalUintQuery(c *gin.Context, name string) (*uint, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, domain.ValidationError("params.query", name+" must be a positive integer")
	}
	out := uint(v)
	return &out, nil
}

func optionalStringQuery(c *gin.Context, name string) *string {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	return &raw
}

// descendingQuery follows presence semantics: any value, even empty,
// means descending.
func descendingQuery(c *gin.Context) bool {
	_, ok := c.GetQuery("descending")
	return ok
}
