package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hr-management-api/internal/constants"
)

// PaginationParams holds the pagination parameters. A zero Limit means the
// caller asked for every record.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// Enabled reports whether the request asked for a page.
func (p PaginationParams) Enabled() bool {
	return p.Limit > 0
}

// GetPaginationParams extracts and validates pagination parameters from the
// request. Without page and limit query parameters the result is unpaginated.
func GetPaginationParams(c *gin.Context) PaginationParams {
	pageQuery, hasPage := c.GetQuery("page")
	limitQuery, hasLimit := c.GetQuery("limit")
	if !hasPage && !hasLimit {
		return PaginationParams{}
	}

	page, _ := strconv.Atoi(pageQuery)
	limit, _ := strconv.Atoi(limitQuery)

	if page < constants.MinPageSize {
		page = constants.MinPageSize
	}
	if limit < constants.MinPageSize || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	offset := (page - 1) * limit

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}
