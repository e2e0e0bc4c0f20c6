package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/hr-management-api/internal/constants"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/collaborators/"+query, nil)
	return c
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected PaginationParams
	}{
		{"no parameters returns everything", "", PaginationParams{}},
		{"page and limit", "?page=3&limit=10", PaginationParams{Page: 3, Limit: 10, Offset: 20}},
		{"limit only", "?limit=5", PaginationParams{Page: 1, Limit: 5, Offset: 0}},
		{"page only uses default limit", "?page=2", PaginationParams{Page: 2, Limit: constants.DefaultPageSize, Offset: constants.DefaultPageSize}},
		{"limit above maximum", "?page=1&limit=1000", PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
		{"negative page", "?page=-4&limit=10", PaginationParams{Page: 1, Limit: 10, Offset: 0}},
		{"garbage values", "?page=abc&limit=xyz", PaginationParams{Page: 1, Limit: constants.DefaultPageSize, Offset: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := GetPaginationParams(paginationContext(tt.query))
			assert.Equal(t, tt.expected, params)
			assert.Equal(t, tt.expected.Limit > 0, params.Enabled())
		})
	}
}
