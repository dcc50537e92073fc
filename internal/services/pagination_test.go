package services_test

import (
	"testing"

	"comenta-app/internal/services"

	"github.com/stretchr/testify/assert"
)

// TestPaginationMeta covers the derived pagination fields, including the
// partial last page and pages past the end.
func TestPaginationMeta(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int64
		page       int
		pageSize   int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"first of three pages", 25, 1, 10, 3, true, false},
		{"middle page", 25, 2, 10, 3, true, true},
		{"partial last page", 25, 3, 10, 3, false, true},
		{"page beyond the end", 25, 5, 10, 3, false, true},
		{"exact multiple", 20, 2, 10, 2, false, true},
		{"single page", 7, 1, 10, 1, false, false},
		{"empty collection", 0, 1, 10, 0, false, false},
		{"page size one", 3, 2, 1, 3, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totalPages, hasNext, hasPrev := services.PaginationMeta(tt.totalCount, tt.page, tt.pageSize)
			assert.Equal(t, tt.totalPages, totalPages)
			assert.Equal(t, tt.hasNext, hasNext, "hasNextPage")
			assert.Equal(t, tt.hasPrev, hasPrev, "hasPreviousPage")
		})
	}
}

// TestSearchParamsNormalize verifies the pagination defaults and clamps.
func TestSearchParamsNormalize(t *testing.T) {
	params := services.SearchParams{}
	params.Normalize()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)

	params = services.SearchParams{Page: -3, PageSize: 0}
	params.Normalize()
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.PageSize)

	params = services.SearchParams{Page: 4, PageSize: 500}
	params.Normalize()
	assert.Equal(t, 4, params.Page)
	assert.Equal(t, 100, params.PageSize, "page size is clamped to 100")

	params = services.SearchParams{Page: 2, PageSize: 25}
	params.Normalize()
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 25, params.PageSize, "valid values pass through unchanged")
}
