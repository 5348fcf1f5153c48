package helpers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query      string
		page, size int
	}{
		{"", 1, 10},
		{"?page=3&size=25", 3, 25},
		{"?page=0&size=0", 1, 10},
		{"?page=abc&size=500", 1, 10},
		{"?page=1000000000000000000&size=10", 1, 10},
		{"?page=99999999999999999999999", 1, 10},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/x"+tt.query, nil)

		page, size := ParsePaginationParams(c)
		assert.Equal(t, tt.page, page, tt.query)
		assert.Equal(t, tt.size, size, tt.query)
	}
}

func TestCalculateSliceIndices(t *testing.T) {
	start, end := CalculateSliceIndices(1, 10, 24)
	assert.Equal(t, 0, start)
	assert.Equal(t, 10, end)

	start, end = CalculateSliceIndices(3, 10, 24)
	assert.Equal(t, 20, start)
	assert.Equal(t, 24, end)

	start, end = CalculateSliceIndices(4, 10, 24)
	assert.Equal(t, 24, start)
	assert.Equal(t, 24, end)

	start, end = CalculateSliceIndices(math.MaxInt, 10, 24)
	assert.Equal(t, 24, start)
	assert.Equal(t, 24, end)

	start, end = CalculateSliceIndices(1_000_000_000_000_000_000, 10, 0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestNewPage(t *testing.T) {
	assert.Equal(t, Page{CurrentPage: 2, TotalPages: 3, PageSize: 10, TotalItems: 24}, NewPage(24, 2, 10))
	assert.Equal(t, Page{CurrentPage: 1, TotalPages: 1, PageSize: 10, TotalItems: 0}, NewPage(0, 1, 10))
	assert.Equal(t, 2, NewPage(20, 1, 10).TotalPages)
}
