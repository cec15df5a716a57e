package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name     string
		total    int64
		perPage  int
		lastPage int
	}{
		{"empty", 0, 10, 1},
		{"partial page", 3, 10, 1},
		{"exact page", 10, 10, 1},
		{"one over", 11, 10, 2},
		{"many pages", 95, 20, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage([]string{}, 1, tc.perPage, tc.total)
			assert.Equal(t, tc.lastPage, p.LastPage)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.perPage, p.PerPage)
			assert.Equal(t, 1, p.CurrentPage)
		})
	}
}

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=0", 1},
		{"page=-2", 1},
		{"page=abc", 1},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+tc.query, nil)
		assert.Equal(t, tc.want, ParsePage(c), "query %q", tc.query)
	}
}
