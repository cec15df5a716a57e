// File: lojinha/utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Page is the pagination envelope returned by list endpoints.
type Page struct {
	CurrentPage int         `json:"current_page"`
	Data        interface{} `json:"data"`
	PerPage     int         `json:"per_page"`
	Total       int64       `json:"total"`
	LastPage    int         `json:"last_page"`
}

// NewPage builds the envelope for one page of results.
func NewPage(data interface{}, page, perPage int, total int64) Page {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return Page{
		CurrentPage: page,
		Data:        data,
		PerPage:     perPage,
		Total:       total,
		LastPage:    lastPage,
	}
}

// ParsePage reads the "page" query parameter, defaulting to 1.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}
