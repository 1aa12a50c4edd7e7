package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	OK    bool `json:"ok"`
	Items []T  `json:"items"`
}

// OK writes {"ok": true, key: data}.
func OK(c *gin.Context, key string, data any) {
	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		key:  data,
	})
}

// List writes {"ok": true, "items": [...]}; a nil slice is sent as [].
func List[T any](c *gin.Context, items []T) {
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		OK:    true,
		Items: items,
	})
}
