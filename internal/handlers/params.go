package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workhub/workhub-api/internal/httperr"
)

// bindJSON decodes the body into req and writes a 400 on malformed input.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request body")
		return false
	}
	return true
}

// queryID reads an optional id from the query string. A missing value is
// 0; anything other than a positive integer writes a 400, so an explicit
// "0" is never mistaken for an absent filter.
func queryID(c *gin.Context, key string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, true
	}
	return parseID(c, key, raw)
}

func paramID(c *gin.Context, key string) (uint, bool) {
	return parseID(c, key, c.Param(key))
}

func parseID(c *gin.Context, key, raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, key+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
