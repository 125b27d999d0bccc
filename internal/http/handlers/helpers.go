package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/backend"
	"pehlione.com/catalogadmin/internal/http/middleware"
	"pehlione.com/catalogadmin/internal/http/validation"
	"pehlione.com/catalogadmin/internal/shared/apperr"
)

// bindJSON binds and validates the body, failing the request on error.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please check the highlighted fields.",
			map[string]string(validation.FromBindError(err, dst))))
		return false
	}
	return true
}

// pathID reads a positive int64 path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.Fail(c, apperr.InvalidErr("Invalid id.", map[string]string{name: "invalid"}))
		return 0, false
	}
	return id, true
}

func pageQuery(c *gin.Context) backend.PageQuery {
	return backend.PageQuery{
		PageNum:  parseInt(c.Query("pageNum"), 1),
		PageSize: parseInt(c.Query("pageSize"), 10),
	}
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func queryInt64(c *gin.Context, name string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(c.Query(name)), 10, 64)
	return n
}

// optInt is nil when the query parameter is absent or not a number.
func optInt(c *gin.Context, name string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(name)))
	if err != nil {
		return nil
	}
	return &n
}

func optInt64(c *gin.Context, name string) *int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(c.Query(name)), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func optBool(c *gin.Context, name string) *bool {
	b, err := strconv.ParseBool(strings.TrimSpace(c.Query(name)))
	if err != nil {
		return nil
	}
	return &b
}
