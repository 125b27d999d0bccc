package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/shared/apperr"
)

// Logger writes one access line per console request. Query strings are left
// out; they only carry paging and filters, which the route already implies.
func Logger(l *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		route := c.FullPath()
		attrs := []slog.Attr{
			slog.String("request_id", GetRequestID(c)),
			slog.String("method", c.Request.Method),
			slog.String("route", route),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		}
		if route == "" {
			attrs = append(attrs, slog.String("path", c.Request.URL.Path))
		}
		if id := c.Param("id"); id != "" {
			key := "id"
			if strings.HasPrefix(route, "/api/drafts/") {
				key = "draft_id"
			}
			attrs = append(attrs, slog.String(key, id))
		}
		if last := c.Errors.Last(); last != nil {
			if ae, ok := apperr.As(last.Err); ok {
				attrs = append(attrs, slog.String("error_kind", string(ae.Kind)))
				if ae.Code != 0 {
					attrs = append(attrs, slog.Int("backend_code", ae.Code))
				}
			}
		}

		l.LogAttrs(c.Request.Context(), level, "console_request", attrs...)
	}
}
