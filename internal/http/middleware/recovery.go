package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/metrics"
	"pehlione.com/catalogadmin/internal/shared/apperr"
)

// Recovery turns a handler panic into a 500 through Fail, so it must be
// installed after ErrorHandler. A panic inside a draft transition leaves the
// stored draft untouched because the store only swaps in finished states.
func Recovery(l *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		route := c.FullPath()
		metrics.RecordPanic(route)
		l.LogAttrs(c.Request.Context(), slog.LevelError, "console_panic",
			slog.String("request_id", GetRequestID(c)),
			slog.String("route", route),
			slog.Any("panic", recovered),
			slog.String("stack", string(debug.Stack())),
		)

		Fail(c, apperr.Wrap(fmt.Errorf("panic in %s: %v", route, recovered)))
	})
}
