package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"pehlione.com/catalogadmin/internal/shared/apperr"
)

// SessionChecker reports whether a backend token is stored.
type SessionChecker interface {
	LoggedIn(ctx context.Context) bool
}

// RequireSession rejects console calls while no backend token is stored.
// Whether the token is still accepted is left to the backend: a 401 there
// clears it.
func RequireSession(s SessionChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.LoggedIn(c.Request.Context()) {
			c.Next()
			return
		}
		Fail(c, apperr.UnauthorizedErr("Please log in."))
	}
}
