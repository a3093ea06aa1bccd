package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const ContextSession = "adminSession"

// AdminAuth verifies the Bearer capability token and stores the session on
// the context. Use cases still check the session themselves.
func AdminAuth(issuer *auth.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Admin session required.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Admin session required.")
			return
		}

		sess, err := issuer.Verify(parts[1])
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Session expired, please log in again.")
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// Session returns the verified admin session, or nil.
func Session(c *gin.Context) *auth.Session {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*auth.Session)
	return sess
}
