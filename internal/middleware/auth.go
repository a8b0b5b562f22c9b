package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DhavalSuthar-24/flagstats/pkg/responses"
	"github.com/DhavalSuthar-24/flagstats/pkg/token"
)

const (
	ScorekeeperKey = "scorekeeper"
)

// ScorekeeperAuth guards write routes with a bearer token signed by secret.
// An empty secret disables the check.
func ScorekeeperAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			responses.ErrorResponse(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			responses.ErrorResponse(c, http.StatusUnauthorized, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], secret)
		if err != nil {
			responses.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token: "+err.Error())
			return
		}
		if !claims.CanWrite() {
			responses.ErrorResponse(c, http.StatusForbidden, "Role "+claims.Role+" cannot record match data")
			return
		}

		c.Set(ScorekeeperKey, claims.Subject)
		c.Next()
	}
}

// ScorekeeperFromContext returns the token subject set by ScorekeeperAuth.
func ScorekeeperFromContext(c *gin.Context) string {
	return c.GetString(ScorekeeperKey)
}
