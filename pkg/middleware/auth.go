package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole returns a gin middleware guarding role-restricted routes.
// Role claims come from the external identity provider and are forwarded
// by the edge; the service trusts the admin claim for payout and sponsor
// actions.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-Role") != role {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    http.StatusForbidden,
				"message": "Forbidden",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
