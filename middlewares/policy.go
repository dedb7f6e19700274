package middlewares

import (
	"net/http"

	"github.com/Sunatl/mushkiloti-gomea/policy"
	"github.com/Sunatl/mushkiloti-gomea/utils"
	"github.com/gin-gonic/gin"
)

// Permit checks the access matrix for the principal OptionalAuth left on the
// context. Anonymous denials read as 401, everything else as 403.
func Permit(res policy.Resource, act policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := utils.CurrentPrincipal(c)
		if !policy.Allow(res, act, p) {
			if !p.Authenticated() {
				c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "authentication required"})
			} else {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			}
			c.Abort()
			return
		}
		c.Next()
	}
}
