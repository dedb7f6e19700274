package utils

import (
	"github.com/Sunatl/mushkiloti-gomea/policy"
	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CurrentPrincipal packs whatever auth middleware left on the context.
// Zero UserID = anonymous.
func CurrentPrincipal(c *gin.Context) policy.Principal {
	return policy.Principal{
		UserID: CurrentUserID(c),
		Role:   CurrentRole(c),
	}
}
