package middleware

import (
	"net/http"

	"hotel-reservation/utils"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID  = "userID"
	ctxIsStaff = "isStaff"
)

// RequireAuth validates the Bearer token and stores the caller's identity on
// the gin context for handlers downstream.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, isStaff, err := utils.ParseAuthHeader(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized: " + err.Error(),
			})
			return
		}
		c.Set(ctxUserID, userID)
		c.Set(ctxIsStaff, isStaff)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by RequireAuth.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}

// CurrentUserIsStaff reports whether the authenticated user is staff.
func CurrentUserIsStaff(c *gin.Context) bool {
	if v, ok := c.Get(ctxIsStaff); ok {
		if b, ok2 := v.(bool); ok2 {
			return b
		}
	}
	return false
}
