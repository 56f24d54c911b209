package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	// UserIDKey is the gin context key holding the caller identity.
	UserIDKey = "user_id"

	// AnonymousUser is used when the caller sends no X-User-ID header.
	// There is no authentication; the header only namespaces caches and
	// saved lists.
	AnonymousUser = "anonymous"
)

// ExtractUser reads the X-User-ID header into the request context.
func ExtractUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = AnonymousUser
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the caller identity set by ExtractUser.
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(UserIDKey); exists {
		if s, ok := userID.(string); ok && s != "" {
			return s
		}
	}
	return AnonymousUser
}
