package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated username in the
// request context.
const userIDKey = contextKey("userID")

// GetUsernameFromContext retrieves the authenticated username from the Gin
// context. It returns the username and a boolean indicating if it was found.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	val := c.Request.Context().Value(userIDKey)
	if val == nil {
		return "", false
	}
	username, ok := val.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
