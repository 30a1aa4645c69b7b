package handlers

import "github.com/gin-gonic/gin"

// getUserID extracts the user ID the auth middleware stored in the gin
// context. The middleware always stores uint64; anything else means no
// authenticated user.
func getUserID(c *gin.Context) uint64 {
	val, exists := c.Get("userID")
	if !exists {
		return 0
	}
	id, ok := val.(uint64)
	if !ok {
		return 0
	}
	return id
}
