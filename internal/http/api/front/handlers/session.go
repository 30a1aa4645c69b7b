package handlers

import (
	"errors"
	"net/http"

	"github.com/dawati-cards/dawati/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionHandler exposes the current signed-in user, mirroring the
// session observer clients subscribe to at startup.
type SessionHandler struct {
	db *gorm.DB
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(db *gorm.DB) *SessionHandler {
	return &SessionHandler{db: db}
}

// Get returns the profile of the authenticated user.
func (h *SessionHandler) Get(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var user models.User
	if errFind := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
