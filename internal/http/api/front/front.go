package front

import (
	"net/http"
	"strings"

	"github.com/dawati-cards/dawati/internal/config"
	"github.com/dawati-cards/dawati/internal/http/api/front/handlers"
	"github.com/dawati-cards/dawati/internal/models"
	"github.com/dawati-cards/dawati/internal/render"
	"github.com/dawati-cards/dawati/internal/security"
	"github.com/dawati-cards/dawati/internal/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterFrontRoutes registers public and authenticated front-end routes.
func RegisterFrontRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, store *storage.Store, renderer *render.Renderer) {
	if r == nil || db == nil {
		return
	}

	front := r.Group("/v0/front")

	authHandler := handlers.NewAuthHandler(db, cfg.JWT)
	front.POST("/register", authHandler.Register)
	front.POST("/login", authHandler.Login)

	authed := front.Group("")
	authed.Use(userAuthMiddleware(db, cfg.JWT))

	sessionHandler := handlers.NewSessionHandler(db)
	authed.GET("/session", sessionHandler.Get)

	cardHandler := handlers.NewCardHandler(db, renderer, cfg.Server.BaseURL)
	authed.GET("/cards", cardHandler.List)
	authed.POST("/cards", cardHandler.Create)
	authed.GET("/cards/:id", cardHandler.Get)
	authed.PUT("/cards/:id", cardHandler.Update)
	authed.DELETE("/cards/:id", cardHandler.Delete)
	authed.GET("/presets", cardHandler.Presets)
	authed.POST("/preview", cardHandler.Preview)

	uploadHandler := handlers.NewUploadHandler(store)
	authed.POST("/uploads/image", uploadHandler.Image)
	authed.POST("/uploads/audio", uploadHandler.Audio)
}

// userAuthMiddleware validates user JWTs and loads the user into context.
func userAuthMiddleware(db *gorm.DB, jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		token = strings.TrimSpace(token)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "empty token"})
			return
		}

		claims, errJWT := security.ParseToken(jwtCfg.Secret, token)
		if errJWT != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var user models.User
		if errFind := db.WithContext(c.Request.Context()).First(&user, claims.UserID).Error; errFind != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
