// Package web serves the public, unauthenticated pages: the card share
// viewer and the uploaded media files it references.
package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dawati-cards/dawati/internal/models"
	"github.com/dawati-cards/dawati/internal/render"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ShareHandler renders public card pages by share identifier.
type ShareHandler struct {
	db       *gorm.DB
	renderer *render.Renderer
}

// NewShareHandler constructs a ShareHandler.
func NewShareHandler(db *gorm.DB, renderer *render.Renderer) *ShareHandler {
	return &ShareHandler{db: db, renderer: renderer}
}

// RegisterWebRoutes registers the share viewer and upload file routes.
func RegisterWebRoutes(r *gin.Engine, db *gorm.DB, renderer *render.Renderer, uploadsDir string) {
	if r == nil || db == nil {
		return
	}
	shareHandler := NewShareHandler(db, renderer)
	r.GET("/card/:id", shareHandler.View)
	r.Static("/uploads", uploadsDir)
}

// View renders the public page for one shared card. Anyone with the
// link can open it; no session is required.
func (h *ShareHandler) View(c *gin.Context) {
	publicID := strings.TrimSpace(c.Param("id"))
	if !isPlausibleShareID(publicID) {
		h.errorPage(c, http.StatusBadRequest, render.ErrorPageData{
			Icon:    "🔗",
			Heading: "رابط غير صالح",
			Message: "الرابط الذي فتحته غير مكتمل. تأكد من نسخ رابط المشاركة كاملاً.",
		})
		return
	}

	var m models.Card
	errFind := h.db.WithContext(c.Request.Context()).
		Where("public_id = ?", publicID).
		First(&m).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			h.errorPage(c, http.StatusNotFound, render.ErrorPageData{
				Icon:    "💌",
				Heading: "البطاقة غير موجودة",
				Message: "قد تكون البطاقة حذفت أو أن الرابط غير صحيح.",
			})
			return
		}
		log.WithError(errFind).Error("load shared card failed")
		h.errorPage(c, http.StatusInternalServerError, render.ErrorPageData{
			Icon:    "⚠️",
			Heading: "تعذر تحميل البطاقة",
			Message: "حدث خطأ أثناء تحميل البطاقة. حاول مرة أخرى بعد قليل.",
		})
		return
	}

	fragment, errRender := h.renderer.Card(render.Input{
		Type:            m.Type,
		Title:           m.Title,
		Fields:          []byte(m.Fields),
		BackgroundImage: m.BackgroundImage,
		Width:           m.Width,
		Now:             time.Now(),
	})
	if errRender != nil {
		log.WithError(errRender).Error("render shared card failed")
		h.errorPage(c, http.StatusInternalServerError, render.ErrorPageData{
			Icon:    "⚠️",
			Heading: "تعذر تحميل البطاقة",
			Message: "حدث خطأ أثناء عرض البطاقة. حاول مرة أخرى بعد قليل.",
		})
		return
	}

	page, errPage := h.renderer.SharePage(render.SharePageData{
		Title: m.Title,
		Width: m.Width,
		Card:  fragment,
	})
	if errPage != nil {
		log.WithError(errPage).Error("render share page failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (h *ShareHandler) errorPage(c *gin.Context, status int, data render.ErrorPageData) {
	page, errPage := h.renderer.ErrorPage(data)
	if errPage != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(status, "text/html; charset=utf-8", page)
}

// isPlausibleShareID rejects empty identifiers and the literal
// "undefined"/"null" strings a broken client link can carry.
func isPlausibleShareID(id string) bool {
	if id == "" {
		return false
	}
	switch strings.ToLower(id) {
	case "undefined", "null":
		return false
	}
	return true
}
