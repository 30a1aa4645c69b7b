package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dawati-cards/dawati/internal/card"
	dbpkg "github.com/dawati-cards/dawati/internal/db"
	"github.com/dawati-cards/dawati/internal/models"
	"github.com/dawati-cards/dawati/internal/render"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardHandler handles the card document endpoints.
type CardHandler struct {
	db       *gorm.DB
	renderer *render.Renderer
	baseURL  string
}

// NewCardHandler constructs a CardHandler.
func NewCardHandler(db *gorm.DB, renderer *render.Renderer, baseURL string) *CardHandler {
	return &CardHandler{db: db, renderer: renderer, baseURL: strings.TrimRight(baseURL, "/")}
}

// cardListItem is one card in the dashboard list response.
type cardListItem struct {
	ID              string       `json:"id"`
	Type            string       `json:"type"`
	Title           string       `json:"title"`
	Width           int          `json:"width"`
	BackgroundImage string       `json:"background_image,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	ShareURL        string       `json:"share_url"`
	Preview         card.Summary `json:"preview"`
}

// cardDTO is the full card document response.
type cardDTO struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Title           string          `json:"title"`
	Fields          json.RawMessage `json:"fields"`
	BackgroundImage string          `json:"background_image,omitempty"`
	Width           int             `json:"width"`
	CreatedAt       time.Time       `json:"created_at"`
	ShareURL        string          `json:"share_url"`
}

func (h *CardHandler) shareURL(publicID string) string {
	return h.baseURL + "/card/" + publicID
}

func (h *CardHandler) toDTO(m models.Card) cardDTO {
	return cardDTO{
		ID:              m.PublicID,
		Type:            m.Type,
		Title:           m.Title,
		Fields:          json.RawMessage(m.Fields),
		BackgroundImage: m.BackgroundImage,
		Width:           m.Width,
		CreatedAt:       m.CreatedAt,
		ShareURL:        h.shareURL(m.PublicID),
	}
}

// List returns the current user's cards, newest first. An optional q
// parameter filters by title.
func (h *CardHandler) List(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	query := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		query = query.Where(dbpkg.CaseInsensitiveLikeExpr(h.db, "title"), dbpkg.NormalizeLikePattern(h.db, "%"+q+"%"))
	}

	var cards []models.Card
	if errFind := query.Find(&cards).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query cards failed"})
		return
	}

	items := make([]cardListItem, 0, len(cards))
	for _, m := range cards {
		items = append(items, cardListItem{
			ID:              m.PublicID,
			Type:            m.Type,
			Title:           m.Title,
			Width:           m.Width,
			BackgroundImage: m.BackgroundImage,
			CreatedAt:       m.CreatedAt,
			ShareURL:        h.shareURL(m.PublicID),
			Preview:         card.Summarize(m.Type, json.RawMessage(m.Fields)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"cards": items})
}

// cardWriteRequest is the request body for card creation and updates.
// Saves replace the whole document; fields are not merged per key.
type cardWriteRequest struct {
	Type            string          `json:"type"`
	Title           string          `json:"title"`
	Fields          json.RawMessage `json:"fields"`
	BackgroundImage string          `json:"background_image"`
	Width           int             `json:"width"`
}

// Create stores a new card and assigns its share identifier.
func (h *CardHandler) Create(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body cardWriteRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if !models.IsValidCardType(body.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card type"})
		return
	}

	title := strings.TrimSpace(body.Title)
	if title == "" {
		switch body.Type {
		case models.CardTypeWedding:
			title = "New Wedding Card"
		case models.CardTypeBirthday:
			title = "New Birthday Card"
		default:
			title = "New Card"
		}
	}

	fields := body.Fields
	if len(fields) == 0 || string(fields) == "null" {
		seeded, errSeed := card.DefaultFieldsJSON(body.Type)
		if errSeed != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "seed fields failed"})
			return
		}
		fields = seeded
	} else if !json.Valid(fields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fields must be a json object"})
		return
	}

	m := models.Card{
		PublicID:        uuid.NewString(),
		UserID:          userID,
		Type:            body.Type,
		Title:           title,
		Fields:          []byte(fields),
		BackgroundImage: strings.TrimSpace(body.BackgroundImage),
		Width:           body.Width,
	}
	m.ClampWidth()

	if errCreate := h.db.WithContext(c.Request.Context()).Create(&m).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create card failed"})
		return
	}
	c.JSON(http.StatusCreated, h.toDTO(m))
}

// Get fetches one of the user's cards by share identifier.
func (h *CardHandler) Get(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	m, ok := h.findOwned(c, userID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.toDTO(m))
}

// Update overwrites an existing card document in full. The card type
// is fixed at creation and cannot change.
func (h *CardHandler) Update(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var body cardWriteRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	m, ok := h.findOwned(c, userID)
	if !ok {
		return
	}
	if body.Type != "" && body.Type != m.Type {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card type cannot change"})
		return
	}
	if len(body.Fields) > 0 && !json.Valid(body.Fields) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fields must be a json object"})
		return
	}

	if title := strings.TrimSpace(body.Title); title != "" {
		m.Title = title
	}
	if len(body.Fields) > 0 && string(body.Fields) != "null" {
		m.Fields = []byte(body.Fields)
	}
	m.BackgroundImage = strings.TrimSpace(body.BackgroundImage)
	if body.Width != 0 {
		m.Width = body.Width
	}
	m.ClampWidth()

	if errSave := h.db.WithContext(c.Request.Context()).Save(&m).Error; errSave != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save card failed"})
		return
	}
	c.JSON(http.StatusOK, h.toDTO(m))
}

// Delete removes a card permanently. There is no soft delete; the
// share link dies with the document.
func (h *CardHandler) Delete(c *gin.Context) {
	userID := getUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	m, ok := h.findOwned(c, userID)
	if !ok {
		return
	}
	if errDelete := h.db.WithContext(c.Request.Context()).Delete(&m).Error; errDelete != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete card failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Presets lists the fixed color presets for the editor.
func (h *CardHandler) Presets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"presets": card.Presets})
}

// previewRequest is the request body for editor previews.
type previewRequest struct {
	Type            string          `json:"type"`
	Fields          json.RawMessage `json:"fields"`
	BackgroundImage string          `json:"background_image"`
	Width           int             `json:"width"`
	Editing         bool            `json:"editing"`
}

// Preview renders an unsaved card so the editor canvas can show live
// WYSIWYG output without persisting anything.
func (h *CardHandler) Preview(c *gin.Context) {
	var body previewRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if !models.IsValidCardType(body.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid card type"})
		return
	}

	html, errRender := h.renderer.Card(render.Input{
		Type:            body.Type,
		Fields:          body.Fields,
		BackgroundImage: strings.TrimSpace(body.BackgroundImage),
		Width:           body.Width,
		Editing:         body.Editing,
		Now:             time.Now(),
	})
	if errRender != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"html": string(html)})
}

// findOwned loads the card named by the id path parameter when it
// belongs to userID, writing the error response otherwise.
func (h *CardHandler) findOwned(c *gin.Context, userID uint64) (models.Card, bool) {
	publicID := strings.TrimSpace(c.Param("id"))
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing card id"})
		return models.Card{}, false
	}

	var m models.Card
	errFind := h.db.WithContext(c.Request.Context()).
		Where("public_id = ? AND user_id = ?", publicID, userID).
		First(&m).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return models.Card{}, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query card failed"})
		return models.Card{}, false
	}
	return m, true
}
