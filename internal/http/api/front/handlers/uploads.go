package handlers

import (
	"errors"
	"net/http"

	"github.com/dawati-cards/dawati/internal/storage"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// UploadHandler accepts card media uploads and returns their public URLs.
type UploadHandler struct {
	store *storage.Store
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(store *storage.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Image stores a background image upload. The file arrives as the
// multipart field "file".
func (h *UploadHandler) Image(c *gin.Context) {
	if getUserID(c) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	header, errForm := c.FormFile("file")
	if errForm != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	src, errOpen := header.Open()
	if errOpen != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer src.Close()

	url, errSave := h.store.SaveImage(header.Filename, src)
	if errSave != nil {
		log.WithError(errSave).Error("store image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

// Audio stores a background music upload. The declared content type
// must be audio/* and the file at most 10 MiB.
func (h *UploadHandler) Audio(c *gin.Context) {
	if getUserID(c) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	header, errForm := c.FormFile("file")
	if errForm != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	src, errOpen := header.Open()
	if errOpen != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer src.Close()

	url, errSave := h.store.SaveAudio(header.Filename, header.Header.Get("Content-Type"), header.Size, src)
	if errSave != nil {
		switch {
		case errors.Is(errSave, storage.ErrNotAudio):
			c.JSON(http.StatusBadRequest, gin.H{"error": "file must be an audio type"})
		case errors.Is(errSave, storage.ErrAudioTooBig):
			c.JSON(http.StatusBadRequest, gin.H{"error": "audio file exceeds 10MB"})
		default:
			log.WithError(errSave).Error("store audio upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store upload failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url, "file_name": header.Filename})
}
