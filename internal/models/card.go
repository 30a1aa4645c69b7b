package models

import (
	"time"

	"gorm.io/datatypes"
)

// Card type identifiers.
const (
	// CardTypeWedding is the wedding invitation template.
	CardTypeWedding = "wedding"
	// CardTypeBirthday is the birthday invitation template.
	CardTypeBirthday = "birthday"
	// CardTypeCustom is reserved for free-form cards.
	CardTypeCustom = "custom"
)

// Card width bounds enforced by the editor.
const (
	DefaultCardWidth = 400
	MinCardWidth     = 300
	MaxCardWidth     = 800
)

// Card represents a persisted invitation card document.
//
// Fields holds the open key/value content of the card (names, dates,
// colors, media URLs) as stored JSON; the card package supplies the
// per-key defaults when a key is absent. Saves replace the whole
// document rather than patching individual keys.
type Card struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	PublicID string `gorm:"type:text;not null;uniqueIndex"` // Share identifier embedded in /card/{id} URLs.

	UserID uint64 `gorm:"not null;index"`    // Owning user ID.
	User   *User  `gorm:"foreignKey:UserID"` // Associated user record.

	Type  string `gorm:"type:text;not null"` // Template type, fixed at creation.
	Title string `gorm:"type:text;not null"` // Display title.

	Fields datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"` // Open field mapping.

	BackgroundImage string `gorm:"type:text"`              // Optional background image URL.
	Width           int    `gorm:"not null;default:400"`   // Declared render width in pixels.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}

// ClampWidth normalizes the declared render width into the editor bounds.
func (c *Card) ClampWidth() {
	if c.Width == 0 {
		c.Width = DefaultCardWidth
		return
	}
	if c.Width < MinCardWidth {
		c.Width = MinCardWidth
	}
	if c.Width > MaxCardWidth {
		c.Width = MaxCardWidth
	}
}

// IsValidCardType reports whether t names a known template type.
func IsValidCardType(t string) bool {
	switch t {
	case CardTypeWedding, CardTypeBirthday, CardTypeCustom:
		return true
	}
	return false
}
