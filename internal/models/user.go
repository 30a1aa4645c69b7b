package models

import "time"

// User represents an account that owns invitation cards.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name  string `gorm:"type:text;not null"`             // Display name shown in the dashboard header.
	Email string `gorm:"type:text;not null;uniqueIndex"` // Unique login address.

	Password string `gorm:"type:text;not null"` // Hashed password.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
