package db

import (
	"fmt"

	"github.com/dawati-cards/dawati/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all application models.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if err := conn.AutoMigrate(
		&models.User{},
		&models.Card{},
	); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	return nil
}
