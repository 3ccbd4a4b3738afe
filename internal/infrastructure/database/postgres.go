package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/seabasket/seabasket-api/internal/infrastructure/repositories"
)

// Open creates a new database connection
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}
	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates the schema for every aggregate
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBUser{},
		&repositories.DBProduct{},
		&repositories.DBCart{},
		&repositories.DBCartLine{},
		&repositories.DBOrder{},
		&repositories.DBOrderLine{},
		&repositories.DBReview{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
