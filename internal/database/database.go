package database

import (
	"task-tracker-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens the SQLite database at the given path and runs migrations.
// Using glebarez/sqlite which is a pure Go implementation (no CGO required).
// The returned handle is shared for the process lifetime and passed into
// the handlers explicitly.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate the schema (it will create tables if they don't exist)
	if err := db.AutoMigrate(
		&models.Project{},
		&models.Sprint{},
		&models.Task{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
