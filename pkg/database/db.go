package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a postgres-backed gorm connection. The DSN is assembled by
// the caller from config so there is no package-level singleton to fight in
// tests. TranslateError turns driver unique-violations into
// gorm.ErrDuplicatedKey so services can map them to conflicts.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}
