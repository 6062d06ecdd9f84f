package storage

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/itschibits/sharebnb-api/models"
)

// NewDB opens a postgres connection and runs migrations. The returned
// handle is passed into the API explicitly; there is no package-level
// database singleton.
func NewDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the five tables. Parents first so the
// username and listing foreign keys have something to reference.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Listing{},
		&models.ListingPhoto{},
		&models.Booking{},
		&models.Message{},
	)
}

// IsConflict reports whether err is a unique-constraint violation, which
// handlers translate to a 409 distinct from other failures.
func IsConflict(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
