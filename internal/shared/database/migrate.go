package database

import (
	"comedyslots/internal/bookings"
	"comedyslots/internal/shows"
	"comedyslots/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&shows.Show{},
		&bookings.Booking{},
	)
}
