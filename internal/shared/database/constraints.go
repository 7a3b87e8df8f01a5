package database

import (
	"fmt"

	"gorm.io/gorm"
)

// constraintStatements back the booking invariants that must hold under concurrency.
var constraintStatements = []string{
	// one live booking per comedian per show; a cancelled booking frees the pair
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_bookings_show_user_active
		ON bookings (show_id, user_id)
		WHERE status <> 'CANCELLED'`,

	// approved-count lookups under the show lock
	`CREATE INDEX IF NOT EXISTS idx_bookings_show_status
		ON bookings (show_id, status)`,

	`CREATE INDEX IF NOT EXISTS idx_bookings_user_created
		ON bookings (user_id, created_at DESC)`,

	`CREATE INDEX IF NOT EXISTS idx_shows_promoter_start
		ON shows (promoter_id, start_time)`,
}

// MigrateConstraints adds the indexes AutoMigrate cannot express.
func MigrateConstraints(db *gorm.DB) error {
	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}
