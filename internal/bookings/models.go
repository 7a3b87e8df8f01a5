package bookings

import (
	"time"

	"comedyslots/internal/shows"
	"comedyslots/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is one comedian's request for a slot on one show.
// At most one non-cancelled booking exists per (show, user); see MigrateConstraints.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ShowID    uuid.UUID `gorm:"type:uuid;index;not null" json:"show_id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Status    Status    `gorm:"type:varchar(20);not null;default:'PENDING';check:chk_bookings_status,status IN ('PENDING','APPROVED','REJECTED','CANCELLED')" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Show *shows.Show `gorm:"foreignKey:ShowID" json:"-"`
	User *users.User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
