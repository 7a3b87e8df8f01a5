package shows

import (
	"strings"
	"time"

	"comedyslots/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Show is immutable once published.
type Show struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string      `json:"title" gorm:"not null;size:255"`
	Description *string     `json:"description,omitempty" gorm:"type:text"`
	Venue       string      `json:"venue" gorm:"not null;size:255"`
	StartTime   time.Time   `json:"start_time" gorm:"not null;index"`
	EndTime     time.Time   `json:"end_time" gorm:"not null;check:chk_shows_time_window,start_time < end_time"`
	MaxSlots    int         `json:"max_slots" gorm:"not null;check:chk_shows_max_slots,max_slots >= 1"`
	PromoterID  uuid.UUID   `json:"promoter_id" gorm:"type:uuid;not null;index"`
	Promoter    *users.User `json:"-" gorm:"foreignKey:PromoterID"`
	CreatedAt   time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Show) TableName() string {
	return "shows"
}

func (s *Show) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Validate returns one message per violated field, or nil.
func (s *Show) Validate() map[string]any {
	problems := map[string]any{}
	if strings.TrimSpace(s.Title) == "" {
		problems["title"] = "title is required"
	}
	if strings.TrimSpace(s.Venue) == "" {
		problems["venue"] = "venue is required"
	}
	if s.MaxSlots < 1 {
		problems["max_slots"] = "max_slots must be at least 1"
	}
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		problems["start_time"] = "start_time and end_time are required"
	} else if !s.StartTime.Before(s.EndTime) {
		problems["end_time"] = "end_time must be after start_time"
	}
	if s.PromoterID == uuid.Nil {
		problems["promoter_id"] = "promoter is required"
	}
	if len(problems) == 0 {
		return nil
	}
	return problems
}

// SlotUsage counts the live bookings of one show.
type SlotUsage struct {
	Approved int64
	Pending  int64
}

// Available is the number of slots not yet taken by approved bookings.
func (u SlotUsage) Available(maxSlots int) int {
	available := maxSlots - int(u.Approved)
	if available < 0 {
		return 0
	}
	return available
}
