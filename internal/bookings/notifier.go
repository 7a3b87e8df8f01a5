package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Audience selects the wording of a booking notification.
type Audience string

const (
	AudienceComedian Audience = "COMEDIAN"
	AudiencePromoter Audience = "PROMOTER"
)

// Notice describes one notification about a committed booking change.
type Notice struct {
	BookingID      uuid.UUID
	ShowID         uuid.UUID
	RecipientEmail string
	RecipientName  string
	ShowTitle      string
	ShowStart      time.Time
	Status         Status
	Audience       Audience
}

// Notifier hands a notice to the delivery pipeline. Errors are logged by the caller
// and never undo the booking change that produced the notice.
type Notifier interface {
	NotifyBooking(ctx context.Context, notice Notice) error
}

// ShowCache is told when slot counts change so cached show listings can be dropped.
type ShowCache interface {
	InvalidateListings(ctx context.Context) error
}
