package notifications

import (
	"context"

	"comedyslots/internal/bookings"
)

// NotifyBooking implements bookings.Notifier.
func (s *Service) NotifyBooking(ctx context.Context, notice bookings.Notice) error {
	return s.SendNotification(ctx, FromNotice(notice, s.config.MaxRetries))
}

// FromNotice converts a committed booking change into an email notification.
func FromNotice(notice bookings.Notice, maxRetries int) *EmailNotification {
	notType := NotificationTypeBookingStatus
	if notice.Audience == bookings.AudiencePromoter {
		notType = NotificationTypeBookingReceived
	}

	return NewNotificationBuilder().
		WithType(notType).
		WithRecipient(notice.RecipientEmail, notice.RecipientName).
		WithBooking(notice.BookingID, string(notice.Status)).
		WithShow(notice.ShowID, notice.ShowTitle, notice.ShowStart).
		WithMaxRetries(maxRetries).
		Build()
}

var _ bookings.Notifier = (*Service)(nil)
