package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	// NotificationTypeBookingStatus tells a comedian where their booking stands.
	NotificationTypeBookingStatus NotificationType = "BOOKING_STATUS"
	// NotificationTypeBookingReceived tells a promoter a request is waiting for review.
	NotificationTypeBookingReceived NotificationType = "BOOKING_RECEIVED"
)

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "PENDING"
	NotificationStatusQueued   NotificationStatus = "QUEUED"
	NotificationStatusSending  NotificationStatus = "SENDING"
	NotificationStatusSent     NotificationStatus = "SENT"
	NotificationStatusFailed   NotificationStatus = "FAILED"
	NotificationStatusRetrying NotificationStatus = "RETRYING"
	NotificationStatusExpired  NotificationStatus = "EXPIRED"
)

// EmailNotification is the message carried by every transport.
type EmailNotification struct {
	ID   uuid.UUID        `json:"id"`
	Type NotificationType `json:"type"`

	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`

	// Booking context used to render the email
	BookingID     uuid.UUID `json:"booking_id"`
	ShowID        uuid.UUID `json:"show_id"`
	ShowTitle     string    `json:"show_title"`
	ShowStart     time.Time `json:"show_start"`
	BookingStatus string    `json:"booking_status"`

	Subject string `json:"subject"`

	// Status tracking
	Status     NotificationStatus `json:"status"`
	RetryCount int                `json:"retry_count"`
	MaxRetries int                `json:"max_retries"`
	LastError  *string            `json:"last_error,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	SentAt     *time.Time         `json:"sent_at,omitempty"`
}

type NotificationBuilder struct {
	notification *EmailNotification
}

func NewNotificationBuilder() *NotificationBuilder {
	now := time.Now()
	return &NotificationBuilder{
		notification: &EmailNotification{
			ID:         uuid.New(),
			Status:     NotificationStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
			MaxRetries: 3,
		},
	}
}

func (nb *NotificationBuilder) WithType(notType NotificationType) *NotificationBuilder {
	nb.notification.Type = notType
	return nb
}

func (nb *NotificationBuilder) WithRecipient(email, name string) *NotificationBuilder {
	nb.notification.RecipientEmail = email
	nb.notification.RecipientName = name
	return nb
}

func (nb *NotificationBuilder) WithBooking(bookingID uuid.UUID, status string) *NotificationBuilder {
	nb.notification.BookingID = bookingID
	nb.notification.BookingStatus = status
	return nb
}

func (nb *NotificationBuilder) WithShow(showID uuid.UUID, title string, start time.Time) *NotificationBuilder {
	nb.notification.ShowID = showID
	nb.notification.ShowTitle = title
	nb.notification.ShowStart = start
	return nb
}

func (nb *NotificationBuilder) WithMaxRetries(maxRetries int) *NotificationBuilder {
	nb.notification.MaxRetries = maxRetries
	return nb
}

// Build fills in the subject and returns the notification.
func (nb *NotificationBuilder) Build() *EmailNotification {
	nb.notification.Subject = Subject(nb.notification)
	return nb.notification
}

// GetPartitionKey keeps every message about one booking on the same partition.
func (en *EmailNotification) GetPartitionKey() string {
	return en.BookingID.String()
}

func (en *EmailNotification) ToJSON() ([]byte, error) {
	return json.Marshal(en)
}

// ShouldRetry reports whether another attempt fits in the notification's retry budget.
func (en *EmailNotification) ShouldRetry() bool {
	return en.RetryCount < en.MaxRetries
}

func (en *EmailNotification) MarkQueued() {
	en.Status = NotificationStatusQueued
	en.UpdatedAt = time.Now()
}

func (en *EmailNotification) MarkSent() {
	now := time.Now()
	en.Status = NotificationStatusSent
	en.SentAt = &now
	en.UpdatedAt = now
}

// MarkFailed records err. A notification that used up its retries stays EXPIRED.
func (en *EmailNotification) MarkFailed(err error) {
	if en.Status != NotificationStatusExpired {
		en.Status = NotificationStatusFailed
	}
	en.UpdatedAt = time.Now()

	errorStr := err.Error()
	en.LastError = &errorStr
}

// IncrementRetry records a failed attempt that will be retried.
func (en *EmailNotification) IncrementRetry() {
	en.RetryCount++
	en.Status = NotificationStatusRetrying
	en.UpdatedAt = time.Now()
}

// MarkExpired records that the last attempt failed with no retries left.
func (en *EmailNotification) MarkExpired() {
	en.Status = NotificationStatusExpired
	en.UpdatedAt = time.Now()
}
