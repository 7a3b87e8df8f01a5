package bookings

import (
	"time"
)

type ShowSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Venue     string    `json:"venue"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	MaxSlots  int       `json:"max_slots"`
}

type RequesterInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID        string         `json:"id"`
	ShowID    string         `json:"show_id"`
	UserID    string         `json:"user_id"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Show      *ShowSummary   `json:"show,omitempty"`
	Requester *RequesterInfo `json:"requester,omitempty"`
}

type PaginatedBookings struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

func (b *Booking) ToResponse() BookingResponse {
	resp := BookingResponse{
		ID:        b.ID.String(),
		ShowID:    b.ShowID.String(),
		UserID:    b.UserID.String(),
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Show != nil {
		resp.Show = &ShowSummary{
			ID:        b.Show.ID.String(),
			Title:     b.Show.Title,
			Venue:     b.Show.Venue,
			StartTime: b.Show.StartTime,
			EndTime:   b.Show.EndTime,
			MaxSlots:  b.Show.MaxSlots,
		}
	}
	if b.User != nil {
		resp.Requester = &RequesterInfo{
			ID:    b.User.ID.String(),
			Name:  b.User.Name,
			Email: b.User.Email,
		}
	}
	return resp
}
