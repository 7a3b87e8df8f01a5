package shows

import (
	"time"
)

type PromoterInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ShowResponse struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    *string       `json:"description,omitempty"`
	Venue          string        `json:"venue"`
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	MaxSlots       int           `json:"max_slots"`
	ApprovedCount  int64         `json:"approved_count"`
	PendingCount   int64         `json:"pending_count"`
	AvailableSlots int           `json:"available_slots"`
	Promoter       *PromoterInfo `json:"promoter,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

type PaginatedShows struct {
	Shows      []ShowResponse `json:"shows"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

// ToResponse converts a show and its booking counts to the API shape.
func (s *Show) ToResponse(usage SlotUsage) ShowResponse {
	resp := ShowResponse{
		ID:             s.ID.String(),
		Title:          s.Title,
		Description:    s.Description,
		Venue:          s.Venue,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		MaxSlots:       s.MaxSlots,
		ApprovedCount:  usage.Approved,
		PendingCount:   usage.Pending,
		AvailableSlots: usage.Available(s.MaxSlots),
		CreatedAt:      s.CreatedAt,
	}
	if s.Promoter != nil {
		resp.Promoter = &PromoterInfo{
			ID:    s.Promoter.ID.String(),
			Name:  s.Promoter.Name,
			Email: s.Promoter.Email,
		}
	}
	return resp
}
