package shows

import "time"

type CreateShowRequest struct {
	Title       string    `json:"title" binding:"required,min=1,max=255"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	Venue       string    `json:"venue" binding:"required,min=1,max=255"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	MaxSlots    int       `json:"max_slots" binding:"required,min=1"`
}

// ListQuery filters a show listing. DateFrom and DateTo accept RFC 3339 or YYYY-MM-DD
// and bound the show start time, which is how the calendar view pages through months.
type ListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`

	from *time.Time
	to   *time.Time
}

const (
	defaultPage  = 1
	defaultLimit = 20
)

func (q *ListQuery) normalize() error {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	var err error
	if q.from, err = parseDateBound(q.DateFrom, false); err != nil {
		return err
	}
	if q.to, err = parseDateBound(q.DateTo, true); err != nil {
		return err
	}
	return nil
}

// parseDateBound parses a filter bound. A bare date used as an upper bound covers the whole day.
func parseDateBound(value string, upper bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if upper {
		t = t.Add(24 * time.Hour)
	}
	return &t, nil
}
