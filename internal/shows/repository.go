package shows

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrShowNotFound = errors.New("show not found")

type Repository interface {
	Create(ctx context.Context, show *Show) error
	GetByID(ctx context.Context, id uuid.UUID) (*Show, error)
	List(ctx context.Context, query ListQuery) ([]Show, int64, error)
	ListByPromoter(ctx context.Context, promoterID uuid.UUID, query ListQuery) ([]Show, int64, error)
	// SlotUsage returns live booking counts keyed by show id. Shows without bookings are absent.
	SlotUsage(ctx context.Context, showIDs []uuid.UUID) (map[uuid.UUID]SlotUsage, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, show *Show) error {
	return r.db.WithContext(ctx).Create(show).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Show, error) {
	var show Show
	err := r.db.WithContext(ctx).Preload("Promoter").Where("id = ?", id).First(&show).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}
	return &show, nil
}

func (r *repository) List(ctx context.Context, query ListQuery) ([]Show, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Show{}), query)
}

func (r *repository) ListByPromoter(ctx context.Context, promoterID uuid.UUID, query ListQuery) ([]Show, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&Show{}).Where("promoter_id = ?", promoterID), query)
}

func (r *repository) list(ctx context.Context, db *gorm.DB, query ListQuery) ([]Show, int64, error) {
	var shows []Show
	var totalCount int64

	if query.from != nil {
		db = db.Where("start_time >= ?", *query.from)
	}
	if query.to != nil {
		db = db.Where("start_time < ?", *query.to)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := db.Preload("Promoter").
		Order("start_time ASC").
		Offset(offset).
		Limit(query.Limit).
		Find(&shows).Error

	return shows, totalCount, err
}

type usageRow struct {
	ShowID uuid.UUID
	Status string
	Count  int64
}

func (r *repository) SlotUsage(ctx context.Context, showIDs []uuid.UUID) (map[uuid.UUID]SlotUsage, error) {
	usage := make(map[uuid.UUID]SlotUsage, len(showIDs))
	if len(showIDs) == 0 {
		return usage, nil
	}

	var rows []usageRow
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("show_id, status, COUNT(*) AS count").
		Where("show_id IN ? AND status IN ?", showIDs, []string{"PENDING", "APPROVED"}).
		Group("show_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		u := usage[row.ShowID]
		switch row.Status {
		case "APPROVED":
			u.Approved = row.Count
		case "PENDING":
			u.Pending = row.Count
		}
		usage[row.ShowID] = u
	}
	return usage, nil
}
