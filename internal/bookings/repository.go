package bookings

import (
	"context"
	"errors"

	"comedyslots/internal/shows"
	"comedyslots/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrDuplicateActiveBooking = errors.New("an active booking already exists for this show and user")
)

// Repository is the booking ledger. Reads and writes that decide admission or a
// status change must run on the Repository handed to WithinTx's callback.
type Repository interface {
	// WithinTx runs fn in one transaction. Any error from fn rolls everything back.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	// LockShow reads a show and holds its row lock until the transaction ends.
	// Admissions and approvals for one show are serialized on this lock.
	LockShow(ctx context.Context, showID uuid.UUID) (*shows.Show, error)
	GetUser(ctx context.Context, id uuid.UUID) (*users.User, error)
	// FindBlockingBooking returns the booking that stops (show, user) from requesting
	// again, or nil when there is none.
	FindBlockingBooking(ctx context.Context, showID, userID uuid.UUID) (*Booking, error)
	CountApproved(ctx context.Context, showID uuid.UUID) (int64, error)
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error

	GetWithRelations(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, query ListQuery) ([]Booking, int64, error)
	ListByPromoter(ctx context.Context, promoterID uuid.UUID, query ListQuery) ([]Booking, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithinTx(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) LockShow(ctx context.Context, showID uuid.UUID) (*shows.Show, error) {
	var show shows.Show
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", showID).
		First(&show).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shows.ErrShowNotFound
		}
		return nil, err
	}

	// the promoter is read without a lock; only the show row guards capacity
	var promoter users.User
	err = r.db.WithContext(ctx).Where("id = ?", show.PromoterID).First(&promoter).Error
	switch {
	case err == nil:
		show.Promoter = &promoter
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	return &show, nil
}

func (r *repository) GetUser(ctx context.Context, id uuid.UUID) (*users.User, error) {
	var user users.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindBlockingBooking(ctx context.Context, showID, userID uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Where("show_id = ? AND user_id = ? AND status <> ?", showID, userID, StatusCancelled).
		Take(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) CountApproved(ctx context.Context, showID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("show_id = ? AND status = ?", showID, StatusApproved).
		Count(&count).Error
	return count, err
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	err := r.db.WithContext(ctx).Create(booking).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateActiveBooking
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return r.getByID(r.db.WithContext(ctx), id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return r.getByID(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *repository) getByID(db *gorm.DB, id uuid.UUID) (*Booking, error) {
	var booking Booking
	if err := db.Where("id = ?", id).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *repository) GetWithRelations(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Show").
		Preload("Show.Promoter").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// ListByUser returns a comedian's bookings, newest first.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, query ListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	db := r.db.WithContext(ctx).Model(&Booking{}).Where("bookings.user_id = ?", userID)
	if query.Status != "" {
		db = db.Where("bookings.status = ?", query.Status)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Show").
		Order("bookings.created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

// ListByPromoter returns bookings on a promoter's shows, soonest show first.
func (r *repository) ListByPromoter(ctx context.Context, promoterID uuid.UUID, query ListQuery) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	db := r.db.WithContext(ctx).
		Model(&Booking{}).
		Joins("JOIN shows ON shows.id = bookings.show_id").
		Where("shows.promoter_id = ?", promoterID)
	if query.Status != "" {
		db = db.Where("bookings.status = ?", query.Status)
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("Show").
		Preload("User").
		Order("shows.start_time ASC").
		Order("bookings.created_at ASC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}
