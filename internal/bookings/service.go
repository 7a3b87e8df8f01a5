package bookings

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shows"
	"comedyslots/internal/users"
	"comedyslots/pkg/logger"

	"github.com/google/uuid"
)

const defaultNotifyTimeout = 10 * time.Second

type Service interface {
	SetShowCache(showCache ShowCache)

	RequestBooking(ctx context.Context, actor users.Identity, showID uuid.UUID) (*Booking, error)
	SetBookingStatus(ctx context.Context, actor users.Identity, bookingID uuid.UUID, newStatus Status) (*Booking, error)
	CancelBooking(ctx context.Context, actor users.Identity, bookingID uuid.UUID) (*Booking, error)

	GetBooking(ctx context.Context, actor users.Identity, bookingID uuid.UUID) (*Booking, error)
	ListMyBookings(ctx context.Context, actor users.Identity, query ListQuery) (*PaginatedBookings, error)
	ListManagedBookings(ctx context.Context, actor users.Identity, query ListQuery) (*PaginatedBookings, error)

	// Shutdown waits for in-flight notifications or until ctx is done.
	Shutdown(ctx context.Context) error
}

type service struct {
	repo          Repository
	notifier      Notifier
	showCache     ShowCache
	log           *logger.Logger
	notifyTimeout time.Duration

	inflight sync.WaitGroup
}

// NewService builds the booking service. notifier may be nil, in which case no
// notifications are sent.
func NewService(repo Repository, notifier Notifier, log *logger.Logger, notifyTimeout time.Duration) Service {
	if notifyTimeout <= 0 {
		notifyTimeout = defaultNotifyTimeout
	}
	return &service{
		repo:          repo,
		notifier:      notifier,
		log:           log,
		notifyTimeout: notifyTimeout,
	}
}

func (s *service) SetShowCache(showCache ShowCache) {
	s.showCache = showCache
}

// canRequestBookings, isShowOwner and isRequester switch on every role so a new
// role cannot be granted access by omission.

func canRequestBookings(role users.Role) bool {
	switch role {
	case users.RoleComedian:
		return true
	case users.RolePromoter:
		return false
	default:
		return false
	}
}

func isShowOwner(actor users.Identity, show *shows.Show) bool {
	switch actor.Role {
	case users.RolePromoter:
		return show != nil && actor.ID == show.PromoterID
	case users.RoleComedian:
		return false
	default:
		return false
	}
}

func isRequester(actor users.Identity, booking *Booking) bool {
	switch actor.Role {
	case users.RoleComedian:
		return booking != nil && actor.ID == booking.UserID
	case users.RolePromoter:
		return false
	default:
		return false
	}
}

type relations struct {
	showOwner bool
	requester bool
}

func (r relations) any() bool {
	return r.showOwner || r.requester
}

func (r relations) allows(actor Actor) bool {
	switch actor {
	case ActorShowOwner:
		return r.showOwner
	case ActorRequester:
		return r.requester
	default:
		return false
	}
}

func (s *service) RequestBooking(ctx context.Context, actor users.Identity, showID uuid.UUID) (*Booking, error) {
	if showID == uuid.Nil {
		return nil, apperrors.Validation("show_id is required", map[string]any{"show_id": "required"})
	}

	var booking *Booking
	err := s.repo.WithinTx(ctx, func(tx Repository) error {
		show, err := tx.LockShow(ctx, showID)
		if err != nil {
			if errors.Is(err, shows.ErrShowNotFound) {
				return apperrors.ShowNotFound()
			}
			return apperrors.Dependency("failed to lock show", err)
		}

		requester, err := tx.GetUser(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return apperrors.Unauthorized()
			}
			return apperrors.Dependency("failed to load requester", err)
		}
		if !canRequestBookings(requester.Role) {
			return apperrors.Unauthorized()
		}

		existing, err := tx.FindBlockingBooking(ctx, show.ID, requester.ID)
		if err != nil {
			return apperrors.Dependency("failed to check existing bookings", err)
		}
		if existing != nil {
			return apperrors.DuplicateBooking()
		}

		// pending requests are not capped; only approvals consume slots
		approved, err := tx.CountApproved(ctx, show.ID)
		if err != nil {
			return apperrors.Dependency("failed to count approved bookings", err)
		}
		if approved >= int64(show.MaxSlots) {
			return apperrors.ShowFull()
		}

		created := &Booking{
			ShowID: show.ID,
			UserID: requester.ID,
			Status: StatusPending,
		}
		if err := tx.Create(ctx, created); err != nil {
			if errors.Is(err, ErrDuplicateActiveBooking) {
				return apperrors.DuplicateBooking()
			}
			return apperrors.Dependency("failed to create booking", err)
		}

		created.Show = show
		created.User = requester
		booking = created
		return nil
	})
	if err != nil {
		err = asDependency(err, "booking transaction failed")
		s.log.LogBookingRefused(ctx, "request", string(apperrors.KindOf(err)), showID.String(), actor.ID.String())
		return nil, err
	}

	s.log.LogBookingRequested(ctx, booking.ID.String(), booking.ShowID.String(), booking.UserID.String())
	s.invalidateListings(ctx)

	notices := []Notice{comedianNotice(booking)}
	if promoter := booking.Show.Promoter; promoter != nil && promoter.Email != "" {
		notices = append(notices, Notice{
			BookingID:      booking.ID,
			ShowID:         booking.ShowID,
			RecipientEmail: promoter.Email,
			RecipientName:  promoter.Name,
			ShowTitle:      booking.Show.Title,
			ShowStart:      booking.Show.StartTime,
			Status:         booking.Status,
			Audience:       AudiencePromoter,
		})
	}
	s.dispatch(ctx, notices...)

	return booking, nil
}

func (s *service) SetBookingStatus(ctx context.Context, actor users.Identity, bookingID uuid.UUID, newStatus Status) (*Booking, error) {
	if !newStatus.IsValid() {
		return nil, apperrors.Validation("Invalid status", map[string]any{"status": string(newStatus)})
	}

	var booking *Booking
	var previous Status
	err := s.repo.WithinTx(ctx, func(tx Repository) error {
		// Lock order is show then booking, the same order admissions take.
		current, err := tx.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, ErrBookingNotFound) {
				return apperrors.Unauthorized()
			}
			return apperrors.Dependency("failed to load booking", err)
		}

		show, err := tx.LockShow(ctx, current.ShowID)
		if err != nil {
			return apperrors.Dependency("failed to lock show", err)
		}

		locked, err := tx.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			if errors.Is(err, ErrBookingNotFound) {
				return apperrors.Unauthorized()
			}
			return apperrors.Dependency("failed to lock booking", err)
		}

		actorUser, err := tx.GetUser(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return apperrors.Unauthorized()
			}
			return apperrors.Dependency("failed to load actor", err)
		}
		stored := actorUser.Identity()

		rel := relations{
			showOwner: isShowOwner(stored, show),
			requester: isRequester(stored, locked),
		}
		if !rel.any() {
			return apperrors.Unauthorized()
		}

		required, ok := RequiredActor(locked.Status, newStatus)
		if !ok {
			return apperrors.InvalidTransition(string(locked.Status), string(newStatus))
		}
		if !rel.allows(required) {
			return apperrors.Unauthorized()
		}

		if newStatus == StatusApproved {
			approved, err := tx.CountApproved(ctx, show.ID)
			if err != nil {
				return apperrors.Dependency("failed to count approved bookings", err)
			}
			if approved >= int64(show.MaxSlots) {
				return apperrors.ShowFull()
			}
		}

		if err := tx.UpdateStatus(ctx, locked.ID, newStatus); err != nil {
			return apperrors.Dependency("failed to update booking status", err)
		}

		requester, err := tx.GetUser(ctx, locked.UserID)
		if err != nil && !errors.Is(err, ErrUserNotFound) {
			return apperrors.Dependency("failed to load requester", err)
		}

		previous = locked.Status
		locked.Status = newStatus
		locked.UpdatedAt = time.Now().UTC()
		locked.Show = show
		locked.User = requester
		booking = locked
		return nil
	})
	if err != nil {
		err = asDependency(err, "status transition failed")
		s.log.LogBookingRefused(ctx, "set_status", string(apperrors.KindOf(err)), "", actor.ID.String())
		return nil, err
	}

	s.log.LogBookingStatusChanged(ctx, booking.ID.String(), string(previous), string(booking.Status), actor.ID.String())
	s.invalidateListings(ctx)

	if booking.User != nil && booking.User.Email != "" {
		s.dispatch(ctx, comedianNotice(booking))
	}

	return booking, nil
}

func (s *service) CancelBooking(ctx context.Context, actor users.Identity, bookingID uuid.UUID) (*Booking, error) {
	return s.SetBookingStatus(ctx, actor, bookingID, StatusCancelled)
}

// GetBooking shows a booking to its requester or to the promoter who owns the show.
func (s *service) GetBooking(ctx context.Context, actor users.Identity, bookingID uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetWithRelations(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, apperrors.BookingNotFound()
		}
		return nil, apperrors.Dependency("failed to load booking", err)
	}

	if !isRequester(actor, booking) && !isShowOwner(actor, booking.Show) {
		return nil, apperrors.Unauthorized()
	}
	return booking, nil
}

func (s *service) ListMyBookings(ctx context.Context, actor users.Identity, query ListQuery) (*PaginatedBookings, error) {
	query.normalize()

	bookings, total, err := s.repo.ListByUser(ctx, actor.ID, query)
	if err != nil {
		return nil, apperrors.Dependency("failed to list bookings", err)
	}
	return paginate(bookings, total, query), nil
}

func (s *service) ListManagedBookings(ctx context.Context, actor users.Identity, query ListQuery) (*PaginatedBookings, error) {
	switch actor.Role {
	case users.RolePromoter:
	case users.RoleComedian:
		return nil, apperrors.Forbidden("Only promoters can manage bookings")
	default:
		return nil, apperrors.Forbidden("Only promoters can manage bookings")
	}
	query.normalize()

	bookings, total, err := s.repo.ListByPromoter(ctx, actor.ID, query)
	if err != nil {
		return nil, apperrors.Dependency("failed to list bookings", err)
	}
	return paginate(bookings, total, query), nil
}

func (s *service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dispatch sends notices after the transaction has committed. It never blocks the
// caller and never reports failure back to it.
func (s *service) dispatch(ctx context.Context, notices ...Notice) {
	if s.notifier == nil || len(notices) == 0 {
		return
	}

	detached := context.WithoutCancel(ctx)
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		for _, notice := range notices {
			notifyCtx, cancel := context.WithTimeout(detached, s.notifyTimeout)
			err := s.notifier.NotifyBooking(notifyCtx, notice)
			cancel()
			if err != nil {
				s.log.LogNotificationFailed(detached, notice.BookingID.String(), notice.RecipientEmail, err)
			}
		}
	}()
}

func (s *service) invalidateListings(ctx context.Context) {
	if s.showCache == nil {
		return
	}
	if err := s.showCache.InvalidateListings(ctx); err != nil {
		s.log.Warn("failed to invalidate show listings", "error", err)
	}
}

func comedianNotice(booking *Booking) Notice {
	notice := Notice{
		BookingID: booking.ID,
		ShowID:    booking.ShowID,
		Status:    booking.Status,
		Audience:  AudienceComedian,
	}
	if booking.User != nil {
		notice.RecipientEmail = booking.User.Email
		notice.RecipientName = booking.User.Name
	}
	if booking.Show != nil {
		notice.ShowTitle = booking.Show.Title
		notice.ShowStart = booking.Show.StartTime
	}
	return notice
}

// asDependency keeps typed results and wraps anything else, such as a failed commit.
func asDependency(err error, message string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.Dependency(message, err)
}

func paginate(bookings []Booking, total int64, query ListQuery) *PaginatedBookings {
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, bookings[i].ToResponse())
	}
	return &PaginatedBookings{
		Bookings:   responses,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}
}
