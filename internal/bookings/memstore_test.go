package bookings

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"comedyslots/internal/shows"
	"comedyslots/internal/users"

	"github.com/google/uuid"
)

// memStore is an in-memory ledger. A transaction holds the store mutex for its whole
// duration, which gives the same per-show serialization the row lock gives in Postgres
// (stronger, since it serializes all shows). A failed transaction restores a snapshot.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]users.User
	shows    map[uuid.UUID]shows.Show
	bookings map[uuid.UUID]Booking

	// failures injected by tests, keyed by method name
	fail map[string]error
	// afterCreate runs inside the transaction right after a booking is inserted
	afterCreate func() error
	now         func() time.Time
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]users.User),
		shows:    make(map[uuid.UUID]shows.Show),
		bookings: make(map[uuid.UUID]Booking),
		fail:     make(map[string]error),
		now:      time.Now,
	}
}

func (s *memStore) addUser(name string, role users.Role) users.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := users.User{ID: uuid.New(), Name: name, Email: name + "@example.com", Role: role}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addShow(promoterID uuid.UUID, title string, maxSlots int) shows.Show {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Date(2030, 1, 15, 20, 0, 0, 0, time.UTC)
	sh := shows.Show{
		ID:         uuid.New(),
		Title:      title,
		Venue:      "The Laugh Factory",
		StartTime:  start,
		EndTime:    start.Add(2 * time.Hour),
		MaxSlots:   maxSlots,
		PromoterID: promoterID,
	}
	s.shows[sh.ID] = sh
	return sh
}

func (s *memStore) deleteUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

func (s *memStore) setFailure(method string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[method] = err
}

func (s *memStore) booking(id uuid.UUID) (Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	return b, ok
}

func (s *memStore) count(showID uuid.UUID, status Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.ShowID == showID && b.Status == status {
			n++
		}
	}
	return n
}

func (s *memStore) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memStore) WithinTx(ctx context.Context, fn func(tx Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[uuid.UUID]Booking, len(s.bookings))
	for id, b := range s.bookings {
		snapshot[id] = b
	}

	if err := fn(&memTx{s: s}); err != nil {
		s.bookings = snapshot
		return err
	}
	if err := s.fail["Commit"]; err != nil {
		s.bookings = snapshot
		return err
	}
	return nil
}

func (s *memStore) LockShow(ctx context.Context, showID uuid.UUID) (*shows.Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).LockShow(ctx, showID)
}

func (s *memStore) GetUser(ctx context.Context, id uuid.UUID) (*users.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).GetUser(ctx, id)
}

func (s *memStore) FindBlockingBooking(ctx context.Context, showID, userID uuid.UUID) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).FindBlockingBooking(ctx, showID, userID)
}

func (s *memStore) CountApproved(ctx context.Context, showID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).CountApproved(ctx, showID)
}

func (s *memStore) Create(ctx context.Context, booking *Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).Create(ctx, booking)
}

func (s *memStore) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).GetByID(ctx, id)
}

func (s *memStore) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return s.GetByID(ctx, id)
}

func (s *memStore) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).UpdateStatus(ctx, id, status)
}

func (s *memStore) GetWithRelations(ctx context.Context, id uuid.UUID) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).GetWithRelations(ctx, id)
}

func (s *memStore) ListByUser(ctx context.Context, userID uuid.UUID, query ListQuery) ([]Booking, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).ListByUser(ctx, userID, query)
}

func (s *memStore) ListByPromoter(ctx context.Context, promoterID uuid.UUID, query ListQuery) ([]Booking, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).ListByPromoter(ctx, promoterID, query)
}

// memTx operates on the store with the mutex already held.
type memTx struct {
	s *memStore
}

func (t *memTx) WithinTx(ctx context.Context, fn func(tx Repository) error) error {
	return fn(t)
}

func (t *memTx) LockShow(ctx context.Context, showID uuid.UUID) (*shows.Show, error) {
	if err := t.s.fail["LockShow"]; err != nil {
		return nil, err
	}
	sh, ok := t.s.shows[showID]
	if !ok {
		return nil, shows.ErrShowNotFound
	}
	if p, ok := t.s.users[sh.PromoterID]; ok {
		sh.Promoter = &p
	}
	return &sh, nil
}

func (t *memTx) GetUser(ctx context.Context, id uuid.UUID) (*users.User, error) {
	u, ok := t.s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (t *memTx) FindBlockingBooking(ctx context.Context, showID, userID uuid.UUID) (*Booking, error) {
	for _, b := range t.s.bookings {
		if b.ShowID == showID && b.UserID == userID && b.Status.BlocksNewRequest() {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (t *memTx) CountApproved(ctx context.Context, showID uuid.UUID) (int64, error) {
	if err := t.s.fail["CountApproved"]; err != nil {
		return 0, err
	}
	var n int64
	for _, b := range t.s.bookings {
		if b.ShowID == showID && b.Status == StatusApproved {
			n++
		}
	}
	return n, nil
}

func (t *memTx) Create(ctx context.Context, booking *Booking) error {
	if err := t.s.fail["Create"]; err != nil {
		return err
	}
	// the partial unique index
	for _, b := range t.s.bookings {
		if b.ShowID == booking.ShowID && b.UserID == booking.UserID && b.Status.BlocksNewRequest() {
			return ErrDuplicateActiveBooking
		}
	}
	_ = booking.BeforeCreate(nil)
	now := t.s.now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	stored := *booking
	stored.Show, stored.User = nil, nil
	t.s.bookings[booking.ID] = stored

	if t.s.afterCreate != nil {
		return t.s.afterCreate()
	}
	return nil
}

func (t *memTx) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, ok := t.s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (t *memTx) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return t.GetByID(ctx, id)
}

func (t *memTx) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	if err := t.s.fail["UpdateStatus"]; err != nil {
		return err
	}
	b, ok := t.s.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	b.Status = status
	b.UpdatedAt = t.s.now()
	t.s.bookings[id] = b
	return nil
}

func (t *memTx) GetWithRelations(ctx context.Context, id uuid.UUID) (*Booking, error) {
	b, ok := t.s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	t.attach(&b)
	return &b, nil
}

func (t *memTx) attach(b *Booking) {
	if sh, ok := t.s.shows[b.ShowID]; ok {
		if p, ok := t.s.users[sh.PromoterID]; ok {
			sh.Promoter = &p
		}
		b.Show = &sh
	}
	if u, ok := t.s.users[b.UserID]; ok {
		b.User = &u
	}
}

func (t *memTx) ListByUser(ctx context.Context, userID uuid.UUID, query ListQuery) ([]Booking, int64, error) {
	var out []Booking
	for _, b := range t.s.bookings {
		if b.UserID == userID && (query.Status == "" || string(b.Status) == query.Status) {
			t.attach(&b)
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, query), int64(len(out)), nil
}

func (t *memTx) ListByPromoter(ctx context.Context, promoterID uuid.UUID, query ListQuery) ([]Booking, int64, error) {
	if err := t.s.fail["ListByPromoter"]; err != nil {
		return nil, 0, err
	}
	var out []Booking
	for _, b := range t.s.bookings {
		sh, ok := t.s.shows[b.ShowID]
		if !ok || sh.PromoterID != promoterID {
			continue
		}
		if query.Status != "" && string(b.Status) != query.Status {
			continue
		}
		t.attach(&b)
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Show.StartTime.Equal(out[j].Show.StartTime) {
			return out[i].Show.StartTime.Before(out[j].Show.StartTime)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return page(out, query), int64(len(out)), nil
}

func page(bookings []Booking, query ListQuery) []Booking {
	start := (query.Page - 1) * query.Limit
	if start >= len(bookings) {
		return nil
	}
	end := start + query.Limit
	if end > len(bookings) {
		end = len(bookings)
	}
	return bookings[start:end]
}

var errStoreDown = errors.New("store unavailable")
