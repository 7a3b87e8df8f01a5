package bookings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shows"
	"comedyslots/internal/users"
	"comedyslots/pkg/logger"

	"github.com/google/uuid"
)

type recordingNotifier struct {
	mu      sync.Mutex
	notices []Notice
	err     error
	delay   time.Duration
}

func (n *recordingNotifier) NotifyBooking(ctx context.Context, notice Notice) error {
	if n.delay > 0 {
		time.Sleep(n.delay)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
	return n.err
}

func (n *recordingNotifier) sent() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notice(nil), n.notices...)
}

type countingShowCache struct {
	mu    sync.Mutex
	calls int
}

func (c *countingShowCache) InvalidateListings(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return nil
}

type fixture struct {
	store    *memStore
	notifier *recordingNotifier
	cache    *countingShowCache
	svc      Service

	promoter      users.User
	otherPromoter users.User
	u1, u2        users.User
	show          shows.Show
}

func newFixture(t *testing.T, maxSlots int) *fixture {
	t.Helper()
	f := &fixture{
		store:    newMemStore(),
		notifier: &recordingNotifier{},
		cache:    &countingShowCache{},
	}
	f.svc = NewService(f.store, f.notifier, logger.NewNop(), time.Second)
	f.svc.SetShowCache(f.cache)

	f.promoter = f.store.addUser("promoter", users.RolePromoter)
	f.otherPromoter = f.store.addUser("other-promoter", users.RolePromoter)
	f.u1 = f.store.addUser("u1", users.RoleComedian)
	f.u2 = f.store.addUser("u2", users.RoleComedian)
	f.show = f.store.addShow(f.promoter.ID, "Comedy Night at The Laugh Factory", maxSlots)
	return f
}

// drain waits for detached notifications to finish.
func (f *fixture) drain(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := f.svc.Shutdown(ctx); err != nil {
		t.Fatalf("notifications did not finish: %v", err)
	}
}

// put stores a booking directly, bypassing admission.
func (f *fixture) put(userID uuid.UUID, status Status) Booking {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	b := Booking{ID: uuid.New(), ShowID: f.show.ID, UserID: userID, Status: status, CreatedAt: time.Now()}
	f.store.bookings[b.ID] = b
	return b
}

func requireKind(t *testing.T, err error, want apperrors.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s, got nil", want)
	}
	if got := apperrors.KindOf(err); got != want {
		t.Fatalf("kind = %s, want %s (err: %v)", got, want, err)
	}
}

func TestApprovedBookingFillsSingleSlotShow(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	b1, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
	if err != nil {
		t.Fatalf("U1 request: %v", err)
	}
	if b1.Status != StatusPending {
		t.Fatalf("U1 status = %s, want PENDING", b1.Status)
	}

	approved, err := f.svc.SetBookingStatus(ctx, f.promoter.Identity(), b1.ID, StatusApproved)
	if err != nil {
		t.Fatalf("approve U1: %v", err)
	}
	if approved.Status != StatusApproved {
		t.Fatalf("U1 status = %s, want APPROVED", approved.Status)
	}

	_, err = f.svc.RequestBooking(ctx, f.u2.Identity(), f.show.ID)
	requireKind(t, err, apperrors.KindShowFull)

	if f.store.total() != 1 {
		t.Errorf("bookings = %d, want 1 (no booking created for U2)", f.store.total())
	}
	f.drain(t)
}

func TestSequentialApprovalsFillShow(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	u3 := f.store.addUser("u3", users.RoleComedian)

	var pending []*Booking
	for _, u := range []users.User{f.u1, f.u2} {
		b, err := f.svc.RequestBooking(ctx, u.Identity(), f.show.ID)
		if err != nil {
			t.Fatalf("%s request: %v", u.Name, err)
		}
		if b.Status != StatusPending {
			t.Fatalf("%s status = %s, want PENDING", u.Name, b.Status)
		}
		pending = append(pending, b)
	}

	for i, b := range pending {
		approved, err := f.svc.SetBookingStatus(ctx, f.promoter.Identity(), b.ID, StatusApproved)
		if err != nil {
			t.Fatalf("approve booking %d: %v", i+1, err)
		}
		if approved.Status != StatusApproved {
			t.Fatalf("booking %d status = %s, want APPROVED", i+1, approved.Status)
		}
		if n := f.store.count(f.show.ID, StatusApproved); n != i+1 {
			t.Errorf("approved after %d approvals = %d", i+1, n)
		}
	}

	_, err := f.svc.RequestBooking(ctx, u3.Identity(), f.show.ID)
	requireKind(t, err, apperrors.KindShowFull)

	if f.store.total() != 2 {
		t.Errorf("bookings = %d, want 2 (no booking created for the third comedian)", f.store.total())
	}
	f.drain(t)
}

func TestDuplicateRequest(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	if _, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
	requireKind(t, err, apperrors.KindDuplicateBooking)

	if n := f.store.count(f.show.ID, StatusPending); n != 1 {
		t.Errorf("pending bookings = %d, want 1", n)
	}
	f.drain(t)
}

func TestDuplicateRulesPerStatus(t *testing.T) {
	tests := []struct {
		existing Status
		wantErr  apperrors.Kind
	}{
		{StatusPending, apperrors.KindDuplicateBooking},
		{StatusApproved, apperrors.KindDuplicateBooking},
		{StatusRejected, apperrors.KindDuplicateBooking},
		{StatusCancelled, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.existing), func(t *testing.T) {
			f := newFixture(t, 5)
			f.put(f.u1.ID, tt.existing)

			_, err := f.svc.RequestBooking(context.Background(), f.u1.Identity(), f.show.ID)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("request after %s: %v", tt.existing, err)
				}
			} else {
				requireKind(t, err, tt.wantErr)
			}
			f.drain(t)
		})
	}
}

func TestRejectedIsTerminal(t *testing.T) {
	f := newFixture(t, 5)
	b := f.put(f.u1.ID, StatusRejected)

	_, err := f.svc.SetBookingStatus(context.Background(), f.promoter.Identity(), b.ID, StatusApproved)
	requireKind(t, err, apperrors.KindInvalidTransition)

	stored, _ := f.store.booking(b.ID)
	if stored.Status != StatusRejected {
		t.Errorf("status = %s, want REJECTED", stored.Status)
	}
}

func TestNonOwningPromoterCannotDecide(t *testing.T) {
	f := newFixture(t, 5)
	b := f.put(f.u1.ID, StatusPending)

	for _, target := range []Status{StatusApproved, StatusRejected} {
		_, err := f.svc.SetBookingStatus(context.Background(), f.otherPromoter.Identity(), b.ID, target)
		requireKind(t, err, apperrors.KindUnauthorized)
	}

	stored, _ := f.store.booking(b.ID)
	if stored.Status != StatusPending {
		t.Errorf("status = %s, want PENDING", stored.Status)
	}
	if len(f.notifier.sent()) != 0 {
		t.Error("no notification expected for a refused transition")
	}
}

func TestTransitionTableIsTotal(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			t.Run(fmt.Sprintf("%s_to_%s", from, to), func(t *testing.T) {
				f := newFixture(t, 5)
				b := f.put(f.u1.ID, from)

				required, allowed := RequiredActor(from, to)
				if allowed {
					actor := f.promoter.Identity()
					if required == ActorRequester {
						actor = f.u1.Identity()
					}
					got, err := f.svc.SetBookingStatus(context.Background(), actor, b.ID, to)
					if err != nil {
						t.Fatalf("allowed transition failed: %v", err)
					}
					if got.Status != to {
						t.Fatalf("status = %s, want %s", got.Status, to)
					}
					f.drain(t)
					return
				}

				// neither party can perform a move that is not in the table
				for _, actor := range []users.Identity{f.promoter.Identity(), f.u1.Identity()} {
					_, err := f.svc.SetBookingStatus(context.Background(), actor, b.ID, to)
					requireKind(t, err, apperrors.KindInvalidTransition)
				}
				stored, _ := f.store.booking(b.ID)
				if stored.Status != from {
					t.Errorf("status changed to %s", stored.Status)
				}
			})
		}
	}
}

func TestTransitionRequiresTheRightParty(t *testing.T) {
	tests := []struct {
		name  string
		from  Status
		to    Status
		actor func(f *fixture) users.Identity
	}{
		{"requester cannot approve", StatusPending, StatusApproved, func(f *fixture) users.Identity { return f.u1.Identity() }},
		{"requester cannot reject", StatusPending, StatusRejected, func(f *fixture) users.Identity { return f.u1.Identity() }},
		{"owner cannot cancel pending", StatusPending, StatusCancelled, func(f *fixture) users.Identity { return f.promoter.Identity() }},
		{"owner cannot cancel approved", StatusApproved, StatusCancelled, func(f *fixture) users.Identity { return f.promoter.Identity() }},
		{"other comedian cannot cancel", StatusPending, StatusCancelled, func(f *fixture) users.Identity { return f.u2.Identity() }},
		{"other promoter cannot reject", StatusPending, StatusRejected, func(f *fixture) users.Identity { return f.otherPromoter.Identity() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 5)
			b := f.put(f.u1.ID, tt.from)

			_, err := f.svc.SetBookingStatus(context.Background(), tt.actor(f), b.ID, tt.to)
			requireKind(t, err, apperrors.KindUnauthorized)

			stored, _ := f.store.booking(b.ID)
			if stored.Status != tt.from {
				t.Errorf("status = %s, want %s", stored.Status, tt.from)
			}
		})
	}
}

func TestAuthorizationUsesStoredIdentity(t *testing.T) {
	f := newFixture(t, 5)
	b := f.put(f.u1.ID, StatusPending)

	// a token claiming the promoter role for a comedian's id is not trusted
	forged := users.Identity{ID: f.u1.ID, Email: f.promoter.Email, Role: users.RolePromoter}
	_, err := f.svc.SetBookingStatus(context.Background(), forged, b.ID, StatusApproved)
	requireKind(t, err, apperrors.KindUnauthorized)

	// the owner is matched by id, not by email
	impostor := users.Identity{ID: uuid.New(), Email: f.promoter.Email, Role: users.RolePromoter}
	_, err = f.svc.SetBookingStatus(context.Background(), impostor, b.ID, StatusApproved)
	requireKind(t, err, apperrors.KindUnauthorized)
}

func TestSetBookingStatusEdgeCases(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()
	b := f.put(f.u1.ID, StatusPending)

	t.Run("unknown status value", func(t *testing.T) {
		_, err := f.svc.SetBookingStatus(ctx, f.promoter.Identity(), b.ID, Status("ARCHIVED"))
		requireKind(t, err, apperrors.KindValidationFailed)
	})

	t.Run("missing booking is a generic denial", func(t *testing.T) {
		_, err := f.svc.SetBookingStatus(ctx, f.promoter.Identity(), uuid.New(), StatusApproved)
		requireKind(t, err, apperrors.KindUnauthorized)
	})

	t.Run("approval at capacity", func(t *testing.T) {
		g := newFixture(t, 2)
		g.put(g.u2.ID, StatusApproved)
		g.put(g.store.addUser("u3", users.RoleComedian).ID, StatusApproved)
		pending := g.put(g.u1.ID, StatusPending)

		_, err := g.svc.SetBookingStatus(ctx, g.promoter.Identity(), pending.ID, StatusApproved)
		requireKind(t, err, apperrors.KindShowFull)

		stored, _ := g.store.booking(pending.ID)
		if stored.Status != StatusPending {
			t.Errorf("status = %s, want PENDING", stored.Status)
		}
	})

	t.Run("store failure aborts", func(t *testing.T) {
		g := newFixture(t, 2)
		pending := g.put(g.u1.ID, StatusPending)
		g.store.setFailure("UpdateStatus", errStoreDown)

		_, err := g.svc.SetBookingStatus(ctx, g.promoter.Identity(), pending.ID, StatusApproved)
		requireKind(t, err, apperrors.KindDependencyFailure)
		if !errors.Is(err, errStoreDown) {
			t.Error("dependency failure should wrap the store error")
		}
	})
}

func TestCancelFreesSlot(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	b1, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.SetBookingStatus(ctx, f.promoter.Identity(), b1.ID, StatusApproved); err != nil {
		t.Fatal(err)
	}

	_, err = f.svc.CancelBooking(ctx, f.promoter.Identity(), b1.ID)
	requireKind(t, err, apperrors.KindUnauthorized)

	cancelled, err := f.svc.CancelBooking(ctx, f.u1.Identity(), b1.ID)
	if err != nil {
		t.Fatalf("requester cancel: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Fatalf("status = %s", cancelled.Status)
	}

	b2, err := f.svc.RequestBooking(ctx, f.u2.Identity(), f.show.ID)
	if err != nil {
		t.Fatalf("U2 request after cancel: %v", err)
	}
	if _, err := f.svc.SetBookingStatus(ctx, f.promoter.Identity(), b2.ID, StatusApproved); err != nil {
		t.Fatalf("approve U2: %v", err)
	}

	// U1 may ask again once the earlier booking is cancelled, but the show is full
	_, err = f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
	requireKind(t, err, apperrors.KindShowFull)
	f.drain(t)
}

func TestPendingRequestsAreNotCapped(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		u := f.store.addUser(fmt.Sprintf("comic-%d", i), users.RoleComedian)
		if _, err := f.svc.RequestBooking(ctx, u.Identity(), f.show.ID); err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
	}
	if n := f.store.count(f.show.ID, StatusPending); n != 4 {
		t.Errorf("pending = %d, want 4", n)
	}
	f.drain(t)
}

func TestRequestBookingRefusals(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown show", func(t *testing.T) {
		f := newFixture(t, 1)
		_, err := f.svc.RequestBooking(ctx, f.u1.Identity(), uuid.New())
		requireKind(t, err, apperrors.KindShowNotFound)
	})

	t.Run("nil show id", func(t *testing.T) {
		f := newFixture(t, 1)
		_, err := f.svc.RequestBooking(ctx, f.u1.Identity(), uuid.Nil)
		requireKind(t, err, apperrors.KindValidationFailed)
	})

	t.Run("promoter cannot request", func(t *testing.T) {
		f := newFixture(t, 1)
		_, err := f.svc.RequestBooking(ctx, f.promoter.Identity(), f.show.ID)
		requireKind(t, err, apperrors.KindUnauthorized)
	})

	t.Run("requester no longer exists", func(t *testing.T) {
		f := newFixture(t, 1)
		f.store.deleteUser(f.u1.ID)
		_, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
		requireKind(t, err, apperrors.KindUnauthorized)
	})

	t.Run("count failure", func(t *testing.T) {
		f := newFixture(t, 1)
		f.store.setFailure("CountApproved", errStoreDown)
		_, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
		requireKind(t, err, apperrors.KindDependencyFailure)
		if f.store.total() != 0 {
			t.Error("no booking should exist")
		}
	})
}

func TestFailedTransactionLeavesNoPartialState(t *testing.T) {
	ctx := context.Background()

	t.Run("failure after insert", func(t *testing.T) {
		f := newFixture(t, 1)
		f.store.afterCreate = func() error { return errStoreDown }

		_, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
		requireKind(t, err, apperrors.KindDependencyFailure)
		if f.store.total() != 0 {
			t.Errorf("bookings = %d, want 0 after rollback", f.store.total())
		}
		f.drain(t)
		if len(f.notifier.sent()) != 0 {
			t.Error("no notification expected for a rolled back booking")
		}
	})

	t.Run("commit failure", func(t *testing.T) {
		f := newFixture(t, 1)
		f.store.setFailure("Commit", errStoreDown)

		_, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
		requireKind(t, err, apperrors.KindDependencyFailure)
		if f.store.total() != 0 {
			t.Errorf("bookings = %d, want 0 after rollback", f.store.total())
		}
	})
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()

	t.Run("request notifies comedian and promoter", func(t *testing.T) {
		f := newFixture(t, 2)
		b, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
		if err != nil {
			t.Fatal(err)
		}
		f.drain(t)

		sent := f.notifier.sent()
		if len(sent) != 2 {
			t.Fatalf("notices = %d, want 2", len(sent))
		}
		byAudience := map[Audience]Notice{}
		for _, n := range sent {
			byAudience[n.Audience] = n
		}

		comedian := byAudience[AudienceComedian]
		if comedian.RecipientEmail != f.u1.Email || comedian.Status != StatusPending || comedian.BookingID != b.ID {
			t.Errorf("comedian notice = %+v", comedian)
		}
		if comedian.ShowTitle != f.show.Title || !comedian.ShowStart.Equal(f.show.StartTime) {
			t.Errorf("comedian notice show = %q %v", comedian.ShowTitle, comedian.ShowStart)
		}
		if promoter := byAudience[AudiencePromoter]; promoter.RecipientEmail != f.promoter.Email {
			t.Errorf("promoter notice = %+v", promoter)
		}
	})

	t.Run("promoter without email is skipped", func(t *testing.T) {
		f := newFixture(t, 2)
		f.store.mu.Lock()
		p := f.store.users[f.promoter.ID]
		p.Email = ""
		f.store.users[p.ID] = p
		f.store.mu.Unlock()

		if _, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID); err != nil {
			t.Fatal(err)
		}
		f.drain(t)
		if sent := f.notifier.sent(); len(sent) != 1 || sent[0].Audience != AudienceComedian {
			t.Errorf("notices = %+v", sent)
		}
	})

	t.Run("status change notifies comedian with new status", func(t *testing.T) {
		f := newFixture(t, 2)
		b := f.put(f.u1.ID, StatusPending)
		if _, err := f.svc.SetBookingStatus(ctx, f.promoter.Identity(), b.ID, StatusRejected); err != nil {
			t.Fatal(err)
		}
		f.drain(t)
		sent := f.notifier.sent()
		if len(sent) != 1 || sent[0].Status != StatusRejected || sent[0].RecipientEmail != f.u1.Email {
			t.Errorf("notices = %+v", sent)
		}
	})

	t.Run("notifier failure does not undo the booking", func(t *testing.T) {
		f := newFixture(t, 2)
		f.notifier.err = errors.New("smtp unreachable")

		b, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
		if err != nil {
			t.Fatalf("request must succeed when notifications fail: %v", err)
		}
		f.drain(t)
		if _, ok := f.store.booking(b.ID); !ok {
			t.Error("booking must remain after a notifier failure")
		}
	})

	t.Run("slow notifier does not block the caller", func(t *testing.T) {
		f := newFixture(t, 2)
		f.notifier.delay = 200 * time.Millisecond

		start := time.Now()
		if _, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID); err != nil {
			t.Fatal(err)
		}
		if elapsed := time.Since(start); elapsed >= f.notifier.delay {
			t.Errorf("RequestBooking took %v, expected it not to wait for notifications", elapsed)
		}
		f.drain(t)
	})

	t.Run("cancelled request context does not cancel notification", func(t *testing.T) {
		f := newFixture(t, 2)
		reqCtx, cancel := context.WithCancel(ctx)
		if _, err := f.svc.RequestBooking(reqCtx, f.u1.Identity(), f.show.ID); err != nil {
			t.Fatal(err)
		}
		cancel()
		f.drain(t)
		if len(f.notifier.sent()) != 2 {
			t.Errorf("notices = %d, want 2", len(f.notifier.sent()))
		}
	})
}

func TestCommittedChangesInvalidateShowListings(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	b, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.SetBookingStatus(ctx, f.promoter.Identity(), b.ID, StatusApproved); err != nil {
		t.Fatal(err)
	}
	_, _ = f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID) // refused, no invalidation

	if f.cache.calls != 2 {
		t.Errorf("invalidations = %d, want 2", f.cache.calls)
	}
	f.drain(t)
}

func TestConcurrentDuplicateRequests(t *testing.T) {
	f := newFixture(t, 5)
	const attempts = 20

	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.svc.RequestBooking(context.Background(), f.u1.Identity(), f.show.ID)
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperrors.KindOf(err) != apperrors.KindDuplicateBooking:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Errorf("successful requests = %d, want exactly 1", succeeded)
	}
	if f.store.total() != 1 {
		t.Errorf("bookings = %d, want 1", f.store.total())
	}
	f.drain(t)
}

func TestConcurrentApprovalsNeverExceedCapacity(t *testing.T) {
	const maxSlots = 3
	const pending = 10
	f := newFixture(t, maxSlots)

	ids := make([]uuid.UUID, 0, pending)
	for i := 0; i < pending; i++ {
		u := f.store.addUser(fmt.Sprintf("comic-%d", i), users.RoleComedian)
		ids = append(ids, f.put(u.ID, StatusPending).ID)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	approved, full := 0, 0
	start := make(chan struct{})
	for _, id := range ids {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			<-start
			_, err := f.svc.SetBookingStatus(context.Background(), f.promoter.Identity(), id, StatusApproved)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				approved++
			case apperrors.KindOf(err) == apperrors.KindShowFull:
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	close(start)
	wg.Wait()

	if approved != maxSlots || full != pending-maxSlots {
		t.Errorf("approved = %d, full = %d; want %d and %d", approved, full, maxSlots, pending-maxSlots)
	}
	if n := f.store.count(f.show.ID, StatusApproved); n != maxSlots {
		t.Errorf("stored approved = %d, want %d", n, maxSlots)
	}
	f.drain(t)
}

func TestGetBookingVisibility(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	b := f.put(f.u1.ID, StatusPending)

	for name, actor := range map[string]users.Identity{
		"requester":  f.u1.Identity(),
		"show owner": f.promoter.Identity(),
	} {
		got, err := f.svc.GetBooking(ctx, actor, b.ID)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if got.Show == nil || got.User == nil || got.User.ID != f.u1.ID {
			t.Errorf("%s: relations not loaded: %+v", name, got)
		}
	}

	for name, actor := range map[string]users.Identity{
		"other comedian": f.u2.Identity(),
		"other promoter": f.otherPromoter.Identity(),
	} {
		_, err := f.svc.GetBooking(ctx, actor, b.ID)
		if apperrors.KindOf(err) != apperrors.KindUnauthorized {
			t.Errorf("%s: kind = %s, want UNAUTHORIZED", name, apperrors.KindOf(err))
		}
	}

	_, err := f.svc.GetBooking(ctx, f.u1.Identity(), uuid.New())
	requireKind(t, err, apperrors.KindBookingNotFound)
}

func TestListings(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	base := time.Now()
	tick := 0
	f.store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	later := f.store.addShow(f.promoter.ID, "Weekend Comedy Showcase", 6)
	later.StartTime = f.show.StartTime.Add(48 * time.Hour)
	f.store.mu.Lock()
	f.store.shows[later.ID] = later
	f.store.mu.Unlock()
	foreign := f.store.addShow(f.otherPromoter.ID, "Open Mic Night", 8)

	first, err := f.svc.RequestBooking(ctx, f.u1.Identity(), later.ID)
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.svc.RequestBooking(ctx, f.u1.Identity(), f.show.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.RequestBooking(ctx, f.u2.Identity(), foreign.ID); err != nil {
		t.Fatal(err)
	}

	mine, err := f.svc.ListMyBookings(ctx, f.u1.Identity(), ListQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if mine.TotalCount != 2 || mine.Bookings[0].ID != second.ID.String() || mine.Bookings[1].ID != first.ID.String() {
		t.Errorf("my bookings not newest first: %+v", mine.Bookings)
	}

	managed, err := f.svc.ListManagedBookings(ctx, f.promoter.Identity(), ListQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if managed.TotalCount != 2 {
		t.Fatalf("managed total = %d, want 2 (foreign show excluded)", managed.TotalCount)
	}
	if managed.Bookings[0].ShowID != f.show.ID.String() {
		t.Error("managed bookings should be ordered by show start time")
	}
	if managed.Bookings[0].Requester == nil || managed.Bookings[0].Requester.Email != f.u1.Email {
		t.Errorf("requester not included: %+v", managed.Bookings[0])
	}

	filtered, err := f.svc.ListManagedBookings(ctx, f.promoter.Identity(), ListQuery{Status: "APPROVED"})
	if err != nil || filtered.TotalCount != 0 {
		t.Errorf("filtered = %+v, err = %v", filtered, err)
	}

	_, err = f.svc.ListManagedBookings(ctx, f.u1.Identity(), ListQuery{})
	requireKind(t, err, apperrors.KindForbidden)

	f.store.setFailure("ListByPromoter", errStoreDown)
	_, err = f.svc.ListManagedBookings(ctx, f.promoter.Identity(), ListQuery{})
	requireKind(t, err, apperrors.KindDependencyFailure)
	f.drain(t)
}

func TestShutdownHonoursDeadline(t *testing.T) {
	f := newFixture(t, 2)
	f.notifier.delay = 300 * time.Millisecond

	if _, err := f.svc.RequestBooking(context.Background(), f.u1.Identity(), f.show.ID); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := f.svc.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Shutdown() = %v, want deadline exceeded", err)
	}
	f.drain(t)
}
