package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bk "github.com/meetboard/meeting-booking-backend/booking"
	"github.com/meetboard/meeting-booking-backend/record"
)

// fakeBookingRepo keeps a single booking in memory and applies the same
// conditional update the SQL layer uses: the record reference is only set
// when it is still empty.
type fakeBookingRepo struct {
	mu      sync.Mutex
	booking bk.Booking
}

func (r *fakeBookingRepo) GetBookingByID(_ context.Context, _ string) (bk.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.booking, nil
}

func (r *fakeBookingRepo) AttachRecord(_ context.Context, _, recordID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.booking.RecordID != "" {
		return false, nil
	}

	r.booking.RecordID = recordID
	return true, nil
}

func (r *fakeBookingRepo) SetBookingStatus(_ context.Context, update bk.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.booking.Status = update.Status
	return nil
}

func (r *fakeBookingRepo) ClearRecordRef(_ context.Context, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.booking.RecordID = ""
	return nil
}

func (r *fakeBookingRepo) InsertBooking(_ context.Context, b bk.Booking) (bk.Booking, error) {
	return b, nil
}

func (r *fakeBookingRepo) ListBookings(_ context.Context, _ bk.ListFilter) ([]bk.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) HasOverlap(_ context.Context, _ string, _, _ time.Time, _ string) (bool, error) {
	return false, nil
}

func (r *fakeBookingRepo) UpdateBookingDetails(_ context.Context, _ bk.Booking) error { return nil }

func (r *fakeBookingRepo) SetProposal(_ context.Context, _ string, _ bk.Proposal, _ []bk.AuditEntry) error {
	return nil
}

func (r *fakeBookingRepo) AcceptProposal(_ context.Context, _ string, _ bk.Proposal, _ []bk.AuditEntry) error {
	return nil
}

func (r *fakeBookingRepo) DeclineProposal(_ context.Context, _, _ string, _ []bk.AuditEntry) error {
	return nil
}

func (r *fakeBookingRepo) ListDueReminders(_ context.Context, _, _ time.Time) ([]bk.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) MarkReminderSent(_ context.Context, _ string) error { return nil }

func (r *fakeBookingRepo) ListExpirable(_ context.Context, _ time.Time) ([]bk.Booking, error) {
	return nil, nil
}

// fakeRecordStore enforces the unique index on booking_id the way the
// database does.
type fakeRecordStore struct {
	mu       sync.Mutex
	byID     map[string]record.Record
	bookings map[string]bool
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{
		byID:     map[string]record.Record{},
		bookings: map[string]bool{},
	}
}

func (s *fakeRecordStore) InsertRecord(_ context.Context, rec record.Record) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.bookings[rec.BookingID] {
		return record.Record{}, record.ErrDuplicateRecord
	}

	s.bookings[rec.BookingID] = true
	s.byID[rec.ID] = rec
	return rec, nil
}

func (s *fakeRecordStore) GetRecordByID(_ context.Context, id string) (record.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return record.Record{}, record.ErrRecordNotFound
	}

	return rec, nil
}

func (s *fakeRecordStore) RecordExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byID[id]
	return ok, nil
}

func (s *fakeRecordStore) DeleteRecord(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return record.ErrRecordNotFound
	}

	delete(s.byID, id)
	delete(s.bookings, rec.BookingID)
	return nil
}

type fakeGroups struct{}

func (fakeGroups) GetGroupByID(_ context.Context, _ string) (bk.Group, error) {
	return testGroup, nil
}

// TestCompleteBookingConcurrent races many completions of the same booking
// against each other: exactly one must win and exactly one record may
// survive, every loser gets the already-exists conflict.
func TestCompleteBookingConcurrent(t *testing.T) {
	const workers = 8

	approved := pendingBooking()
	approved.Status = bk.StatusApproved

	repo := &fakeBookingRepo{booking: approved}
	store := newFakeRecordStore()

	svc := bk.NewService(bk.ServiceDeps{
		Repo:    repo,
		Groups:  fakeGroups{},
		Records: store,
		Clock:   bk.NewClock(0),
		Logger:  zap.NewNop(),
	})

	ctx := context.Background()
	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CompleteBooking(ctx, approverActor, "123", bk.CompleteInput{Summary: "done"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	// A call that loads the booking only after the winner finished sees the
	// completed status instead of the record conflict; both are refusals.
	wins, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, bk.ErrRecordExists), errors.Is(err, bk.ErrInvalidState):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	require.Equal(t, 1, wins)
	require.Equal(t, workers-1, conflicts)
	require.Len(t, store.byID, 1)

	final, err := repo.GetBookingByID(ctx, "123")
	require.Nil(t, err)
	require.Equal(t, bk.StatusCompleted, final.Status)

	_, ok := store.byID[final.RecordID]
	require.True(t, ok)
}
