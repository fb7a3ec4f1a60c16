package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/meetboard/meeting-booking-backend/notify"
)

// AttachmentSweep is the slice of the attachment service the sweeper drives.
type AttachmentSweep interface {
	SweepExpired(ctx context.Context) (int, error)
}

// Sweeper runs the periodic background passes: firing reminders for
// soon-to-start approved bookings, expiring stale non-terminal bookings and
// purging expired attachments. The period is expected to exceed a run's
// duration, so overlapping runs are not handled.
type Sweeper struct {
	repo        BookingRepository
	groups      GroupRepository
	gateway     notify.Gateway
	attachments AttachmentSweep
	logger      *zap.Logger

	interval  time.Duration
	lookahead time.Duration
	grace     time.Duration

	stopChan chan struct{}
}

type SweeperDeps struct {
	Repo        BookingRepository
	Groups      GroupRepository
	Gateway     notify.Gateway
	Attachments AttachmentSweep
	Logger      *zap.Logger
	Interval    time.Duration
	Lookahead   time.Duration
	ExpiryGrace time.Duration
}

func NewSweeper(deps SweeperDeps) *Sweeper {
	return &Sweeper{
		repo:        deps.Repo,
		groups:      deps.Groups,
		gateway:     deps.Gateway,
		attachments: deps.Attachments,
		logger:      deps.Logger,
		interval:    deps.Interval,
		lookahead:   deps.Lookahead,
		grace:       deps.ExpiryGrace,
		stopChan:    make(chan struct{}),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("starting background sweeper",
		zap.Duration("interval", s.interval), zap.Duration("lookahead", s.lookahead))

	go s.run(ctx)
}

func (s *Sweeper) Stop() {
	s.logger.Info("stopping background sweeper")
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("sweeper stopped")
			return
		case <-ctx.Done():
			s.logger.Info("sweeper cancelled")
			return
		}
	}
}

// Sweep executes one full pass. Exported so a run can be triggered directly
// in tests and operational tooling.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := time.Now().UTC()

	if err := s.sweepReminders(ctx, now); err != nil {
		s.logger.Error("reminder sweep failed", zap.Error(err))
	}

	if err := s.sweepExpiredBookings(ctx, now); err != nil {
		s.logger.Error("booking expiry sweep failed", zap.Error(err))
	}

	if s.attachments != nil {
		if n, err := s.attachments.SweepExpired(ctx); err != nil {
			s.logger.Error("attachment expiry sweep failed", zap.Error(err))
		} else if n > 0 {
			s.logger.Info("purged expired attachments", zap.Int("count", n))
		}
	}
}

func (s *Sweeper) sweepReminders(ctx context.Context, now time.Time) error {
	due, err := s.repo.ListDueReminders(ctx, now, now.Add(s.lookahead))

	if err != nil {
		return fmt.Errorf("list due reminders: %w", err)
	}

	for _, booking := range due {
		s.remind(ctx, booking)
	}

	return nil
}

// remind dispatches at most one reminder attempt per booking: the flag is
// persisted whatever the dispatch outcome, trading delivery guarantee for
// non-duplication.
func (s *Sweeper) remind(ctx context.Context, booking Booking) {
	recipients := append(booking.ParticipantIDs, booking.CreatorID)

	group, err := s.groups.GetGroupByID(ctx, booking.GroupID)

	if err != nil {
		s.logger.Warn("failed to resolve group for reminder",
			zap.Error(err), zap.String("bookingId", booking.ID))
	} else {
		recipients = append(recipients, group.ApproverID)
	}

	err = s.gateway.Send(ctx, notify.Message{
		Recipients: recipientSet(recipients...),
		Subject:    "Booking starts soon",
		Body: fmt.Sprintf("%q booked by %v starts at %v on %v",
			booking.Title, s.creatorName(ctx, booking), booking.StartTime, booking.Date),
	})

	if err != nil {
		s.logger.Warn("reminder dispatch failed",
			zap.Error(err), zap.String("bookingId", booking.ID))
	}

	if err := s.repo.MarkReminderSent(ctx, booking.ID); err != nil {
		s.logger.Error("failed to mark reminder sent",
			zap.Error(err), zap.String("bookingId", booking.ID))
	}
}

// creatorName resolves the creator's display name through the gateway
// directory, falling back to the stored id when the lookup fails. The
// gateway memoizes lookups, so repeated sweeps stay cheap.
func (s *Sweeper) creatorName(ctx context.Context, booking Booking) string {
	user, err := s.gateway.LookupUser(ctx, booking.CreatorID)

	if err != nil {
		s.logger.Warn("failed to resolve creator for reminder",
			zap.Error(err), zap.String("bookingId", booking.ID))
		return booking.CreatorID
	}

	return user.DisplayName
}

func (s *Sweeper) sweepExpiredBookings(ctx context.Context, now time.Time) error {
	stale, err := s.repo.ListExpirable(ctx, now.Add(-s.grace))

	if err != nil {
		return fmt.Errorf("list expirable bookings: %w", err)
	}

	for _, booking := range stale {
		err := s.repo.SetBookingStatus(ctx, StatusUpdate{
			ID:     booking.ID,
			Status: StatusExpired,
			Entry: AuditEntry{
				At:     now,
				Action: "expired",
				Note:   "slot passed without completion",
			},
			Audit: booking.Audit,
		})

		if err != nil {
			s.logger.Error("failed to expire booking",
				zap.Error(err), zap.String("bookingId", booking.ID))
			continue
		}

		s.logger.Info("booking expired", zap.String("bookingId", booking.ID))
	}

	return nil
}
