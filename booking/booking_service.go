package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetboard/meeting-booking-backend/attachment"
	"github.com/meetboard/meeting-booking-backend/auth"
	"github.com/meetboard/meeting-booking-backend/notify"
	"github.com/meetboard/meeting-booking-backend/record"
)

type BookingRepository interface {
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, filter ListFilter) ([]Booking, error)
	HasOverlap(ctx context.Context, groupID string, start, end time.Time, excludeID string) (bool, error)
	UpdateBookingDetails(ctx context.Context, b Booking) error
	SetBookingStatus(ctx context.Context, update StatusUpdate) error
	SetProposal(ctx context.Context, id string, proposal Proposal, audit []AuditEntry) error
	AcceptProposal(ctx context.Context, id string, proposal Proposal, audit []AuditEntry) error
	DeclineProposal(ctx context.Context, id, reason string, audit []AuditEntry) error
	AttachRecord(ctx context.Context, bookingID, recordID string) (bool, error)
	ClearRecordRef(ctx context.Context, bookingID string) error
	ListDueReminders(ctx context.Context, from, to time.Time) ([]Booking, error)
	MarkReminderSent(ctx context.Context, id string) error
	ListExpirable(ctx context.Context, cutoff time.Time) ([]Booking, error)
}

type GroupRepository interface {
	GetGroupByID(ctx context.Context, id string) (Group, error)
}

type RecordStore interface {
	InsertRecord(ctx context.Context, rec record.Record) (record.Record, error)
	GetRecordByID(ctx context.Context, id string) (record.Record, error)
	RecordExists(ctx context.Context, id string) (bool, error)
	DeleteRecord(ctx context.Context, id string) error
}

type ResponseTokenMinter interface {
	MintResponseToken(bookingID, action, responderID string) (string, error)
}

type ServiceDeps struct {
	Repo          BookingRepository
	Groups        GroupRepository
	Records       RecordStore
	Gateway       notify.Gateway
	Tokens        ResponseTokenMinter
	Clock         Clock
	PublicBaseURL string
	Logger        *zap.Logger
}

type Service struct {
	repo    BookingRepository
	groups  GroupRepository
	records RecordStore
	gateway notify.Gateway
	tokens  ResponseTokenMinter
	clock   Clock
	baseURL string
	logger  *zap.Logger
}

func NewService(deps ServiceDeps) *Service {
	return &Service{
		repo:    deps.Repo,
		groups:  deps.Groups,
		records: deps.Records,
		gateway: deps.Gateway,
		tokens:  deps.Tokens,
		clock:   deps.Clock,
		baseURL: deps.PublicBaseURL,
		logger:  deps.Logger,
	}
}

type CreateInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Kind           Kind     `json:"kind"`
	Location       string   `json:"location"`
	Notes          string   `json:"notes"`
	GroupID        string   `json:"groupId"`
	ParticipantIDs []string `json:"participantIds"`
}

func (s *Service) CreateBooking(ctx context.Context, actor auth.Actor, in CreateInput) (Booking, error) {
	if in.Title == "" {
		return Booking{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	if !in.Kind.Valid() {
		return Booking{}, fmt.Errorf("%w: kind must be %v or %v", ErrValidation, KindOnSite, KindRemote)
	}

	groupID := in.GroupID
	if groupID == "" {
		groupID = actor.GroupID
	}

	if groupID == "" {
		return Booking{}, fmt.Errorf("%w: group is required", ErrValidation)
	}

	if !actor.Overseer() && actor.GroupID != groupID {
		return Booking{}, ErrNotAllowed
	}

	group, err := s.groups.GetGroupByID(ctx, groupID)

	if err != nil {
		return Booking{}, err
	}

	startsAt, endsAt, err := s.clock.Interval(in.Date, in.StartTime, in.EndTime)

	if err != nil {
		return Booking{}, err
	}

	overlaps, err := s.repo.HasOverlap(ctx, groupID, startsAt, endsAt, "")

	if err != nil {
		return Booking{}, err
	}

	if overlaps {
		return Booking{}, ErrScheduleConflict
	}

	booking := Booking{
		Title:          in.Title,
		Description:    in.Description,
		Date:           in.Date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		Kind:           in.Kind,
		Location:       in.Location,
		Notes:          in.Notes,
		GroupID:        groupID,
		CreatorID:      actor.ID,
		CreatorName:    actor.Name,
		ParticipantIDs: in.ParticipantIDs,
		Audit:          []AuditEntry{newEntry(actor, "created", "")},
	}

	inserted, err := s.repo.InsertBooking(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	s.notifyBestEffort(ctx, notify.Message{
		Recipients: recipientSet(group.ApproverID),
		Subject:    "New booking awaiting approval",
		Body:       fmt.Sprintf("%v requested %q on %v", actor.Name, inserted.Title, formatSlot(inserted.Date, inserted.StartTime, inserted.EndTime)),
	})

	return inserted, nil
}

func (s *Service) FindBookingByID(ctx context.Context, actor auth.Actor, id string) (Booking, error) {
	booking, group, err := s.load(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if !s.relatedTo(actor, booking, group) {
		return Booking{}, ErrNotAllowed
	}

	return booking, nil
}

type ListOptions struct {
	Mine           bool
	IncludeHistory bool
}

func (s *Service) ListBookings(ctx context.Context, actor auth.Actor, opts ListOptions) ([]Booking, error) {
	filter := ListFilter{IncludeHistory: opts.IncludeHistory}

	if opts.Mine {
		filter.ActorID = actor.ID
	} else if !actor.Overseer() {
		filter.GroupID = actor.GroupID
	}

	return s.repo.ListBookings(ctx, filter)
}

type UpdateInput struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Date           string   `json:"date"`
	StartTime      string   `json:"startTime"`
	EndTime        string   `json:"endTime"`
	Kind           Kind     `json:"kind"`
	Location       string   `json:"location"`
	Notes          string   `json:"notes"`
	ParticipantIDs []string `json:"participantIds"`
}

func (s *Service) ModifyBooking(ctx context.Context, actor auth.Actor, id string, in UpdateInput) (Booking, error) {
	booking, _, err := s.load(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if !actor.Overseer() && booking.CreatorID != actor.ID {
		return Booking{}, ErrNotAllowed
	}

	if !actor.Overseer() && booking.Status != StatusPending {
		return Booking{}, ErrInvalidState
	}

	if in.Title == "" {
		return Booking{}, fmt.Errorf("%w: title is required", ErrValidation)
	}

	if !in.Kind.Valid() {
		return Booking{}, fmt.Errorf("%w: kind must be %v or %v", ErrValidation, KindOnSite, KindRemote)
	}

	startsAt, endsAt, err := s.clock.Interval(in.Date, in.StartTime, in.EndTime)

	if err != nil {
		return Booking{}, err
	}

	overlaps, err := s.repo.HasOverlap(ctx, booking.GroupID, startsAt, endsAt, booking.ID)

	if err != nil {
		return Booking{}, err
	}

	if overlaps {
		return Booking{}, ErrScheduleConflict
	}

	booking.Title = in.Title
	booking.Description = in.Description
	booking.Date = in.Date
	booking.StartTime = in.StartTime
	booking.EndTime = in.EndTime
	booking.StartsAt = startsAt
	booking.EndsAt = endsAt
	booking.Kind = in.Kind
	booking.Location = in.Location
	booking.Notes = in.Notes
	booking.ParticipantIDs = in.ParticipantIDs
	booking.Audit = append(booking.Audit, newEntry(actor, "updated", ""))

	if err := s.repo.UpdateBookingDetails(ctx, booking); err != nil {
		return Booking{}, err
	}

	return booking, nil
}

func (s *Service) ApproveBooking(ctx context.Context, actor auth.Actor, id string) error {
	booking, group, err := s.load(ctx, id)

	if err != nil {
		return err
	}

	if !actor.Overseer() && group.ApproverID != actor.ID {
		return ErrNotAllowed
	}

	if !actor.Overseer() && booking.Status != StatusPending {
		return ErrInvalidState
	}

	err = s.repo.SetBookingStatus(ctx, StatusUpdate{
		ID:     id,
		Status: StatusApproved,
		Entry:  newEntry(actor, "approved", ""),
		Audit:  booking.Audit,
	})

	if err != nil {
		return err
	}

	s.notifyBestEffort(ctx, notify.Message{
		Recipients: recipientSet(append(booking.ParticipantIDs, booking.CreatorID)...),
		Subject:    "Booking approved",
		Body:       fmt.Sprintf("%q on %v was approved", booking.Title, formatSlot(booking.Date, booking.StartTime, booking.EndTime)),
	})

	return nil
}

func (s *Service) RejectBooking(ctx context.Context, actor auth.Actor, id, reason string) error {
	booking, group, err := s.load(ctx, id)

	if err != nil {
		return err
	}

	if !actor.Overseer() && group.ApproverID != actor.ID {
		return ErrNotAllowed
	}

	if !actor.Overseer() && booking.Status != StatusPending {
		return ErrInvalidState
	}

	err = s.repo.SetBookingStatus(ctx, StatusUpdate{
		ID:              id,
		Status:          StatusRejected,
		RejectionReason: reason,
		Entry:           newEntry(actor, "rejected", reason),
		Audit:           booking.Audit,
	})

	if err != nil {
		return err
	}

	s.notifyBestEffort(ctx, notify.Message{
		Recipients: recipientSet(append(booking.ParticipantIDs, booking.CreatorID)...),
		Subject:    "Booking rejected",
		Body:       fmt.Sprintf("%q was rejected: %v", booking.Title, reason),
	})

	return nil
}

func (s *Service) CancelBooking(ctx context.Context, actor auth.Actor, id, reason string) error {
	booking, group, err := s.load(ctx, id)

	if err != nil {
		return err
	}

	if !actor.Overseer() && booking.CreatorID != actor.ID {
		return ErrNotAllowed
	}

	if !actor.Overseer() && booking.Status != StatusPending && booking.Status != StatusApproved {
		return ErrInvalidState
	}

	err = s.repo.SetBookingStatus(ctx, StatusUpdate{
		ID:                 id,
		Status:             StatusCancelled,
		CancellationReason: reason,
		Entry:              newEntry(actor, "cancelled", reason),
		Audit:              booking.Audit,
	})

	if err != nil {
		return err
	}

	s.notifyBestEffort(ctx, notify.Message{
		Recipients: recipientSet(append(booking.ParticipantIDs, group.ApproverID)...),
		Subject:    "Booking cancelled",
		Body:       fmt.Sprintf("%q on %v was cancelled: %v", booking.Title, formatSlot(booking.Date, booking.StartTime, booking.EndTime), reason),
	})

	return nil
}

type ProposalInput struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Reason    string `json:"reason"`
}

func (s *Service) ProposeReschedule(ctx context.Context, actor auth.Actor, id string, in ProposalInput) error {
	booking, group, err := s.load(ctx, id)

	if err != nil {
		return err
	}

	if !actor.Overseer() && group.ApproverID != actor.ID {
		return ErrNotAllowed
	}

	// Only one proposal may be outstanding; the booking has to return to
	// pending or approved before a new one can be issued.
	if booking.Proposal != nil {
		return ErrProposalPending
	}

	if !actor.Overseer() && booking.Status != StatusPending && booking.Status != StatusApproved {
		return ErrInvalidState
	}

	startsAt, endsAt, err := s.clock.Interval(in.Date, in.StartTime, in.EndTime)

	if err != nil {
		return err
	}

	proposal := Proposal{
		ProposerID: actor.ID,
		Date:       in.Date,
		StartTime:  in.StartTime,
		EndTime:    in.EndTime,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		Reason:     in.Reason,
		CreatedAt:  time.Now().UTC(),
	}

	audit := append(booking.Audit, newEntry(actor, "reschedule_requested", in.Reason))

	if err := s.repo.SetProposal(ctx, id, proposal, audit); err != nil {
		return err
	}

	message := notify.Message{
		Recipients: recipientSet(append(booking.ParticipantIDs, booking.CreatorID)...),
		Subject:    "New time proposed for booking",
		Body: fmt.Sprintf("%q was proposed to move to %v: %v",
			booking.Title, formatSlot(in.Date, in.StartTime, in.EndTime), in.Reason),
	}

	// The two deep links let the creator answer straight from the
	// notification, without signing in again.
	if acceptToken, err := s.tokens.MintResponseToken(id, auth.ResponseAccept, booking.CreatorID); err == nil {
		message.Links = append(message.Links, notify.Link{
			Label: "Accept new time",
			URL:   s.responseURL(acceptToken),
		})
	} else {
		s.logger.Warn("failed to mint accept token", zap.Error(err), zap.String("bookingId", id))
	}

	if declineToken, err := s.tokens.MintResponseToken(id, auth.ResponseDecline, booking.CreatorID); err == nil {
		message.Links = append(message.Links, notify.Link{
			Label: "Decline new time",
			URL:   s.responseURL(declineToken),
		})
	} else {
		s.logger.Warn("failed to mint decline token", zap.Error(err), zap.String("bookingId", id))
	}

	s.notifyBestEffort(ctx, message)

	return nil
}

func (s *Service) RespondReschedule(ctx context.Context, actor auth.Actor, id string, accepted bool, reason string) error {
	booking, group, err := s.load(ctx, id)

	if err != nil {
		return err
	}

	allowed := actor.Overseer() ||
		booking.CreatorID == actor.ID ||
		slices.Contains(booking.ParticipantIDs, actor.ID)

	if !allowed {
		return ErrNotAllowed
	}

	if booking.Status != StatusRescheduleRequested || booking.Proposal == nil {
		return ErrNoProposal
	}

	if accepted {
		audit := append(booking.Audit, newEntry(actor, "reschedule_accepted", ""))

		if err := s.repo.AcceptProposal(ctx, id, *booking.Proposal, audit); err != nil {
			return err
		}

		s.notifyBestEffort(ctx, notify.Message{
			Recipients: recipientSet(group.ApproverID),
			Subject:    "Reschedule accepted",
			Body: fmt.Sprintf("%q now takes place on %v", booking.Title,
				formatSlot(booking.Proposal.Date, booking.Proposal.StartTime, booking.Proposal.EndTime)),
		})

		return nil
	}

	audit := append(booking.Audit, newEntry(actor, "reschedule_declined", reason))

	if err := s.repo.DeclineProposal(ctx, id, reason, audit); err != nil {
		return err
	}

	s.notifyBestEffort(ctx, notify.Message{
		Recipients: recipientSet(group.ApproverID),
		Subject:    "Reschedule declined",
		Body:       fmt.Sprintf("the proposed time for %q was declined: %v", booking.Title, reason),
	})

	return nil
}

type CompleteInput struct {
	Summary         string `json:"summary"`
	Homework        string `json:"homework"`
	NextMeetingDate string `json:"nextMeetingDate"`
}

// CompleteBooking creates the booking's record and attaches it under the
// at-most-one guarantee. The record is inserted first; the conditional update
// on the booking decides the race, and the loser's record is deleted again.
func (s *Service) CompleteBooking(ctx context.Context, actor auth.Actor, id string, in CompleteInput) (record.Record, error) {
	booking, group, err := s.load(ctx, id)

	if err != nil {
		return record.Record{}, err
	}

	if !actor.Overseer() && group.ApproverID != actor.ID {
		return record.Record{}, ErrNotAllowed
	}

	if !actor.Overseer() && booking.Status != StatusApproved {
		return record.Record{}, ErrInvalidState
	}

	if in.Summary == "" {
		return record.Record{}, fmt.Errorf("%w: summary is required", ErrValidation)
	}

	if in.NextMeetingDate != "" {
		if _, err := time.Parse(dateLayout, in.NextMeetingDate); err != nil {
			return record.Record{}, fmt.Errorf("%w: next meeting date must be formatted as %s", ErrValidation, dateLayout)
		}
	}

	if booking.RecordID != "" {
		exists, err := s.records.RecordExists(ctx, booking.RecordID)

		if err != nil {
			return record.Record{}, err
		}

		if exists {
			return record.Record{}, ErrRecordExists
		}

		// The referenced record was deleted out-of-band; drop the stale
		// reference and complete normally.
		if err := s.repo.ClearRecordRef(ctx, id); err != nil {
			return record.Record{}, err
		}
	}

	rec := record.Record{
		ID:              uuid.NewString(),
		BookingID:       id,
		GroupID:         booking.GroupID,
		Summary:         in.Summary,
		Homework:        in.Homework,
		NextMeetingDate: in.NextMeetingDate,
		AttachmentIDs:   []string{},
		CreatorID:       actor.ID,
	}

	inserted, err := s.records.InsertRecord(ctx, rec)

	if err != nil {
		if errors.Is(err, record.ErrDuplicateRecord) {
			return record.Record{}, ErrRecordExists
		}
		return record.Record{}, err
	}

	attached, err := s.repo.AttachRecord(ctx, id, inserted.ID)

	if err != nil {
		return record.Record{}, err
	}

	if !attached {
		// Lost the race: another completion attached its record first.
		// Compensate by removing the record just created.
		if err := s.records.DeleteRecord(ctx, inserted.ID); err != nil {
			s.logger.Warn("failed to delete record after lost attach race",
				zap.Error(err), zap.String("recordId", inserted.ID))
		}
		return record.Record{}, ErrRecordExists
	}

	err = s.repo.SetBookingStatus(ctx, StatusUpdate{
		ID:     id,
		Status: StatusCompleted,
		Entry:  newEntry(actor, "completed", ""),
		Audit:  booking.Audit,
	})

	if err != nil {
		return record.Record{}, err
	}

	return inserted, nil
}

// ResolveBookingOwner reports who is connected to a booking, for the
// attachment access checks.
func (s *Service) ResolveBookingOwner(ctx context.Context, id string) (attachment.Ownership, error) {
	booking, group, err := s.load(ctx, id)

	if err != nil {
		return attachment.Ownership{}, err
	}

	return attachment.Ownership{
		GroupID:        booking.GroupID,
		CreatorID:      booking.CreatorID,
		ApproverID:     group.ApproverID,
		ParticipantIDs: booking.ParticipantIDs,
		MemberIDs:      group.MemberIDs,
	}, nil
}

// ResolveRecordOwner is the record counterpart of ResolveBookingOwner.
func (s *Service) ResolveRecordOwner(ctx context.Context, id string) (attachment.Ownership, error) {
	rec, err := s.records.GetRecordByID(ctx, id)

	if err != nil {
		return attachment.Ownership{}, err
	}

	group, err := s.groups.GetGroupByID(ctx, rec.GroupID)

	if err != nil {
		return attachment.Ownership{}, err
	}

	return attachment.Ownership{
		GroupID:    rec.GroupID,
		CreatorID:  rec.CreatorID,
		ApproverID: group.ApproverID,
		MemberIDs:  group.MemberIDs,
	}, nil
}

func (s *Service) load(ctx context.Context, id string) (Booking, Group, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, Group{}, err
	}

	group, err := s.groups.GetGroupByID(ctx, booking.GroupID)

	if err != nil {
		return Booking{}, Group{}, err
	}

	return booking, group, nil
}

func (s *Service) relatedTo(actor auth.Actor, booking Booking, group Group) bool {
	return actor.Overseer() ||
		booking.CreatorID == actor.ID ||
		group.ApproverID == actor.ID ||
		slices.Contains(booking.ParticipantIDs, actor.ID) ||
		slices.Contains(group.MemberIDs, actor.ID)
}

func (s *Service) notifyBestEffort(ctx context.Context, message notify.Message) {
	if err := s.gateway.Send(ctx, message); err != nil {
		s.logger.Warn("notification dispatch failed",
			zap.Error(err), zap.String("subject", message.Subject))
	}
}

func (s *Service) responseURL(token string) string {
	return s.baseURL + "/api/v1/bookings/respond?token=" + token
}

func newEntry(actor auth.Actor, action, note string) AuditEntry {
	return AuditEntry{
		At:        time.Now().UTC(),
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Action:    action,
		Note:      note,
	}
}

// recipientSet de-duplicates recipient ids and drops empty entries.
func recipientSet(ids ...string) []string {
	out := []string{}

	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}

	return out
}

func formatSlot(date, start, end string) string {
	return fmt.Sprintf("%v %v-%v", date, start, end)
}
