package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const bookingColumns = `id, title, description, meeting_date, start_time, end_time, starts_at, ends_at,
			kind, COALESCE(location, ''), COALESCE(notes, ''), group_id, creator_id, creator_name, participant_ids,
			status, COALESCE(rejection_reason, ''), COALESCE(cancellation_reason, ''), COALESCE(decline_reason, ''),
			proposal, reminder_sent, COALESCE(record_id, ''), audit, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (Booking, error) {
	var b Booking
	var proposalJSON, auditJSON []byte

	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Description,
		&b.Date,
		&b.StartTime,
		&b.EndTime,
		&b.StartsAt,
		&b.EndsAt,
		&b.Kind,
		&b.Location,
		&b.Notes,
		&b.GroupID,
		&b.CreatorID,
		&b.CreatorName,
		&b.ParticipantIDs,
		&b.Status,
		&b.RejectionReason,
		&b.CancellationReason,
		&b.DeclineReason,
		&proposalJSON,
		&b.ReminderSent,
		&b.RecordID,
		&auditJSON,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if err != nil {
		return Booking{}, err
	}

	if len(proposalJSON) != 0 {
		var p Proposal
		if err := json.Unmarshal(proposalJSON, &p); err != nil {
			return Booking{}, fmt.Errorf("failed to decode proposal: %w", err)
		}
		b.Proposal = &p
	}

	if len(auditJSON) != 0 {
		if err := json.Unmarshal(auditJSON, &b.Audit); err != nil {
			return Booking{}, fmt.Errorf("failed to decode audit trail: %w", err)
		}
	}

	return b, nil
}

func marshalAudit(entries []AuditEntry) ([]byte, error) {
	if entries == nil {
		entries = []AuditEntry{}
	}

	data, err := json.Marshal(entries)

	if err != nil {
		return nil, fmt.Errorf("failed to encode audit trail: %w", err)
	}

	return data, nil
}

func (r *Repository) InsertBooking(ctx context.Context, b Booking) (Booking, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	auditJSON, err := marshalAudit(b.Audit)
	if err != nil {
		return Booking{}, err
	}

	sql := `
			INSERT INTO bookings(
			id, title, description, meeting_date, start_time, end_time, starts_at, ends_at,
			kind, location, notes, group_id, creator_id, creator_name, participant_ids, status, audit)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			RETURNING created_at, updated_at;
		`

	err = r.pool.QueryRow(ctx, sql,
		b.ID,
		b.Title,
		b.Description,
		b.Date,
		b.StartTime,
		b.EndTime,
		b.StartsAt,
		b.EndsAt,
		string(b.Kind),
		b.Location,
		b.Notes,
		b.GroupID,
		b.CreatorID,
		b.CreatorName,
		b.ParticipantIDs,
		string(StatusPending),
		auditJSON,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	b.Status = StatusPending

	return b, nil
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1;`

	b, err := scanBooking(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return b, nil
}

type ListFilter struct {
	// ActorID limits results to bookings the actor created, participates in,
	// or approves (via group assignment). Empty means no actor restriction.
	ActorID string
	// GroupID limits results to one group. Empty means all groups.
	GroupID string
	// IncludeHistory adds terminal-status bookings to the result.
	IncludeHistory bool
}

func (r *Repository) ListBookings(ctx context.Context, filter ListFilter) ([]Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM bookings
			WHERE ($1 = '' OR creator_id = $1 OR $1 = ANY(participant_ids)
				OR group_id IN (SELECT id FROM groups WHERE approver_id = $1))
			AND ($2 = '' OR group_id = $2)
			AND ($3 OR status IN ('pending', 'approved', 'reschedule_requested'))
			ORDER BY starts_at;
		`

	rows, err := r.pool.Query(ctx, sql, filter.ActorID, filter.GroupID, filter.IncludeHistory)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

// HasOverlap reports whether any pending or approved booking of the group
// intersects [start, end). excludeID skips the booking being updated.
func (r *Repository) HasOverlap(ctx context.Context, groupID string, start, end time.Time, excludeID string) (bool, error) {
	sql := `
			SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE group_id = $1
				AND status IN ('pending', 'approved')
				AND starts_at < $3
				AND ends_at > $2
				AND id <> $4
			);
		`

	var overlaps bool
	if err := r.pool.QueryRow(ctx, sql, groupID, start, end, excludeID).Scan(&overlaps); err != nil {
		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}

	return overlaps, nil
}

// UpdateBookingDetails rewrites the mutable fields of a booking, including a
// re-derived schedule and the appended audit trail.
func (r *Repository) UpdateBookingDetails(ctx context.Context, b Booking) error {
	auditJSON, err := marshalAudit(b.Audit)
	if err != nil {
		return err
	}

	sql := `
			UPDATE bookings
			SET
				title=$1,
				description=$2,
				meeting_date=$3,
				start_time=$4,
				end_time=$5,
				starts_at=$6,
				ends_at=$7,
				kind=$8,
				location=$9,
				notes=$10,
				participant_ids=$11,
				audit=$12,
				updated_at=now()
			WHERE id=$13;
		`

	tag, err := r.pool.Exec(ctx, sql,
		b.Title,
		b.Description,
		b.Date,
		b.StartTime,
		b.EndTime,
		b.StartsAt,
		b.EndsAt,
		string(b.Kind),
		b.Location,
		b.Notes,
		b.ParticipantIDs,
		auditJSON,
		b.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// StatusUpdate carries one status transition. Reason fields left empty keep
// their stored value.
type StatusUpdate struct {
	ID                 string
	Status             Status
	RejectionReason    string
	CancellationReason string
	Entry              AuditEntry
	Audit              []AuditEntry
}

func (r *Repository) SetBookingStatus(ctx context.Context, update StatusUpdate) error {
	auditJSON, err := marshalAudit(append(update.Audit, update.Entry))
	if err != nil {
		return err
	}

	sql := `
			UPDATE bookings
			SET
				status=$1,
				rejection_reason = CASE WHEN $2 <> '' THEN $2 ELSE rejection_reason END,
				cancellation_reason = CASE WHEN $3 <> '' THEN $3 ELSE cancellation_reason END,
				audit=$4,
				updated_at=now()
			WHERE id=$5;
		`

	tag, err := r.pool.Exec(ctx, sql,
		string(update.Status),
		update.RejectionReason,
		update.CancellationReason,
		auditJSON,
		update.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", update.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) SetProposal(ctx context.Context, id string, proposal Proposal, audit []AuditEntry) error {
	proposalJSON, err := json.Marshal(proposal)
	if err != nil {
		return fmt.Errorf("failed to encode proposal: %w", err)
	}

	auditJSON, err := marshalAudit(audit)
	if err != nil {
		return err
	}

	sql := `
			UPDATE bookings
			SET proposal=$1, status=$2, audit=$3, updated_at=now()
			WHERE id=$4;
		`

	tag, err := r.pool.Exec(ctx, sql, proposalJSON, string(StatusRescheduleRequested), auditJSON, id)

	if err != nil {
		return fmt.Errorf("failed to set proposal on booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// AcceptProposal overwrites the booking's authoritative schedule with the
// proposal's values, clears the proposal and approves, all in one update.
func (r *Repository) AcceptProposal(ctx context.Context, id string, proposal Proposal, audit []AuditEntry) error {
	auditJSON, err := marshalAudit(audit)
	if err != nil {
		return err
	}

	sql := `
			UPDATE bookings
			SET
				meeting_date=$1,
				start_time=$2,
				end_time=$3,
				starts_at=$4,
				ends_at=$5,
				proposal=NULL,
				status=$6,
				audit=$7,
				updated_at=now()
			WHERE id=$8;
		`

	tag, err := r.pool.Exec(ctx, sql,
		proposal.Date,
		proposal.StartTime,
		proposal.EndTime,
		proposal.StartsAt,
		proposal.EndsAt,
		string(StatusApproved),
		auditJSON,
		id,
	)

	if err != nil {
		return fmt.Errorf("failed to accept proposal on booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeclineProposal clears the proposal and rejects without touching the
// original schedule. The decline reason lives in its own column, distinct
// from an approver-initiated rejection reason.
func (r *Repository) DeclineProposal(ctx context.Context, id, reason string, audit []AuditEntry) error {
	auditJSON, err := marshalAudit(audit)
	if err != nil {
		return err
	}

	sql := `
			UPDATE bookings
			SET proposal=NULL, status=$1, decline_reason=$2, audit=$3, updated_at=now()
			WHERE id=$4;
		`

	tag, err := r.pool.Exec(ctx, sql, string(StatusRejected), reason, auditJSON, id)

	if err != nil {
		return fmt.Errorf("failed to decline proposal on booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// AttachRecord sets the booking's record reference only if none is present.
// The compare-and-swap is the single primitive the at-most-one-record
// guarantee rests on; false means the caller lost the race.
func (r *Repository) AttachRecord(ctx context.Context, bookingID, recordID string) (bool, error) {
	sql := `
			UPDATE bookings
			SET record_id=$1, updated_at=now()
			WHERE id=$2 AND record_id IS NULL;
		`

	tag, err := r.pool.Exec(ctx, sql, recordID, bookingID)

	if err != nil {
		return false, fmt.Errorf("failed to attach record to booking '%v': %w", bookingID, err)
	}

	return tag.RowsAffected() == 1, nil
}

// ClearRecordRef drops a stale record reference whose record was deleted
// out-of-band.
func (r *Repository) ClearRecordRef(ctx context.Context, bookingID string) error {
	sql := `UPDATE bookings SET record_id=NULL, updated_at=now() WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, bookingID)

	if err != nil {
		return fmt.Errorf("failed to clear record reference on booking '%v': %w", bookingID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListDueReminders selects approved, un-reminded bookings starting within
// [from, to].
func (r *Repository) ListDueReminders(ctx context.Context, from, to time.Time) ([]Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM bookings
			WHERE status = 'approved'
			AND reminder_sent = false
			AND starts_at >= $1
			AND starts_at <= $2;
		`

	rows, err := r.pool.Query(ctx, sql, from, to)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch due reminders: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

func (r *Repository) MarkReminderSent(ctx context.Context, id string) error {
	sql := `UPDATE bookings SET reminder_sent=true, updated_at=now() WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to mark reminder sent on booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListExpirable selects non-terminal bookings whose slot ended before cutoff.
func (r *Repository) ListExpirable(ctx context.Context, cutoff time.Time) ([]Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM bookings
			WHERE status IN ('pending', 'approved', 'reschedule_requested')
			AND ends_at < $1;
		`

	rows, err := r.pool.Query(ctx, sql, cutoff)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch expirable bookings: %w", err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		b, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}
