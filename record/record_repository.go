package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// InsertRecord persists a new record. A duplicate booking reference trips the
// unique index on booking_id and surfaces as ErrDuplicateRecord; this is the
// backstop that catches racing completions before the booking-side CAS runs.
func (r *Repository) InsertRecord(ctx context.Context, rec Record) (Record, error) {
	sql := `
			INSERT INTO records(id, booking_id, group_id, summary, homework, next_meeting_date, attachment_ids, creator_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		rec.ID,
		rec.BookingID,
		rec.GroupID,
		rec.Summary,
		rec.Homework,
		rec.NextMeetingDate,
		rec.AttachmentIDs,
		rec.CreatorID,
	).Scan(&rec.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return Record{}, ErrDuplicateRecord
	}

	if err != nil {
		return Record{}, fmt.Errorf("failed to insert record: %w", err)
	}

	return rec, nil
}

func (r *Repository) GetRecordByID(ctx context.Context, id string) (Record, error) {
	sql := `
			SELECT id, booking_id, group_id, summary, COALESCE(homework, ''), COALESCE(next_meeting_date, ''), attachment_ids, creator_id, created_at
			FROM records
			WHERE id=$1;
		`

	var rec Record
	err := r.pool.QueryRow(ctx, sql, id).Scan(
		&rec.ID,
		&rec.BookingID,
		&rec.GroupID,
		&rec.Summary,
		&rec.Homework,
		&rec.NextMeetingDate,
		&rec.AttachmentIDs,
		&rec.CreatorID,
		&rec.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}

	if err != nil {
		return Record{}, fmt.Errorf("failed to fetch record with id %v: %w", id, err)
	}

	return rec, nil
}

func (r *Repository) GetRecordByBookingID(ctx context.Context, bookingID string) (Record, error) {
	sql := `
			SELECT id, booking_id, group_id, summary, COALESCE(homework, ''), COALESCE(next_meeting_date, ''), attachment_ids, creator_id, created_at
			FROM records
			WHERE booking_id=$1;
		`

	var rec Record
	err := r.pool.QueryRow(ctx, sql, bookingID).Scan(
		&rec.ID,
		&rec.BookingID,
		&rec.GroupID,
		&rec.Summary,
		&rec.Homework,
		&rec.NextMeetingDate,
		&rec.AttachmentIDs,
		&rec.CreatorID,
		&rec.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}

	if err != nil {
		return Record{}, fmt.Errorf("failed to fetch record for booking %v: %w", bookingID, err)
	}

	return rec, nil
}

func (r *Repository) RecordExists(ctx context.Context, id string) (bool, error) {
	sql := `SELECT EXISTS(SELECT 1 FROM records WHERE id=$1);`

	var exists bool
	if err := r.pool.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check record %v: %w", id, err)
	}

	return exists, nil
}

// DeleteRecord removes a record. Used both for explicit authorized deletion
// and as the compensating action when a completion loses the attach race.
func (r *Repository) DeleteRecord(ctx context.Context, id string) error {
	sql := `DELETE FROM records WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete record %v: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// AppendAttachment adds an attachment reference to the record's ordered list.
func (r *Repository) AppendAttachment(ctx context.Context, id, attachmentID string) error {
	sql := `
			UPDATE records
			SET attachment_ids = array_append(attachment_ids, $1)
			WHERE id=$2;
		`

	tag, err := r.pool.Exec(ctx, sql, attachmentID, id)

	if err != nil {
		return fmt.Errorf("failed to append attachment to record %v: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}

	return nil
}
