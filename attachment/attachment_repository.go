package attachment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

const attachmentColumns = `id, owner_kind, owner_id, file_name, media_type, size, blob_key, uploader_id, expires_at, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttachment(row rowScanner) (Attachment, error) {
	var a Attachment
	err := row.Scan(
		&a.ID,
		&a.Owner.Kind,
		&a.Owner.ID,
		&a.FileName,
		&a.MediaType,
		&a.Size,
		&a.BlobKey,
		&a.UploaderID,
		&a.ExpiresAt,
		&a.CreatedAt,
	)
	return a, err
}

func (r *PgRepository) InsertAttachment(ctx context.Context, a Attachment) (Attachment, error) {
	sql := `
			INSERT INTO attachments(id, owner_kind, owner_id, file_name, media_type, size, blob_key, uploader_id, expires_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING created_at;
		`

	err := r.pool.QueryRow(ctx, sql,
		a.ID,
		string(a.Owner.Kind),
		a.Owner.ID,
		a.FileName,
		a.MediaType,
		a.Size,
		a.BlobKey,
		a.UploaderID,
		a.ExpiresAt,
	).Scan(&a.CreatedAt)

	if err != nil {
		return Attachment{}, fmt.Errorf("failed to insert attachment: %w", err)
	}

	return a, nil
}

func (r *PgRepository) GetAttachmentByID(ctx context.Context, id string) (Attachment, error) {
	sql := `SELECT ` + attachmentColumns + ` FROM attachments WHERE id=$1;`

	a, err := scanAttachment(r.pool.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Attachment{}, ErrAttachmentNotFound
	}

	if err != nil {
		return Attachment{}, fmt.Errorf("failed to fetch attachment with id %v: %w", id, err)
	}

	return a, nil
}

func (r *PgRepository) ListAttachmentsByOwner(ctx context.Context, owner Owner) ([]Attachment, error) {
	sql := `
			SELECT ` + attachmentColumns + `
			FROM attachments
			WHERE owner_kind=$1 AND owner_id=$2
			ORDER BY created_at;
		`

	rows, err := r.pool.Query(ctx, sql, string(owner.Kind), owner.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch attachments: %w", err)
	}

	defer rows.Close()

	var attachments []Attachment

	for rows.Next() {
		a, err := scanAttachment(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning attachment row: %w", err)
		}

		attachments = append(attachments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", err)
	}

	return attachments, nil
}

func (r *PgRepository) DeleteAttachment(ctx context.Context, id string) error {
	sql := `DELETE FROM attachments WHERE id=$1;`

	tag, err := r.pool.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete attachment %v: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAttachmentNotFound
	}

	return nil
}

// ListExpiredAttachments selects attachments whose retention window passed.
func (r *PgRepository) ListExpiredAttachments(ctx context.Context, now time.Time) ([]Attachment, error) {
	sql := `
			SELECT ` + attachmentColumns + `
			FROM attachments
			WHERE expires_at IS NOT NULL AND expires_at < $1;
		`

	rows, err := r.pool.Query(ctx, sql, now)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch expired attachments: %w", err)
	}

	defer rows.Close()

	var attachments []Attachment

	for rows.Next() {
		a, err := scanAttachment(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning attachment row: %w", err)
		}

		attachments = append(attachments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attachment rows: %w", err)
	}

	return attachments, nil
}
