package attachment

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meetboard/meeting-booking-backend/auth"
	"github.com/meetboard/meeting-booking-backend/blob"
)

type Repository interface {
	InsertAttachment(ctx context.Context, a Attachment) (Attachment, error)
	GetAttachmentByID(ctx context.Context, id string) (Attachment, error)
	ListAttachmentsByOwner(ctx context.Context, owner Owner) ([]Attachment, error)
	DeleteAttachment(ctx context.Context, id string) error
	ListExpiredAttachments(ctx context.Context, now time.Time) ([]Attachment, error)
}

// RecordLinker appends attachment references to a completed meeting record.
type RecordLinker interface {
	AppendAttachment(ctx context.Context, recordID, attachmentID string) error
}

// Ownership describes who is connected to an attachment owner. It carries the
// same circle the booking read path grants access to.
type Ownership struct {
	GroupID        string
	CreatorID      string
	ApproverID     string
	ParticipantIDs []string
	MemberIDs      []string
}

// OwnerResolver looks up the entity an attachment belongs to. A missing
// entity surfaces as that entity's not-found error.
type OwnerResolver interface {
	ResolveBookingOwner(ctx context.Context, id string) (Ownership, error)
	ResolveRecordOwner(ctx context.Context, id string) (Ownership, error)
}

// FileUpload is one file of an upload batch.
type FileUpload struct {
	Name      string
	MediaType string
	Size      int64
	Content   io.Reader
}

type Service struct {
	repo      Repository
	store     blob.Store
	records   RecordLinker
	owners    OwnerResolver
	retention time.Duration
	logger    *zap.Logger
}

func NewService(repo Repository, store blob.Store, records RecordLinker, owners OwnerResolver, retention time.Duration, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		store:     store,
		records:   records,
		owners:    owners,
		retention: retention,
		logger:    logger,
	}
}

// authorize verifies the owner exists and the actor belongs to its circle.
// Overseers skip the relationship check but still get a not-found error for a
// missing owner.
func (s *Service) authorize(ctx context.Context, actor auth.Actor, owner Owner) error {
	var own Ownership
	var err error

	if owner.Kind == OwnerRecord {
		own, err = s.owners.ResolveRecordOwner(ctx, owner.ID)
	} else {
		own, err = s.owners.ResolveBookingOwner(ctx, owner.ID)
	}

	if err != nil {
		return err
	}

	if actor.Overseer() {
		return nil
	}

	related := own.CreatorID == actor.ID ||
		own.ApproverID == actor.ID ||
		slices.Contains(own.ParticipantIDs, actor.ID) ||
		slices.Contains(own.MemberIDs, actor.ID)

	if !related {
		return ErrNotAllowed
	}

	return nil
}

// UploadBatch writes every blob first, then inserts the metadata. If anything
// fails along the way, blobs and metadata already written in this batch are
// deleted before the error surfaces; the store and the database are never
// left with orphans from a half-done batch.
func (s *Service) UploadBatch(ctx context.Context, actor auth.Actor, owner Owner, files []FileUpload) ([]Attachment, error) {
	if !owner.Kind.Valid() || owner.ID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidUpload)
	}

	if err := s.authorize(ctx, actor, owner); err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files provided", ErrInvalidUpload)
	}

	for _, f := range files {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: file name is required", ErrInvalidUpload)
		}
	}

	var writtenKeys []string
	var inserted []Attachment

	fail := func(err error) ([]Attachment, error) {
		s.compensate(ctx, writtenKeys, inserted)
		return nil, err
	}

	for _, f := range files {
		key := uuid.NewString()

		if err := s.store.Put(ctx, key, f.Content); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrStoreFailure, err))
		}

		writtenKeys = append(writtenKeys, key)

		a := Attachment{
			ID:         uuid.NewString(),
			Owner:      owner,
			FileName:   f.Name,
			MediaType:  f.MediaType,
			Size:       f.Size,
			BlobKey:    key,
			UploaderID: actor.ID,
			ExpiresAt:  s.expiry(owner),
		}

		a, err := s.repo.InsertAttachment(ctx, a)

		if err != nil {
			return fail(err)
		}

		inserted = append(inserted, a)

		if owner.Kind == OwnerRecord {
			if err := s.records.AppendAttachment(ctx, owner.ID, a.ID); err != nil {
				return fail(err)
			}
		}
	}

	return inserted, nil
}

// expiry applies the retention window to booking-scoped attachments only.
func (s *Service) expiry(owner Owner) *time.Time {
	if owner.Kind != OwnerBooking {
		return nil
	}

	t := time.Now().UTC().Add(s.retention)
	return &t
}

func (s *Service) compensate(ctx context.Context, keys []string, inserted []Attachment) {
	for _, a := range inserted {
		if err := s.repo.DeleteAttachment(ctx, a.ID); err != nil {
			s.logger.Warn("failed to delete attachment metadata during batch compensation",
				zap.Error(err), zap.String("attachmentId", a.ID))
		}
	}

	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete blob during batch compensation",
				zap.Error(err), zap.String("blobKey", key))
		}
	}
}

func (s *Service) ListByOwner(ctx context.Context, actor auth.Actor, owner Owner) ([]Attachment, error) {
	if !owner.Kind.Valid() || owner.ID == "" {
		return nil, fmt.Errorf("%w: owner is required", ErrInvalidUpload)
	}

	if err := s.authorize(ctx, actor, owner); err != nil {
		return nil, err
	}

	return s.repo.ListAttachmentsByOwner(ctx, owner)
}

// Download returns the attachment metadata and a reader over its bytes. The
// caller closes the reader.
func (s *Service) Download(ctx context.Context, actor auth.Actor, id string) (Attachment, io.ReadCloser, error) {
	a, err := s.repo.GetAttachmentByID(ctx, id)

	if err != nil {
		return Attachment{}, nil, err
	}

	if err := s.authorize(ctx, actor, a.Owner); err != nil {
		return Attachment{}, nil, err
	}

	data, err := s.store.Get(ctx, a.BlobKey)

	if err != nil {
		return Attachment{}, nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return a, data, nil
}

// Delete removes the metadata first, then the blob; a blob orphaned by a
// failed second step is unreachable and harmless.
func (s *Service) Delete(ctx context.Context, actor auth.Actor, id string) error {
	a, err := s.repo.GetAttachmentByID(ctx, id)

	if err != nil {
		return err
	}

	if err := s.authorize(ctx, actor, a.Owner); err != nil {
		return err
	}

	if err := s.repo.DeleteAttachment(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, a.BlobKey); err != nil {
		s.logger.Warn("failed to delete blob for removed attachment",
			zap.Error(err), zap.String("blobKey", a.BlobKey))
	}

	return nil
}

// SweepExpired purges attachments whose retention window passed. Returns the
// number of attachments removed.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	expired, err := s.repo.ListExpiredAttachments(ctx, time.Now().UTC())

	if err != nil {
		return 0, err
	}

	removed := 0

	for _, a := range expired {
		if err := s.repo.DeleteAttachment(ctx, a.ID); err != nil {
			s.logger.Warn("failed to delete expired attachment",
				zap.Error(err), zap.String("attachmentId", a.ID))
			continue
		}

		if err := s.store.Delete(ctx, a.BlobKey); err != nil {
			s.logger.Warn("failed to delete blob of expired attachment",
				zap.Error(err), zap.String("blobKey", a.BlobKey))
		}

		removed++
	}

	return removed, nil
}
