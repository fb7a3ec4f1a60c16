package attachment_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/meetboard/meeting-booking-backend/attachment"
	at_mocks "github.com/meetboard/meeting-booking-backend/attachment/mocks"
	"github.com/meetboard/meeting-booking-backend/auth"
	bl_mocks "github.com/meetboard/meeting-booking-backend/blob/mocks"
	bk "github.com/meetboard/meeting-booking-backend/booking"
)

var (
	memberActor   = auth.Actor{ID: "member1", Name: "Member One", Role: auth.RoleMember, GroupID: "g1"}
	strangerActor = auth.Actor{ID: "outsider", Name: "Outsider", Role: auth.RoleMember, GroupID: "g2"}
	overseerActor = auth.Actor{ID: "boss", Name: "Boss", Role: auth.RoleOverseer}
)

// relatedOwnership places member1 in the owner's circle and outsider outside
// of it.
func relatedOwnership() attachment.Ownership {
	return attachment.Ownership{
		GroupID:        "g1",
		CreatorID:      "member1",
		ApproverID:     "approver1",
		ParticipantIDs: []string{"member2"},
		MemberIDs:      []string{"member1", "member2"},
	}
}

type testDeps struct {
	repo    *at_mocks.MockRepository
	store   *bl_mocks.MockStore
	records *at_mocks.MockRecordLinker
	owners  *at_mocks.MockOwnerResolver
	service *attachment.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := at_mocks.NewMockRepository(ctrl)
	store := bl_mocks.NewMockStore(ctrl)
	records := at_mocks.NewMockRecordLinker(ctrl)
	owners := at_mocks.NewMockOwnerResolver(ctrl)
	svc := attachment.NewService(repo, store, records, owners, 30*24*time.Hour, zap.NewNop())

	return ctrl, testDeps{
		repo: repo, store: store, records: records, owners: owners, service: svc,
		ctx: context.Background(),
	}
}

func upload(name string) attachment.FileUpload {
	return attachment.FileUpload{
		Name:      name,
		MediaType: "text/plain",
		Size:      5,
		Content:   strings.NewReader("hello"),
	}
}

func TestUploadBatch(t *testing.T) {
	bookingOwner := attachment.Owner{Kind: attachment.OwnerBooking, ID: "123"}
	recordOwner := attachment.Owner{Kind: attachment.OwnerRecord, ID: "rec1"}

	t.Run("booking upload sets expiry", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Put(deps.ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
		deps.repo.EXPECT().InsertAttachment(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a attachment.Attachment) (attachment.Attachment, error) {
				require.Equal(t, bookingOwner, a.Owner)
				require.Equal(t, "notes.txt", a.FileName)
				require.Equal(t, "member1", a.UploaderID)
				require.NotNil(t, a.ExpiresAt)
				return a, nil
			}).Times(1)

		got, err := deps.service.UploadBatch(deps.ctx, memberActor, bookingOwner, []attachment.FileUpload{upload("notes.txt")})

		require.Nil(t, err)
		require.Len(t, got, 1)
	})

	t.Run("record upload persists and links", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveRecordOwner(deps.ctx, "rec1").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Put(deps.ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
		deps.repo.EXPECT().InsertAttachment(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a attachment.Attachment) (attachment.Attachment, error) {
				require.Nil(t, a.ExpiresAt)
				return a, nil
			}).Times(1)
		deps.records.EXPECT().AppendAttachment(deps.ctx, "rec1", gomock.Any()).Return(nil).Times(1)

		got, err := deps.service.UploadBatch(deps.ctx, memberActor, recordOwner, []attachment.FileUpload{upload("summary.pdf")})

		require.Nil(t, err)
		require.Len(t, got, 1)
	})

	t.Run("actor outside the owner's circle", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UploadBatch(deps.ctx, strangerActor, bookingOwner, []attachment.FileUpload{upload("a.txt")})

		require.ErrorIs(t, err, attachment.ErrNotAllowed)
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(attachment.Ownership{}, bk.ErrBookingNotFound).Times(1)
		deps.store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UploadBatch(deps.ctx, memberActor, bookingOwner, []attachment.FileUpload{upload("a.txt")})

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})

	t.Run("missing owner blocks the overseer too", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(attachment.Ownership{}, bk.ErrBookingNotFound).Times(1)

		_, err := deps.service.UploadBatch(deps.ctx, overseerActor, bookingOwner, []attachment.FileUpload{upload("a.txt")})

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})

	t.Run("invalid owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service.UploadBatch(deps.ctx, memberActor, attachment.Owner{}, []attachment.FileUpload{upload("a.txt")})

		require.ErrorIs(t, err, attachment.ErrInvalidUpload)
	})

	t.Run("no files", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)

		_, err := deps.service.UploadBatch(deps.ctx, memberActor, bookingOwner, nil)

		require.ErrorIs(t, err, attachment.ErrInvalidUpload)
	})

	t.Run("nameless file", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)

		_, err := deps.service.UploadBatch(deps.ctx, memberActor, bookingOwner, []attachment.FileUpload{upload("")})

		require.ErrorIs(t, err, attachment.ErrInvalidUpload)
	})

	t.Run("blob write failure surfaces as store failure", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Put(deps.ctx, gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)
		deps.repo.EXPECT().InsertAttachment(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.UploadBatch(deps.ctx, memberActor, bookingOwner, []attachment.FileUpload{upload("a.txt")})

		require.ErrorIs(t, err, attachment.ErrStoreFailure)
	})

	t.Run("failure mid-batch deletes what was written", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		// First file goes through, second blob write fails; the first
		// file's metadata and blob must both be removed again.
		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Put(deps.ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
		deps.repo.EXPECT().InsertAttachment(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a attachment.Attachment) (attachment.Attachment, error) {
				return a, nil
			}).Times(1)
		deps.store.EXPECT().Put(deps.ctx, gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)

		deps.repo.EXPECT().DeleteAttachment(deps.ctx, gomock.Any()).Return(nil).Times(1)
		deps.store.EXPECT().Delete(deps.ctx, gomock.Any()).Return(nil).Times(1)

		_, err := deps.service.UploadBatch(deps.ctx, memberActor, bookingOwner,
			[]attachment.FileUpload{upload("a.txt"), upload("b.txt")})

		require.ErrorIs(t, err, attachment.ErrStoreFailure)
	})

	t.Run("metadata insert failure deletes the blob", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Put(deps.ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
		deps.repo.EXPECT().InsertAttachment(deps.ctx, gomock.Any()).Return(attachment.Attachment{}, errors.New("insert failed")).Times(1)
		deps.store.EXPECT().Delete(deps.ctx, gomock.Any()).Return(nil).Times(1)

		_, err := deps.service.UploadBatch(deps.ctx, memberActor, bookingOwner, []attachment.FileUpload{upload("a.txt")})

		require.Error(t, err)
	})
}

func TestListByOwner(t *testing.T) {
	bookingOwner := attachment.Owner{Kind: attachment.OwnerBooking, ID: "123"}

	t.Run("related actor lists", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		stored := []attachment.Attachment{{ID: "att1", Owner: bookingOwner}}

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.repo.EXPECT().ListAttachmentsByOwner(deps.ctx, bookingOwner).Return(stored, nil).Times(1)

		got, err := deps.service.ListByOwner(deps.ctx, memberActor, bookingOwner)

		require.Nil(t, err)
		require.Equal(t, stored, got)
	})

	t.Run("actor outside the owner's circle", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.repo.EXPECT().ListAttachmentsByOwner(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.ListByOwner(deps.ctx, strangerActor, bookingOwner)

		require.ErrorIs(t, err, attachment.ErrNotAllowed)
	})

	t.Run("overseer skips the relationship check", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.repo.EXPECT().ListAttachmentsByOwner(deps.ctx, bookingOwner).Return(nil, nil).Times(1)

		_, err := deps.service.ListByOwner(deps.ctx, overseerActor, bookingOwner)

		require.Nil(t, err)
	})

	t.Run("unknown owner", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(attachment.Ownership{}, bk.ErrBookingNotFound).Times(1)

		_, err := deps.service.ListByOwner(deps.ctx, memberActor, bookingOwner)

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestDownload(t *testing.T) {
	bookingOwner := attachment.Owner{Kind: attachment.OwnerBooking, ID: "123"}

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		a := attachment.Attachment{ID: "att1", Owner: bookingOwner, BlobKey: "key1", FileName: "notes.txt"}
		body := io.NopCloser(strings.NewReader("hello"))

		deps.repo.EXPECT().GetAttachmentByID(deps.ctx, "att1").Return(a, nil).Times(1)
		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Get(deps.ctx, "key1").Return(body, nil).Times(1)

		got, reader, err := deps.service.Download(deps.ctx, memberActor, "att1")

		require.Nil(t, err)
		require.Equal(t, a, got)
		require.NotNil(t, reader)
		reader.Close()
	})

	t.Run("actor outside the owner's circle", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		a := attachment.Attachment{ID: "att1", Owner: bookingOwner, BlobKey: "key1"}

		deps.repo.EXPECT().GetAttachmentByID(deps.ctx, "att1").Return(a, nil).Times(1)
		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)

		_, _, err := deps.service.Download(deps.ctx, strangerActor, "att1")

		require.ErrorIs(t, err, attachment.ErrNotAllowed)
	})

	t.Run("unknown attachment", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetAttachmentByID(deps.ctx, "att1").Return(attachment.Attachment{}, attachment.ErrAttachmentNotFound).Times(1)

		_, _, err := deps.service.Download(deps.ctx, memberActor, "att1")

		require.ErrorIs(t, err, attachment.ErrAttachmentNotFound)
	})

	t.Run("blob read failure", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		a := attachment.Attachment{ID: "att1", Owner: bookingOwner, BlobKey: "key1"}
		deps.repo.EXPECT().GetAttachmentByID(deps.ctx, "att1").Return(a, nil).Times(1)
		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.store.EXPECT().Get(deps.ctx, "key1").Return(nil, errors.New("read error")).Times(1)

		_, _, err := deps.service.Download(deps.ctx, memberActor, "att1")

		require.ErrorIs(t, err, attachment.ErrStoreFailure)
	})
}

func TestDelete(t *testing.T) {
	bookingOwner := attachment.Owner{Kind: attachment.OwnerBooking, ID: "123"}

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		a := attachment.Attachment{ID: "att1", Owner: bookingOwner, BlobKey: "key1"}
		deps.repo.EXPECT().GetAttachmentByID(deps.ctx, "att1").Return(a, nil).Times(1)
		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.repo.EXPECT().DeleteAttachment(deps.ctx, "att1").Return(nil).Times(1)
		deps.store.EXPECT().Delete(deps.ctx, "key1").Return(nil).Times(1)

		err := deps.service.Delete(deps.ctx, memberActor, "att1")

		require.Nil(t, err)
	})

	t.Run("actor outside the owner's circle", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		a := attachment.Attachment{ID: "att1", Owner: bookingOwner, BlobKey: "key1"}
		deps.repo.EXPECT().GetAttachmentByID(deps.ctx, "att1").Return(a, nil).Times(1)
		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.repo.EXPECT().DeleteAttachment(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.Delete(deps.ctx, strangerActor, "att1")

		require.ErrorIs(t, err, attachment.ErrNotAllowed)
	})

	t.Run("blob deletion failure is tolerated", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		a := attachment.Attachment{ID: "att1", Owner: bookingOwner, BlobKey: "key1"}
		deps.repo.EXPECT().GetAttachmentByID(deps.ctx, "att1").Return(a, nil).Times(1)
		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.repo.EXPECT().DeleteAttachment(deps.ctx, "att1").Return(nil).Times(1)
		deps.store.EXPECT().Delete(deps.ctx, "key1").Return(errors.New("blob gone")).Times(1)

		err := deps.service.Delete(deps.ctx, memberActor, "att1")

		require.Nil(t, err)
	})

	t.Run("metadata deletion failure aborts", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		a := attachment.Attachment{ID: "att1", Owner: bookingOwner, BlobKey: "key1"}
		deps.repo.EXPECT().GetAttachmentByID(deps.ctx, "att1").Return(a, nil).Times(1)
		deps.owners.EXPECT().ResolveBookingOwner(deps.ctx, "123").Return(relatedOwnership(), nil).Times(1)
		deps.repo.EXPECT().DeleteAttachment(deps.ctx, "att1").Return(errors.New("repo error")).Times(1)
		deps.store.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := deps.service.Delete(deps.ctx, memberActor, "att1")

		require.Error(t, err)
	})
}

func TestSweepExpired(t *testing.T) {

	t.Run("expired attachments are purged", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		expired := []attachment.Attachment{
			{ID: "att1", BlobKey: "key1"},
			{ID: "att2", BlobKey: "key2"},
		}

		deps.repo.EXPECT().ListExpiredAttachments(deps.ctx, gomock.Any()).Return(expired, nil).Times(1)
		deps.repo.EXPECT().DeleteAttachment(deps.ctx, "att1").Return(nil).Times(1)
		deps.store.EXPECT().Delete(deps.ctx, "key1").Return(nil).Times(1)
		deps.repo.EXPECT().DeleteAttachment(deps.ctx, "att2").Return(nil).Times(1)
		deps.store.EXPECT().Delete(deps.ctx, "key2").Return(nil).Times(1)

		n, err := deps.service.SweepExpired(deps.ctx)

		require.Nil(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("metadata failure skips the attachment", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		expired := []attachment.Attachment{
			{ID: "att1", BlobKey: "key1"},
			{ID: "att2", BlobKey: "key2"},
		}

		deps.repo.EXPECT().ListExpiredAttachments(deps.ctx, gomock.Any()).Return(expired, nil).Times(1)
		deps.repo.EXPECT().DeleteAttachment(deps.ctx, "att1").Return(errors.New("repo error")).Times(1)
		deps.repo.EXPECT().DeleteAttachment(deps.ctx, "att2").Return(nil).Times(1)
		deps.store.EXPECT().Delete(deps.ctx, "key2").Return(nil).Times(1)

		n, err := deps.service.SweepExpired(deps.ctx)

		require.Nil(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("nothing expired", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().ListExpiredAttachments(deps.ctx, gomock.Any()).Return(nil, nil).Times(1)

		n, err := deps.service.SweepExpired(deps.ctx)

		require.Nil(t, err)
		require.Equal(t, 0, n)
	})
}
