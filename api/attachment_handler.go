package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetboard/meeting-booking-backend/attachment"
	"github.com/meetboard/meeting-booking-backend/auth"
	bk "github.com/meetboard/meeting-booking-backend/booking"
	"github.com/meetboard/meeting-booking-backend/record"
)

type AttachmentService interface {
	UploadBatch(ctx context.Context, actor auth.Actor, owner attachment.Owner, files []attachment.FileUpload) ([]attachment.Attachment, error)
	ListByOwner(ctx context.Context, actor auth.Actor, owner attachment.Owner) ([]attachment.Attachment, error)
	Download(ctx context.Context, actor auth.Actor, id string) (attachment.Attachment, io.ReadCloser, error)
	Delete(ctx context.Context, actor auth.Actor, id string) error
}

type AttachmentHandler struct {
	service AttachmentService
}

func NewAttachmentHandler(service AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

func (h *AttachmentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/:ownerKind/:ownerId", h.ListByOwner)
	rg.POST("/:ownerKind/:ownerId", h.Upload)
	rg.GET("/file/:id", h.Download)
	rg.DELETE("/file/:id", h.Delete)
}

func ownerFrom(c *gin.Context) (attachment.Owner, bool) {
	owner := attachment.Owner{
		Kind: attachment.OwnerKind(c.Param("ownerKind")),
		ID:   c.Param("ownerId"),
	}

	if !owner.Kind.Valid() || owner.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown attachment owner"})
		return attachment.Owner{}, false
	}

	return owner, true
}

func (h *AttachmentHandler) ListByOwner(c *gin.Context) {
	owner, ok := ownerFrom(c)

	if !ok {
		return
	}

	attachments, err := h.service.ListByOwner(c.Request.Context(), actorFrom(c), owner)

	if err != nil {
		c.Error(err)
		respondAttachmentError(c, err, "failed to list attachments")
		return
	}

	if attachments == nil {
		attachments = []attachment.Attachment{}
	}

	c.IndentedJSON(http.StatusOK, attachments)
}

func (h *AttachmentHandler) Upload(c *gin.Context) {
	owner, ok := ownerFrom(c)

	if !ok {
		return
	}

	actor := actorFrom(c)

	form, err := c.MultipartForm()

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse multipart form"})
		return
	}

	var files []attachment.FileUpload

	for _, header := range form.File["files"] {
		f, err := header.Open()

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
			return
		}

		files = append(files, attachment.FileUpload{
			Name:      header.Filename,
			MediaType: header.Header.Get("Content-Type"),
			Size:      header.Size,
			Content:   f,
		})
	}

	uploaded, err := h.service.UploadBatch(c.Request.Context(), actor, owner, files)

	if err != nil {
		c.Error(err)
		respondAttachmentError(c, err, "failed to store attachments")
		return
	}

	c.JSON(http.StatusCreated, uploaded)
}

func (h *AttachmentHandler) Download(c *gin.Context) {
	a, data, err := h.service.Download(c.Request.Context(), actorFrom(c), c.Param("id"))

	if err != nil {
		c.Error(err)
		respondAttachmentError(c, err, "failed to download attachment")
		return
	}

	defer data.Close()

	c.Header("Content-Disposition", `attachment; filename="`+a.FileName+`"`)
	c.DataFromReader(http.StatusOK, a.Size, a.MediaType, data, nil)
}

func (h *AttachmentHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), actorFrom(c), c.Param("id"))

	if err != nil {
		c.Error(err)
		respondAttachmentError(c, err, "failed to delete attachment")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "attachment deleted"})
}

func respondAttachmentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, attachment.ErrInvalidUpload):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, attachment.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, attachment.ErrAttachmentNotFound),
		errors.Is(err, bk.ErrBookingNotFound),
		errors.Is(err, bk.ErrGroupNotFound),
		errors.Is(err, record.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, attachment.ErrStoreFailure):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
