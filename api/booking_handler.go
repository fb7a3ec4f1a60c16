package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meetboard/meeting-booking-backend/attachment"
	"github.com/meetboard/meeting-booking-backend/auth"
	bk "github.com/meetboard/meeting-booking-backend/booking"
	"github.com/meetboard/meeting-booking-backend/record"
)

type BookingService interface {
	CreateBooking(ctx context.Context, actor auth.Actor, in bk.CreateInput) (bk.Booking, error)
	FindBookingByID(ctx context.Context, actor auth.Actor, id string) (bk.Booking, error)
	ListBookings(ctx context.Context, actor auth.Actor, opts bk.ListOptions) ([]bk.Booking, error)
	ModifyBooking(ctx context.Context, actor auth.Actor, id string, in bk.UpdateInput) (bk.Booking, error)
	ApproveBooking(ctx context.Context, actor auth.Actor, id string) error
	RejectBooking(ctx context.Context, actor auth.Actor, id, reason string) error
	CancelBooking(ctx context.Context, actor auth.Actor, id, reason string) error
	CompleteBooking(ctx context.Context, actor auth.Actor, id string, in bk.CompleteInput) (record.Record, error)
	ProposeReschedule(ctx context.Context, actor auth.Actor, id string, in bk.ProposalInput) error
	RespondReschedule(ctx context.Context, actor auth.Actor, id string, accepted bool, reason string) error
}

// AttachmentUploader stores the files optionally carried by a completion
// payload, owned by the freshly created record.
type AttachmentUploader interface {
	UploadBatch(ctx context.Context, actor auth.Actor, owner attachment.Owner, files []attachment.FileUpload) ([]attachment.Attachment, error)
}

// ResponseTokenParser validates the signed deep-link tokens of reschedule
// notifications.
type ResponseTokenParser interface {
	ParseResponseToken(token string) (auth.ResponseClaims, error)
}

type BookingHandler struct {
	service     BookingService
	attachments AttachmentUploader
	tokens      ResponseTokenParser
}

func NewBookingHandler(service BookingService, attachments AttachmentUploader, tokens ResponseTokenParser) *BookingHandler {
	return &BookingHandler{
		service:     service,
		attachments: attachments,
		tokens:      tokens,
	}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Modify)
	rg.PUT("/:id/approve", h.Approve)
	rg.PUT("/:id/reject", h.Reject)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.PUT("/:id/complete", h.Complete)
	rg.POST("/:id/reschedule", h.ProposeReschedule)
	rg.PUT("/:id/reschedule", h.RespondReschedule)
}

// RegisterPublic adds the deep-link response route. The signed token is the
// only authentication.
func (h *BookingHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/respond", h.RespondDeepLink)
}

func actorFrom(c *gin.Context) auth.Actor {
	return c.MustGet("actor").(auth.Actor)
}

func (h *BookingHandler) List(c *gin.Context) {
	opts := bk.ListOptions{
		Mine:           c.Query("mine") == "true",
		IncludeHistory: c.Query("includeHistory") == "true",
	}

	bookings, err := h.service.ListBookings(c.Request.Context(), actorFrom(c), opts)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to retrieve bookings")
		return
	}

	if bookings == nil {
		bookings = []bk.Booking{}
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	booking, err := h.service.FindBookingByID(c.Request.Context(), actorFrom(c), id)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to fetch booking")
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var in bk.CreateInput

	if err := c.BindJSON(&in); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), actorFrom(c), in)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Modify(c *gin.Context) {
	var in bk.UpdateInput

	if err := c.BindJSON(&in); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.ModifyBooking(c.Request.Context(), actorFrom(c), c.Param("id"), in)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to modify booking")
		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

type reasonBody struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Approve(c *gin.Context) {
	err := h.service.ApproveBooking(c.Request.Context(), actorFrom(c), c.Param("id"))

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to approve booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking approved"})
}

func (h *BookingHandler) Reject(c *gin.Context) {
	var body reasonBody
	_ = c.ShouldBindJSON(&body)

	err := h.service.RejectBooking(c.Request.Context(), actorFrom(c), c.Param("id"), body.Reason)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to reject booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking rejected"})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	var body reasonBody
	_ = c.ShouldBindJSON(&body)

	err := h.service.CancelBooking(c.Request.Context(), actorFrom(c), c.Param("id"), body.Reason)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	actor := actorFrom(c)
	id := c.Param("id")

	in, files, err := bindCompletePayload(c)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse completion payload"})
		return
	}

	rec, err := h.service.CompleteBooking(c.Request.Context(), actor, id, in)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to complete booking")
		return
	}

	if len(files) != 0 {
		owner := attachment.Owner{Kind: attachment.OwnerRecord, ID: rec.ID}

		if uploaded, err := h.attachments.UploadBatch(c.Request.Context(), actor, owner, files); err != nil {
			c.Error(err)
			c.JSON(http.StatusBadGateway, gin.H{
				"error":  "booking completed but storing files failed",
				"record": rec,
			})
			return
		} else {
			for _, a := range uploaded {
				rec.AttachmentIDs = append(rec.AttachmentIDs, a.ID)
			}
		}
	}

	c.JSON(http.StatusCreated, rec)
}

// bindCompletePayload accepts either a JSON body or a multipart form carrying
// the summary fields plus files.
func bindCompletePayload(c *gin.Context) (bk.CompleteInput, []attachment.FileUpload, error) {
	if c.ContentType() != "multipart/form-data" {
		var in bk.CompleteInput
		if err := c.BindJSON(&in); err != nil {
			return bk.CompleteInput{}, nil, err
		}
		return in, nil, nil
	}

	form, err := c.MultipartForm()

	if err != nil {
		return bk.CompleteInput{}, nil, err
	}

	in := bk.CompleteInput{
		Summary:         c.PostForm("summary"),
		Homework:        c.PostForm("homework"),
		NextMeetingDate: c.PostForm("nextMeetingDate"),
	}

	var files []attachment.FileUpload

	for _, header := range form.File["files"] {
		f, err := header.Open()

		if err != nil {
			return bk.CompleteInput{}, nil, err
		}

		files = append(files, attachment.FileUpload{
			Name:      header.Filename,
			MediaType: header.Header.Get("Content-Type"),
			Size:      header.Size,
			Content:   f,
		})
	}

	return in, files, nil
}

func (h *BookingHandler) ProposeReschedule(c *gin.Context) {
	var in bk.ProposalInput

	if err := c.BindJSON(&in); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.ProposeReschedule(c.Request.Context(), actorFrom(c), c.Param("id"), in)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to propose reschedule")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reschedule proposed"})
}

type respondBody struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason"`
}

func (h *BookingHandler) RespondReschedule(c *gin.Context) {
	var body respondBody

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.RespondReschedule(c.Request.Context(), actorFrom(c), c.Param("id"), body.Accepted, body.Reason)

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to respond to reschedule")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "reschedule response recorded"})
}

// RespondDeepLink answers a reschedule proposal through one of the signed
// links carried by the notification.
func (h *BookingHandler) RespondDeepLink(c *gin.Context) {
	token := c.Query("token")

	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}

	claims, err := h.tokens.ParseResponseToken(token)

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	actor := auth.Actor{ID: claims.Subject, Role: auth.RoleMember}
	accepted := claims.Action == auth.ResponseAccept

	err = h.service.RespondReschedule(c.Request.Context(), actor, claims.BookingID, accepted, c.Query("reason"))

	if err != nil {
		c.Error(err)
		respondError(c, err, "failed to respond to reschedule")
		return
	}

	if accepted {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "new time accepted"})
	} else {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "new time declined"})
	}
}

// respondError maps domain errors onto HTTP statuses; unknown errors fall
// back to a 500 with a generic message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, bk.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrBookingNotFound),
		errors.Is(err, bk.ErrGroupNotFound),
		errors.Is(err, record.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bk.ErrInvalidState),
		errors.Is(err, bk.ErrScheduleConflict),
		errors.Is(err, bk.ErrProposalPending),
		errors.Is(err, bk.ErrNoProposal),
		errors.Is(err, bk.ErrRecordExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
