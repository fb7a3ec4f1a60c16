package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/meetboard/meeting-booking-backend/api"
	mock_api "github.com/meetboard/meeting-booking-backend/api/mocks"
	"github.com/meetboard/meeting-booking-backend/auth"
	bk "github.com/meetboard/meeting-booking-backend/booking"
	"github.com/meetboard/meeting-booking-backend/record"
)

var testActor = auth.Actor{ID: "member1", Name: "Member One", Role: auth.RoleMember, GroupID: "g1"}

func setActorInContext(actor auth.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

type handlerMocks struct {
	service     *mock_api.MockBookingService
	attachments *mock_api.MockAttachmentUploader
	tokens      *mock_api.MockResponseTokenParser
}

func setupRouterWithActor(t *testing.T, actor auth.Actor) (*gin.Engine, *gomock.Controller, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()

	mocks := handlerMocks{
		service:     mock_api.NewMockBookingService(ctrl),
		attachments: mock_api.NewMockAttachmentUploader(ctrl),
		tokens:      mock_api.NewMockResponseTokenParser(ctrl),
	}

	handler := api.NewBookingHandler(mocks.service, mocks.attachments, mocks.tokens)
	handler.RegisterPublic(router.Group("/api/v1/bookings"))

	rg := router.Group("/api/v1/bookings")
	rg.Use(setActorInContext(actor))
	handler.Register(rg)

	return router, ctrl, mocks
}

func setupRouter(t *testing.T) (*gin.Engine, *gomock.Controller, handlerMocks) {
	return setupRouterWithActor(t, testActor)
}

func TestListBookings(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		bookings := []bk.Booking{{ID: "1", Title: "sprint planning", Status: bk.StatusPending}}
		bookingsJson, _ := json.MarshalIndent(bookings, "", "    ")
		mocks.service.EXPECT().ListBookings(gomock.Any(), testActor, bk.ListOptions{}).Return(bookings, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bookingsJson), w.Body.String())
	})

	t.Run("query flags map to options", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		opts := bk.ListOptions{Mine: true, IncludeHistory: true}
		mocks.service.EXPECT().ListBookings(gomock.Any(), testActor, opts).Return(nil, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings?mine=true&includeHistory=true", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("service error", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().ListBookings(gomock.Any(), testActor, bk.ListOptions{}).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve bookings"}`, w.Body.String())
	})
}

func TestCreateBookingHandler(t *testing.T) {
	input := bk.CreateInput{
		Title:     "sprint planning",
		Date:      "2030-05-20",
		StartTime: "10:00",
		EndTime:   "11:00",
		Kind:      bk.KindRemote,
		GroupID:   "g1",
	}

	t.Run("created", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		inserted := bk.Booking{ID: "123", Title: "sprint planning", Status: bk.StatusPending}
		mocks.service.EXPECT().CreateBooking(gomock.Any(), testActor, input).Return(inserted, nil).Times(1)

		body, _ := json.Marshal(input)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("validation error", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().CreateBooking(gomock.Any(), testActor, gomock.Any()).Return(bk.Booking{}, bk.ErrValidation).Times(1)

		body, _ := json.Marshal(input)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("schedule conflict maps to 409", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().CreateBooking(gomock.Any(), testActor, gomock.Any()).Return(bk.Booking{}, bk.ErrScheduleConflict).Times(1)

		body, _ := json.Marshal(input)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
	})
}

func TestGetByID(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", Title: "sprint planning"}
		bJson, _ := json.MarshalIndent(b, "", "    ")
		mocks.service.EXPECT().FindBookingByID(gomock.Any(), testActor, "123").Return(b, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(bJson), w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().FindBookingByID(gomock.Any(), testActor, "123").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().FindBookingByID(gomock.Any(), testActor, "123").Return(bk.Booking{}, bk.ErrNotAllowed).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestApprove(t *testing.T) {
	approver := auth.Actor{ID: "approver1", Role: auth.RoleApprover, GroupID: "g1"}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupRouterWithActor(t, approver)
		defer ctrl.Finish()

		mocks.service.EXPECT().ApproveBooking(gomock.Any(), approver, "123").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/approve", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"booking approved"}`, w.Body.String())
	})

	t.Run("invalid state maps to 409", func(t *testing.T) {
		router, ctrl, mocks := setupRouterWithActor(t, approver)
		defer ctrl.Finish()

		mocks.service.EXPECT().ApproveBooking(gomock.Any(), approver, "123").Return(bk.ErrInvalidState).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/approve", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
	})
}

func TestReject(t *testing.T) {
	approver := auth.Actor{ID: "approver1", Role: auth.RoleApprover, GroupID: "g1"}

	router, ctrl, mocks := setupRouterWithActor(t, approver)
	defer ctrl.Finish()

	mocks.service.EXPECT().RejectBooking(gomock.Any(), approver, "123", "room unavailable").Return(nil).Times(1)

	body, _ := json.Marshal(map[string]string{"reason": "room unavailable"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/reject", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"booking rejected"}`, w.Body.String())
}

func TestCancel(t *testing.T) {
	router, ctrl, mocks := setupRouter(t)
	defer ctrl.Finish()

	mocks.service.EXPECT().CancelBooking(gomock.Any(), testActor, "123", "sick").Return(nil).Times(1)

	body, _ := json.Marshal(map[string]string{"reason": "sick"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/cancel", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"booking cancelled"}`, w.Body.String())
}

func TestComplete(t *testing.T) {
	approver := auth.Actor{ID: "approver1", Role: auth.RoleApprover, GroupID: "g1"}
	input := bk.CompleteInput{Summary: "went well", Homework: "chapter 3"}

	t.Run("created", func(t *testing.T) {
		router, ctrl, mocks := setupRouterWithActor(t, approver)
		defer ctrl.Finish()

		rec := record.Record{ID: "rec1", BookingID: "123", Summary: "went well", AttachmentIDs: []string{}}
		mocks.service.EXPECT().CompleteBooking(gomock.Any(), approver, "123", input).Return(rec, nil).Times(1)

		body, _ := json.Marshal(input)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/complete", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)
	})

	t.Run("record exists maps to 409", func(t *testing.T) {
		router, ctrl, mocks := setupRouterWithActor(t, approver)
		defer ctrl.Finish()

		mocks.service.EXPECT().CompleteBooking(gomock.Any(), approver, "123", input).Return(record.Record{}, bk.ErrRecordExists).Times(1)

		body, _ := json.Marshal(input)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/complete", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
	})
}

func TestProposeRescheduleHandler(t *testing.T) {
	approver := auth.Actor{ID: "approver1", Role: auth.RoleApprover, GroupID: "g1"}
	input := bk.ProposalInput{Date: "2030-05-22", StartTime: "09:00", EndTime: "10:00", Reason: "double booked"}

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupRouterWithActor(t, approver)
		defer ctrl.Finish()

		mocks.service.EXPECT().ProposeReschedule(gomock.Any(), approver, "123", input).Return(nil).Times(1)

		body, _ := json.Marshal(input)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/reschedule", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("outstanding proposal maps to 409", func(t *testing.T) {
		router, ctrl, mocks := setupRouterWithActor(t, approver)
		defer ctrl.Finish()

		mocks.service.EXPECT().ProposeReschedule(gomock.Any(), approver, "123", input).Return(bk.ErrProposalPending).Times(1)

		body, _ := json.Marshal(input)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/bookings/123/reschedule", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
	})
}

func TestRespondRescheduleHandler(t *testing.T) {

	t.Run("accept", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().RespondReschedule(gomock.Any(), testActor, "123", true, "").Return(nil).Times(1)

		body, _ := json.Marshal(map[string]any{"accepted": true})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/reschedule", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("no proposal maps to 409", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		mocks.service.EXPECT().RespondReschedule(gomock.Any(), testActor, "123", false, "still clashes").Return(bk.ErrNoProposal).Times(1)

		body, _ := json.Marshal(map[string]any{"accepted": false, "reason": "still clashes"})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/123/reschedule", bytes.NewReader(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
	})
}

func TestRespondDeepLink(t *testing.T) {

	t.Run("accept link", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		claims := auth.ResponseClaims{BookingID: "123", Action: auth.ResponseAccept}
		claims.Subject = "member1"
		linkActor := auth.Actor{ID: "member1", Role: auth.RoleMember}

		mocks.tokens.EXPECT().ParseResponseToken("tok").Return(claims, nil).Times(1)
		mocks.service.EXPECT().RespondReschedule(gomock.Any(), linkActor, "123", true, "").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/respond?token=tok", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"new time accepted"}`, w.Body.String())
	})

	t.Run("decline link", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		claims := auth.ResponseClaims{BookingID: "123", Action: auth.ResponseDecline}
		claims.Subject = "member1"
		linkActor := auth.Actor{ID: "member1", Role: auth.RoleMember}

		mocks.tokens.EXPECT().ParseResponseToken("tok").Return(claims, nil).Times(1)
		mocks.service.EXPECT().RespondReschedule(gomock.Any(), linkActor, "123", false, "").Return(nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/respond?token=tok", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"message":"new time declined"}`, w.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		router, ctrl, _ := setupRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/respond", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		router, ctrl, mocks := setupRouter(t)
		defer ctrl.Finish()

		mocks.tokens.EXPECT().ParseResponseToken("bad").Return(auth.ResponseClaims{}, auth.ErrInvalidToken).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/bookings/respond?token=bad", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})
}
