package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvlko/EventBookingService/internal/api/middleware"
	"github.com/mvlko/EventBookingService/internal/domain"
	createBooking "github.com/mvlko/EventBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func bookedSlot() *domain.TimeSlot {
	start := time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC)
	return &domain.TimeSlot{
		ID:         1,
		CategoryID: 2,
		Title:      "Консультация",
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
		Booking: &domain.BookingInfo{
			ID:       10,
			UserID:   42,
			UserName: "Иван Петров",
			BookedAt: start.Add(-24 * time.Hour),
		},
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{Slot: bookedSlot()}}

	rec := doRequest(t, uc, "42", `{"timeslotId": 1}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.TimeSlotID)
	assert.Equal(t, int64(42), uc.got.UserID)

	var resp SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.False(t, resp.IsAvailable)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, int64(42), resp.Booking.UserID)
}

func TestHandle_Conflict(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotAlreadyBooked}

	rec := doRequest(t, uc, "42", `{"timeslotId": 1}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_SlotNotFound(t *testing.T) {
	uc := &fakeUseCase{err: createBooking.ErrSlotNotFound}

	rec := doRequest(t, uc, "42", `{"timeslotId": 99}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_Unauthorized(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, "", `{"timeslotId": 1}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := doRequest(t, uc, "42", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
