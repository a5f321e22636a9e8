package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/handlers"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/middleware"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	createBooking "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/usecase/create_booking"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"barberId":1,"serviceId":10,"startTime":"2026-01-20T10:00","customerName":"Ali Veli","customerPhone":"05321234567"}`

func serve(t *testing.T, uc *fakeUseCase, body string, userID string) *httptest.ResponseRecorder {
	t.Helper()

	h := middleware.OptionalAuth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if userID != "" {
		r.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:              5,
		BarberID:        1,
		ServiceID:       10,
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		DurationMinutes: 30,
	}}

	rec := serve(t, uc, validBody, "7")

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got.CustomerID)
	assert.Equal(t, int64(7), *uc.got.CustomerID)
	assert.Equal(t, start, uc.got.StartTime)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.ID)
	assert.Equal(t, "2026-01-20T10:30", body.EndTime)
}

func TestHandle_GuestBooking(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{ID: 1}}

	rec := serve(t, uc, validBody, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, uc.got.CustomerID)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{`},
		{name: "unknown field", body: `{"barberId":1,"extra":true}`},
		{name: "date only", body: `{"barberId":1,"serviceId":10,"startTime":"2026-01-20","customerName":"A","customerPhone":"1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(t, uc, tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	conflict := &domain.StaffConflictError{Span: domain.Interval{
		Start: time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 20, 10, 30, 0, 0, time.UTC),
	}}

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "closed day", err: domain.ErrClosedDay, wantCode: http.StatusUnprocessableEntity, wantBody: "closed_day"},
		{name: "outside hours", err: domain.ErrOutsideBusinessHours, wantCode: http.StatusUnprocessableEntity, wantBody: "outside_business_hours"},
		{name: "exceeds closing", err: domain.ErrExceedsClosingTime, wantCode: http.StatusUnprocessableEntity, wantBody: "exceeds_closing_time"},
		{name: "staff conflict", err: conflict, wantCode: http.StatusConflict, wantBody: "staff_conflict"},
		{name: "bare staff conflict", err: domain.ErrStaffConflict, wantCode: http.StatusConflict, wantBody: "staff_conflict"},
		{name: "daily limit", err: domain.ErrDailyLimitExceeded, wantCode: http.StatusConflict, wantBody: "daily_limit_exceeded"},
		{name: "past time", err: domain.ErrPastTime, wantCode: http.StatusUnprocessableEntity, wantBody: "past_time"},
		{name: "barber unavailable", err: domain.ErrBarberUnavailable, wantCode: http.StatusConflict, wantBody: "barber_unavailable"},
		{name: "barber not found", err: createBooking.ErrBarberNotFound, wantCode: http.StatusNotFound, wantBody: handlers.CodeNotFound},
		{name: "service not found", err: createBooking.ErrServiceNotFound, wantCode: http.StatusNotFound, wantBody: handlers.CodeNotFound},
		{name: "invalid phone", err: createBooking.ErrInvalidPhone, wantCode: http.StatusBadRequest, wantBody: handlers.CodeBadRequest},
		{name: "invalid input", err: fmt.Errorf("%w: name", createBooking.ErrInvalidInput), wantCode: http.StatusBadRequest, wantBody: handlers.CodeBadRequest},
		{name: "infrastructure", err: fmt.Errorf("%w: db down", createBooking.ErrInternal), wantCode: http.StatusInternalServerError, wantBody: handlers.CodeInternal},
		{name: "unknown", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: handlers.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeUseCase{err: tt.err}, validBody, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body.Code)
		})
	}
}

func TestHandle_ConflictDetails(t *testing.T) {
	conflict := &domain.StaffConflictError{Span: domain.Interval{
		Start: time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 20, 10, 30, 0, 0, time.UTC),
	}}

	rec := serve(t, &fakeUseCase{err: conflict}, validBody, "")

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-01-20T10:00", body.Details["conflictStart"])
	assert.Equal(t, "2026-01-20T10:30", body.Details["conflictEnd"])
}
