package get_day_board

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/appointments/models"
)

type fakeService struct {
	got *models.GetDayBoardRequest
}

func (f *fakeService) GetDayBoard(_ context.Context, req *models.GetDayBoardRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: 1}}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments?date=2026-01-20&barberId=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.Date)
	assert.Equal(t, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), *svc.got.Date)
	assert.Equal(t, int64(2), *svc.got.BarberID)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.Date)
	assert.Nil(t, svc.got.BarberID)

	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments?date=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
