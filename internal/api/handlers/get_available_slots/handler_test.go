package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/api/middleware"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	getAvailableSlots "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)
	r.HandleFunc("/api/v1/barbers/{barberId}/available-slots", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func get(router http.Handler, url, userID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, url, nil)
	if userID != "" {
		r.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:                   time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
		BarberID:               1,
		ServiceID:              10,
		HasExistingAppointment: true,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "10:00", Reason: domain.SlotReasonCollision},
			{StartTime: "10:15", IsAvailable: true},
		},
	}}

	rec := get(newRouter(uc), "/api/v1/barbers/1/available-slots?serviceId=10&date=2026-01-20", "7")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, int64(1), uc.got.BarberID)
	require.NotNil(t, uc.got.CustomerID)
	assert.Equal(t, int64(7), *uc.got.CustomerID)

	assert.JSONEq(t, `{
		"date": "2026-01-20",
		"barberId": 1,
		"serviceId": 10,
		"hasExistingAppointment": true,
		"slots": [
			{"time": "10:00", "isAvailable": false, "reason": "collision"},
			{"time": "10:15", "isAvailable": true}
		]
	}`, rec.Body.String())
}

func TestHandle_ClosedDayReturnsEmptyArray(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:  time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC),
		Slots: []getAvailableSlots.Slot{},
	}}

	rec := get(newRouter(uc), "/api/v1/barbers/1/available-slots?serviceId=10&date=2026-01-25", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.CustomerID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{}, body["slots"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		url  string
		err  error
		want int
	}{
		{name: "bad barber id", url: "/api/v1/barbers/x/available-slots?serviceId=10&date=2026-01-20", want: http.StatusBadRequest},
		{name: "missing service", url: "/api/v1/barbers/1/available-slots?date=2026-01-20", want: http.StatusBadRequest},
		{name: "bad service", url: "/api/v1/barbers/1/available-slots?serviceId=a&date=2026-01-20", want: http.StatusBadRequest},
		{name: "missing date", url: "/api/v1/barbers/1/available-slots?serviceId=10", want: http.StatusBadRequest},
		{name: "bad date", url: "/api/v1/barbers/1/available-slots?serviceId=10&date=20-01-2026", want: http.StatusBadRequest},
		{name: "past date", url: "/api/v1/barbers/1/available-slots?serviceId=10&date=2026-01-20", err: getAvailableSlots.ErrInvalidDate, want: http.StatusBadRequest},
		{name: "barber not found", url: "/api/v1/barbers/1/available-slots?serviceId=10&date=2026-01-20", err: getAvailableSlots.ErrBarberNotFound, want: http.StatusNotFound},
		{name: "service not found", url: "/api/v1/barbers/1/available-slots?serviceId=10&date=2026-01-20", err: getAvailableSlots.ErrServiceNotFound, want: http.StatusNotFound},
		{name: "internal", url: "/api/v1/barbers/1/available-slots?serviceId=10&date=2026-01-20", err: fmt.Errorf("%w: db", getAvailableSlots.ErrInternal), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(newRouter(&fakeUseCase{err: tt.err}), tt.url, "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
