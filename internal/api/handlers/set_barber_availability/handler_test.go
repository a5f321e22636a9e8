package set_barber_availability

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/catalog"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/catalog/models"
)

type fakeService struct {
	err error
}

func (f *fakeService) SetBarberAvailability(_ context.Context, _ int64, req *models.SetAvailabilityRequest) error {
	if f.err != nil {
		return f.err
	}
	if req.IsAvailable == nil {
		return fmt.Errorf("%w: isAvailable is required", catalog.ErrInvalidInput)
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		err  error
		want int
	}{
		{name: "ok", path: "/api/v1/admin/barbers/2/availability", body: `{"isAvailable":false}`, want: http.StatusNoContent},
		{name: "missing flag", path: "/api/v1/admin/barbers/2/availability", body: `{}`, want: http.StatusBadRequest},
		{name: "bad body", path: "/api/v1/admin/barbers/2/availability", body: `nope`, want: http.StatusBadRequest},
		{name: "bad id", path: "/api/v1/admin/barbers/two/availability", body: `{"isAvailable":true}`, want: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/admin/barbers/9/availability", body: `{"isAvailable":true}`, err: catalog.ErrBarberNotFound, want: http.StatusNotFound},
		{name: "internal", path: "/api/v1/admin/barbers/9/availability", body: `{"isAvailable":true}`, err: catalog.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/api/v1/admin/barbers/{barberId}/availability",
				NewHandler(&fakeService{err: tt.err}, nopLogger{}).Handle).Methods(http.MethodPatch)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
