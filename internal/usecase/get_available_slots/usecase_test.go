package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	barberRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/barber"
	serviceRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/service"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/clock"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/ptr"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/types"
)

type fakeAppointments struct {
	appointments []*domain.Appointment
	countErr     error
}

func (f *fakeAppointments) ListByBarberAndDate(_ context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if a.BarberID == barberID && domain.SameDay(a.StartTime, date) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointments) CountByCustomerAndDate(_ context.Context, customerID int64, date time.Time) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, a := range f.appointments {
		if a.IsOwnedBy(customerID) && domain.SameDay(a.StartTime, date) {
			n++
		}
	}
	return n, nil
}

type fakeBarbers struct{}

func (fakeBarbers) GetByID(_ context.Context, id int64) (*domain.Barber, error) {
	switch id {
	case 1:
		return &domain.Barber{ID: 1, FullName: "Ahmet Usta", IsAvailable: true}, nil
	case 2:
		return &domain.Barber{ID: 2, FullName: "Mehmet Usta", IsAvailable: false}, nil
	default:
		return nil, barberRepo.ErrBarberNotFound
	}
}

type fakeServices struct{}

func (fakeServices) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if id != 10 {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: 10, Name: "Saç Kesimi", Price: 250, DurationMinutes: 30}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2026-01-20 вторник, 2026-01-25 воскресенье
var (
	tuesday = time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	sunday  = time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
)

func newUseCase(repo *fakeAppointments, now time.Time) *UseCase {
	uc := NewUseCase(repo, fakeBarbers{}, fakeServices{}, nopLogger{})
	uc.timeProvider = clock.NewFixed(now)
	return uc
}

func slotAt(t *testing.T, slots []Slot, at types.TimeString) Slot {
	t.Helper()
	for _, s := range slots {
		if s.StartTime == at {
			return s
		}
	}
	t.Fatalf("slot %s not found", at)
	return Slot{}
}

func TestExecute_ComputesDay(t *testing.T) {
	repo := &fakeAppointments{appointments: []*domain.Appointment{
		{ID: 1, BarberID: 1, StartTime: time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC), DurationMinutes: 30},
	}}
	uc := newUseCase(repo, time.Date(2026, 1, 19, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 10, Date: tuesday})
	require.NoError(t, err)

	assert.Len(t, resp.Slots, 48)
	assert.False(t, resp.HasExistingAppointment)
	assert.Equal(t, Slot{StartTime: "10:00", Reason: domain.SlotReasonCollision}, slotAt(t, resp.Slots, "10:00"))
	assert.Equal(t, domain.SlotReasonCollision, slotAt(t, resp.Slots, "10:15").Reason)
	assert.True(t, slotAt(t, resp.Slots, "10:30").IsAvailable)
	assert.True(t, slotAt(t, resp.Slots, "21:30").IsAvailable)
	assert.Equal(t, domain.SlotReasonExceedsTime, slotAt(t, resp.Slots, "21:45").Reason)
}

func TestExecute_Today(t *testing.T) {
	uc := newUseCase(&fakeAppointments{}, time.Date(2026, 1, 20, 12, 10, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 10, Date: tuesday})
	require.NoError(t, err)

	assert.Equal(t, domain.SlotReasonPastTime, slotAt(t, resp.Slots, "12:00").Reason)
	assert.True(t, slotAt(t, resp.Slots, "12:15").IsAvailable)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newUseCase(&fakeAppointments{}, time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, ServiceID: 10, Date: sunday})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestExecute_HasExistingAppointment(t *testing.T) {
	repo := &fakeAppointments{appointments: []*domain.Appointment{
		{ID: 1, BarberID: 2, CustomerID: ptr.Ptr(int64(7)), StartTime: time.Date(2026, 1, 20, 15, 0, 0, 0, time.UTC), DurationMinutes: 30},
	}}
	uc := newUseCase(repo, time.Date(2026, 1, 19, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: ptr.Ptr(int64(7)), BarberID: 1, ServiceID: 10, Date: tuesday})
	require.NoError(t, err)
	assert.True(t, resp.HasExistingAppointment)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)

	resp, err = uc.Execute(context.Background(), &Request{CustomerID: ptr.Ptr(int64(8)), BarberID: 1, ServiceID: 10, Date: tuesday})
	require.NoError(t, err)
	assert.False(t, resp.HasExistingAppointment)
	assert.Len(t, resp.Slots, 48)
}

func TestExecute_UnavailableBarberHasNoBookableSlots(t *testing.T) {
	uc := newUseCase(&fakeAppointments{}, time.Date(2026, 1, 19, 12, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 2, ServiceID: 10, Date: tuesday})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 48)
	assert.Zero(t, countAvailable(resp.Slots))
	for _, slot := range resp.Slots {
		assert.Equal(t, domain.SlotReasonBarberUnavailable, slot.Reason, slot.StartTime)
	}
}

func TestExecute_Errors(t *testing.T) {
	now := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		repo    *fakeAppointments
		req     *Request
		wantErr error
	}{
		{name: "zero barber", req: &Request{ServiceID: 10, Date: tuesday}, wantErr: ErrInvalidInput},
		{name: "zero date", req: &Request{BarberID: 1, ServiceID: 10}, wantErr: ErrInvalidInput},
		{name: "yesterday", req: &Request{BarberID: 1, ServiceID: 10, Date: tuesday.AddDate(0, 0, -1)}, wantErr: ErrInvalidDate},
		{name: "unknown barber", req: &Request{BarberID: 5, ServiceID: 10, Date: tuesday}, wantErr: ErrBarberNotFound},
		{name: "unknown service", req: &Request{BarberID: 1, ServiceID: 50, Date: tuesday}, wantErr: ErrServiceNotFound},
		{
			name:    "storage failure",
			repo:    &fakeAppointments{countErr: errors.New("connection refused")},
			req:     &Request{CustomerID: ptr.Ptr(int64(7)), BarberID: 1, ServiceID: 10, Date: tuesday},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.repo
			if repo == nil {
				repo = &fakeAppointments{}
			}
			_, err := newUseCase(repo, now).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
