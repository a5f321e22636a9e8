package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	barberRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/barber"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/service/catalog/models"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/ptr"
)

type fakeBarbers struct {
	barbers []*domain.Barber
	err     error
}

func (f *fakeBarbers) List(_ context.Context, onlyAvailable bool) ([]*domain.Barber, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Barber
	for _, b := range f.barbers {
		if !onlyAvailable || b.IsAvailable {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBarbers) SetAvailability(_ context.Context, id int64, isAvailable bool) error {
	for _, b := range f.barbers {
		if b.ID == id {
			b.IsAvailable = isAvailable
			return nil
		}
	}
	return barberRepo.ErrBarberNotFound
}

type fakeServices struct{}

func (fakeServices) List(context.Context) ([]*domain.Service, error) {
	return []*domain.Service{
		{ID: 1, Name: "Sakal Tıraşı", Price: 150, DurationMinutes: 20},
		{ID: 2, Name: "Saç Kesimi", Price: 250, DurationMinutes: 30},
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture() (*Service, *fakeBarbers) {
	barbers := &fakeBarbers{barbers: []*domain.Barber{
		{ID: 1, FullName: "Ahmet Usta", IsAvailable: true},
		{ID: 2, FullName: "Mehmet Usta", IsAvailable: false},
	}}
	return NewService(barbers, fakeServices{}, nopLogger{}), barbers
}

func TestListBarbers(t *testing.T) {
	svc, _ := newFixture()

	resp, err := svc.ListBarbers(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, resp.Barbers, 1)
	assert.Equal(t, "Ahmet Usta", resp.Barbers[0].FullName)

	resp, err = svc.ListBarbers(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, resp.Barbers, 2)
}

func TestListBarbers_RepositoryError(t *testing.T) {
	svc, barbers := newFixture()
	barbers.err = errors.New("timeout")

	_, err := svc.ListBarbers(context.Background(), true)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestListServices(t *testing.T) {
	svc, _ := newFixture()

	resp, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Services, 2)
	assert.Equal(t, 20, resp.Services[0].DurationMinutes)
}

func TestSetBarberAvailability(t *testing.T) {
	svc, barbers := newFixture()

	err := svc.SetBarberAvailability(context.Background(), 2, &models.SetAvailabilityRequest{IsAvailable: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, barbers.barbers[1].IsAvailable)

	err = svc.SetBarberAvailability(context.Background(), 9, &models.SetAvailabilityRequest{IsAvailable: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrBarberNotFound)

	err = svc.SetBarberAvailability(context.Background(), 1, &models.SetAvailabilityRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
