package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	customerRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/customer"
)

type fakeCustomers struct {
	byEmail   map[string]*domain.Customer
	nextID    int64
	createErr error
	created   int
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{byEmail: map[string]*domain.Customer{}, nextID: 1}
}

func (f *fakeCustomers) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	c, ok := f.byEmail[email]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomers) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	c.ID = f.nextID
	f.nextID++
	f.byEmail[c.Email] = c
	f.created++
	return c, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func TestEnsureAdmin_CreatesOnce(t *testing.T) {
	repo := newFakeCustomers()
	account := AdminAccount{Email: " Admin@Berber.Local ", FullName: "Administrator", Password: "s3cret"}

	admin, err := EnsureAdmin(context.Background(), repo, account, nopLogger{})
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "admin@berber.local", admin.Email)
	assert.True(t, admin.IsAdmin())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("s3cret")))

	again, err := EnsureAdmin(context.Background(), repo, account, nopLogger{})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	assert.Equal(t, 1, repo.created)
}

func TestEnsureAdmin_SkippedWithoutPassword(t *testing.T) {
	repo := newFakeCustomers()

	admin, err := EnsureAdmin(context.Background(), repo, AdminAccount{Email: "admin@berber.local"}, nopLogger{})
	require.NoError(t, err)
	assert.Nil(t, admin)
	assert.Zero(t, repo.created)
}

func TestEnsureAdmin_CreateError(t *testing.T) {
	repo := newFakeCustomers()
	repo.createErr = errors.New("connection refused")

	_, err := EnsureAdmin(context.Background(), repo, AdminAccount{Email: "a@b.c", Password: "x"}, nopLogger{})
	assert.Error(t, err)
}
