package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	customerRepo "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/infra/storage/customer"
)

// ErrHashPassword возвращается, если не удалось получить bcrypt-хеш пароля
var ErrHashPassword = errors.New("bootstrap: failed to hash admin password")

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// AdminAccount параметры учетной записи администратора
type AdminAccount struct {
	Email    string
	FullName string
	Password string
}

// EnsureAdmin создает администратора, если его еще нет. Повторный запуск ничего не меняет.
// Пустой пароль отключает шаг.
func EnsureAdmin(ctx context.Context, customers CustomerRepository, account AdminAccount, logger Logger) (*domain.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(account.Email))
	if email == "" || account.Password == "" {
		logger.Warn("Admin bootstrap skipped: email or password is not set")
		return nil, nil
	}

	existing, err := customers.GetByEmail(ctx, email)
	if err == nil {
		logger.Info("Admin account already exists (id=%d)", existing.ID)
		return existing, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		return nil, fmt.Errorf("EnsureAdmin - get by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashPassword, err)
	}

	created, err := customers.Create(ctx, &domain.Customer{
		FullName:     account.FullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if errors.Is(err, customerRepo.ErrEmailTaken) {
		// другой экземпляр успел создать администратора
		return customers.GetByEmail(ctx, email)
	}
	if err != nil {
		return nil, fmt.Errorf("EnsureAdmin - create: %w", err)
	}

	logger.Info("Admin account created (id=%d, email=%s)", created.ID, created.Email)
	return created, nil
}
