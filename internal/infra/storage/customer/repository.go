package customer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/clock"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/dbmetrics"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var columns = []string{"id", "full_name", "email", "phone_number", "password_hash", "role", "created_at"}

// Repository репозиторий клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает клиента по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

// Create регистрирует клиента; повторный email дает ErrEmailTaken
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("full_name", "email", "phone_number", "password_hash", "role").
		Values(customer.FullName, customer.Email, customer.PhoneNumber, customer.PasswordHash, customer.Role).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&customer.ID, &customer.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	customer.CreatedAt = clock.Wall(customer.CreatedAt)

	return customer, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("customers").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		customer domain.Customer
		phone    sql.NullString
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.FullName,
		&customer.Email,
		&phone,
		&customer.PasswordHash,
		&customer.Role,
		&customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan customer: %v", ErrScanRow, op, err)
	}

	if phone.Valid {
		customer.PhoneNumber = &phone.String
	}
	customer.CreatedAt = clock.Wall(customer.CreatedAt)

	return &customer, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
