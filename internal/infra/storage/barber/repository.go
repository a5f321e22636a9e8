package barber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/dbmetrics"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/psqlbuilder"
)

var columns = []string{"id", "full_name", "is_available", "image_url"}

// Repository репозиторий мастеров
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID.
// Внутри транзакции строка мастера блокируется (FOR UPDATE): так все записи
// к одному мастеру сериализуются, а к разным мастерам идут параллельно.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("barbers").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	barber, err := scanBarber(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBarberNotFound
	}
	if err != nil {
		return nil, wrapQueryErr(ErrScanRow, "GetByID - scan barber", err)
	}

	return barber, nil
}

// List получает мастеров по имени; onlyAvailable оставляет только принимающих записи
func (r *Repository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Barber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("barbers").
		OrderBy("full_name ASC", "id ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	barbers := make([]*domain.Barber, 0)
	for rows.Next() {
		barber, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		barbers = append(barbers, barber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return barbers, nil
}

// SetAvailability включает или выключает прием записей к мастеру
func (r *Repository) SetAvailability(ctx context.Context, id int64, isAvailable bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("barbers").
		Set("is_available", isAvailable).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBarberNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBarber(row rowScanner) (*domain.Barber, error) {
	var (
		barber   domain.Barber
		imageURL sql.NullString
	)

	if err := row.Scan(&barber.ID, &barber.FullName, &barber.IsAvailable, &imageURL); err != nil {
		return nil, err
	}

	if imageURL.Valid {
		barber.ImageURL = &imageURL.String
	}

	return &barber, nil
}
