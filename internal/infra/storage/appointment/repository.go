package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/clock"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/dbmetrics"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/psqlbuilder"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/ptr"
)

// selectColumns колонки записи вместе с именем мастера
var selectColumns = []string{
	"a.id",
	"a.customer_name",
	"a.customer_phone",
	"a.barber_id",
	"a.service_id",
	"a.customer_id",
	"a.start_time",
	"a.duration_minutes",
	"a.service_name",
	"a.service_price",
	"b.full_name",
	"a.created_at",
}

// Repository репозиторий для работы с записями к мастерам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет запись.
// Если конкурентная транзакция успела занять пересекающийся интервал,
// возвращает ошибку, совместимую с domain.ErrConstraintViolation.
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_name",
			"customer_phone",
			"barber_id",
			"service_id",
			"customer_id",
			"start_time",
			"end_time",
			"duration_minutes",
			"service_name",
			"service_price",
			"created_at",
		).
		Values(
			appointment.CustomerName,
			appointment.CustomerPhone,
			appointment.BarberID,
			appointment.ServiceID,
			appointment.CustomerID,
			appointment.StartTime,
			appointment.End(),
			appointment.DurationMinutes,
			appointment.ServiceName,
			appointment.ServicePrice,
			appointment.CreatedAt,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appointment.ID)
	switch {
	case err == nil:
		return appointment, nil
	case isOverlapRace(err):
		return nil, fmt.Errorf("%w: Create - %v", domain.ErrConstraintViolation, err)
	case isForeignKeyViolation(err):
		return nil, fmt.Errorf("%w: Create - %v", ErrReferenceNotFound, err)
	default:
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, wrapQueryErr(ErrScanRow, "GetByID - scan appointment", err)
	}

	return appointment, nil
}

// ListByBarberAndDate получает записи мастера на дату, отсортированные по времени начала.
// Внутри транзакции строки блокируются (FOR UPDATE OF a).
func (r *Repository) ListByBarberAndDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from, to := dayBounds(date)
	selectBuilder := r.baseSelect().
		Where(squirrel.Eq{"a.barber_id": barberID}).
		Where(squirrel.GtOrEq{"a.start_time": from}).
		Where(squirrel.Lt{"a.start_time": to}).
		OrderBy("a.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBarberAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr(ErrExecQuery, "ListByBarberAndDate - execute query", err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// CountByCustomerAndDate считает записи клиента на дату (у любого мастера)
func (r *Repository) CountByCustomerAndDate(ctx context.Context, customerID int64, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from, to := dayBounds(date)
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.GtOrEq{"start_time": from}).
		Where(squirrel.Lt{"start_time": to}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByCustomerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapQueryErr(ErrScanRow, "CountByCustomerAndDate - scan count", err)
	}

	return count, nil
}

// ListByCustomer получает записи клиента, новые первыми.
// Если from задан, возвращаются только записи, начинающиеся не раньше from.
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64, from *time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect().
		Where(squirrel.Eq{"a.customer_id": customerID}).
		OrderBy("a.start_time DESC")

	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.start_time": *from})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr(ErrExecQuery, "ListByCustomer - execute query", err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListByDate получает все записи на дату (опционально по одному мастеру)
// в порядке начала; используется в панели администратора
func (r *Repository) ListByDate(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from, to := dayBounds(filter.Date)
	selectBuilder := r.baseSelect().
		Where(squirrel.GtOrEq{"a.start_time": from}).
		Where(squirrel.Lt{"a.start_time": to}).
		OrderBy("a.start_time ASC", "b.full_name ASC")

	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.barber_id": *filter.BarberID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr(ErrExecQuery, "ListByDate - execute query", err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Delete удаляет запись (отмена записи физически освобождает интервал)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapQueryErr(ErrExecQuery, "Delete - execute delete", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("appointments a").
		Join("barbers b ON b.id = a.barber_id")
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appointment domain.Appointment
		customerID  sql.NullInt64
	)

	err := row.Scan(
		&appointment.ID,
		&appointment.CustomerName,
		&appointment.CustomerPhone,
		&appointment.BarberID,
		&appointment.ServiceID,
		&customerID,
		&appointment.StartTime,
		&appointment.DurationMinutes,
		&appointment.ServiceName,
		&appointment.ServicePrice,
		&appointment.BarberName,
		&appointment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		appointment.CustomerID = ptr.Ptr(customerID.Int64)
	}
	// TIMESTAMP WITHOUT TIME ZONE хранит настенное время
	appointment.StartTime = clock.Wall(appointment.StartTime)
	appointment.CreatedAt = clock.Wall(appointment.CreatedAt)

	return &appointment, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, wrapQueryErr(ErrScanRow, "scanAppointments - scan row", err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryErr(ErrScanRow, "scanAppointments - rows error", err)
	}

	return appointments, nil
}

// dayBounds возвращает [полночь date, полночь следующего дня)
func dayBounds(date time.Time) (time.Time, time.Time) {
	from := domain.DayStart(date)
	return from, from.AddDate(0, 0, 1)
}
