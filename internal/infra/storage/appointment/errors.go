package appointment

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrReferenceNotFound возвращается, когда мастер, услуга или клиент не существуют
	ErrReferenceNotFound = errors.New("appointment.repository: referenced row not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// SQLSTATE коды PostgreSQL
const (
	pgExclusionViolation   = "23P01"
	pgSerializationFailure = "40001"
	pgForeignKeyViolation  = "23503"
)

// isOverlapRace проверяет, что вставка проиграла гонку конкурентной записи:
// сработало ограничение appointments_no_overlap или сериализация
func isOverlapRace(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pgExclusionViolation || pqErr.Code == pgSerializationFailure
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgSerializationFailure
}

// wrapQueryErr оборачивает ошибку чтения sentinel-ом пакета.
// Сбой сериализации внутри SERIALIZABLE-транзакции означает проигранную
// гонку и отдается как domain.ErrConstraintViolation.
func wrapQueryErr(sentinel error, step string, err error) error {
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %s: %w", domain.ErrConstraintViolation, step, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, step, err)
}
