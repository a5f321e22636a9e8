package barber

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
)

var (
	// ErrBarberNotFound возвращается, когда мастер не найден
	ErrBarberNotFound = errors.New("barber.repository: barber not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("barber.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("barber.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("barber.repository: failed to scan row")
)

// pgSerializationFailure SQLSTATE serialization_failure
const pgSerializationFailure = "40001"

// wrapQueryErr оборачивает ошибку запроса sentinel-ом пакета.
// Блокировка FOR UPDATE в SERIALIZABLE-транзакции может проиграть
// конкурентному обновлению; такая ошибка отдается как domain.ErrConstraintViolation.
func wrapQueryErr(sentinel error, step string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgSerializationFailure {
		return fmt.Errorf("%w: %s: %w", domain.ErrConstraintViolation, step, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, step, err)
}
