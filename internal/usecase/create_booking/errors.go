package create_booking

import "errors"

// Отказы по правилам расписания возвращаются как ошибки пакета domain
// (domain.ErrClosedDay, domain.ErrStaffConflict и т.д.)
var (
	// ErrBarberNotFound возвращается, когда мастер не найден
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidPhone возвращается, когда телефон нельзя привести к формату E.164
	ErrInvalidPhone = errors.New("create_booking: invalid phone number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
