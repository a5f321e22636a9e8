package appointments

import "errors"

// Ожидаемые исходы (не найдено, чужая запись, уже началась) возвращаются
// как domain.ErrNotFound, domain.ErrNotOwner и domain.ErrPastAppointment
var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
