package create_booking

import "time"

// Request модель запроса на создание записи
type Request struct {
	CustomerID    *int64    // ID клиента (nil для гостевой записи)
	BarberID      int64     `validate:"gt=0"`
	ServiceID     int64     `validate:"gt=0"`
	StartTime     time.Time `validate:"required"` // Настенное время начала
	CustomerName  string    `validate:"required,min=2,max=100"`
	CustomerPhone string    `validate:"required,max=32"`
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	CustomerID      *int64
	CustomerName    string
	CustomerPhone   string // E.164
	BarberID        int64
	BarberName      string
	ServiceID       int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int

	// Денормализованные данные услуги
	ServiceName  string
	ServicePrice float64

	CreatedAt time.Time
}
