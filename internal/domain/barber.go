package domain

// Barber is a staff member who can be booked.
type Barber struct {
	ID          int64
	FullName    string
	IsAvailable bool
	ImageURL    *string
}

// Service is an entry of the price list.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	Description     *string
}
