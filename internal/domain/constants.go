package domain

import (
	"time"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/types"
)

// Business calendar. Hours are fixed for every open day.
const (
	ClosedWeekday = time.Sunday

	OpeningTime types.TimeString = "10:00"
	ClosingTime types.TimeString = "22:00"

	SlotGranularityMinutes = 15
	DailyLimitPerCustomer  = 1
)

// Business validation constants
const (
	MaxCustomerNameLength = 100
	MaxDurationMinutes    = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04" // YYYY-MM-DDTHH:MM
)
