package domain

import "github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/types"

// SlotReason explains why a slot cannot be booked
type SlotReason string

const (
	SlotReasonNone        SlotReason = ""
	SlotReasonPastTime    SlotReason = "past_time"
	SlotReasonExceedsTime SlotReason = "exceeds_closing_time"
	SlotReasonCollision   SlotReason = "collision"

	// SlotReasonBarberUnavailable marks every slot of a barber who is not accepting appointments.
	SlotReasonBarberUnavailable SlotReason = "barber_unavailable"
)

// Slot is one candidate start time on the booking grid.
type Slot struct {
	StartTime   types.TimeString
	IsAvailable bool
	Reason      SlotReason
}
