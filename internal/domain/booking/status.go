package booking

import "github.com/Omralejandro22/luxury-nails-backend/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// InitialStatus picks the starting state by booking channel: self-service
// bookings wait for confirmation, admin walk-ins are trusted and start
// confirmed.
func InitialStatus(adminBooked bool) Status {
	if adminBooked {
		return StatusConfirmed
	}
	return StatusPending
}

// CanClientCancel guards the only transition clients may perform. Terminal
// states stay terminal.
func CanClientCancel(current Status) error {
	if current == StatusCompleted || current == StatusCancelled {
		return httperr.ErrBusiness(
			httperr.CodeInvalidTransition,
			"appointment is already "+string(current),
		)
	}
	return nil
}

// Occupies reports whether an appointment in this state holds its time slot
// for availability purposes. Completed and cancelled free the slot.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}
