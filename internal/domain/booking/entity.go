package booking

import (
	"regexp"
	"time"

	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
)

// Schedule is the date/time/staff triple shared by booking and editing.
type Schedule struct {
	Date    string
	Time    string
	StaffID *uint
}

// WalkInContact identifies a person booked by an admin on their behalf.
// Email is optional; without it the contact is always treated as new.
type WalkInContact struct {
	Name  string
	Phone string
	Email string
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ValidMonth checks a YYYY-MM occupancy token.
func ValidMonth(month string) bool {
	if !monthPattern.MatchString(month) {
		return false
	}
	_, err := time.Parse("2006-01", month)
	return err == nil
}

// Normalize validates the schedule and strips seconds from the time.
func (s *Schedule) Normalize() error {
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidInput, "date must be YYYY-MM-DD")
	}
	s.Time = TruncateTime(s.Time)
	if _, err := time.Parse("15:04", s.Time); err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidInput, "time must be HH:MM")
	}
	return nil
}

// TruncateTime strips second-level precision from a stored time value.
func TruncateTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}
