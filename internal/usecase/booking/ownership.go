package booking

import (
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

// assertOwnedBy checks the appointment's client is linked to the acting
// account. Appointments must be loaded with their Client.
func assertOwnedBy(ap *models.Appointment, userID uint) error {
	if ap.Client.UserID == nil || *ap.Client.UserID != userID {
		return httperr.ErrBusiness(
			httperr.CodeNotAuthorized, "appointment does not belong to caller",
		)
	}
	return nil
}
