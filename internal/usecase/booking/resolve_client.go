package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

// ClientResolver maps an acting account, or an admin-supplied walk-in
// contact, to a stable client identity. It operates on the transaction-bound
// repository so client creation commits or rolls back together with the
// booking that needed it.
type ClientResolver struct{}

// ForAccount resolves the client profile of an authenticated user. A missing
// profile signals data inconsistency, not a normal flow.
func (ClientResolver) ForAccount(
	ctx context.Context,
	tx domain.Repository,
	userID uint,
) (*models.Client, error) {
	return tx.GetClientByUserID(ctx, userID)
}

// WalkIn resolves or creates the client identity for a person without a
// self-service account. With an email the existing account is reused;
// without one the contact is always treated as new. New accounts are guest
// shells with a placeholder credential nobody knows.
func (ClientResolver) WalkIn(
	ctx context.Context,
	tx domain.Repository,
	contact domain.WalkInContact,
) (*models.Client, error) {

	email := contact.Email
	if email == "" {
		email = fmt.Sprintf("walkin-%s@luxurynails.local", uuid.NewString())
	} else {
		user, err := tx.GetUserByEmail(ctx, email)
		if err == nil {
			client, err := tx.GetClientByUserID(ctx, user.ID)
			if err == nil {
				return client, nil
			}
			if !httperr.IsBusiness(err, httperr.CodeNotFound) {
				return nil, err
			}

			// account exists without a client profile (staff or admin
			// being booked as a customer)
			client = &models.Client{
				UserID: &user.ID,
				Phone:  contact.Phone,
			}
			if err := tx.CreateClient(ctx, client); err != nil {
				return nil, err
			}
			return client, nil
		}
		if !httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, err
		}
	}

	placeholder, err := bcrypt.GenerateFromPassword(
		[]byte(uuid.NewString()), bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         contact.Name,
		Email:        email,
		PasswordHash: string(placeholder),
		Role:         models.RoleClient,
		Guest:        true,
	}
	if err := tx.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	client := &models.Client{
		UserID: &user.ID,
		Phone:  contact.Phone,
	}
	if err := tx.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
