package booking

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

func walkInInput(contact domain.WalkInContact) BookWalkInInput {
	return BookWalkInInput{
		AdminID:    1,
		Contact:    contact,
		Date:       "2024-05-10",
		Time:       "14:00",
		ServiceIDs: []uint{3},
	}
}

func TestBookWalkIn_RequiresName(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookWalkIn(repo, &fakeRecorder{}, nil)

	_, err := uc.Execute(context.Background(), walkInInput(domain.WalkInContact{}))
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestBookWalkIn_NewGuestWithoutEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")
	uc := NewBookWalkIn(repo, &fakeRecorder{}, nil)

	ap, err := uc.Execute(context.Background(), walkInInput(domain.WalkInContact{
		Name:  "Ana Torres",
		Phone: "555-0101",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(domain.StatusConfirmed) {
		t.Fatalf("walk-in should start confirmed, got %q", ap.Status)
	}

	if len(repo.users) != 1 {
		t.Fatalf("expected one guest account, got %d", len(repo.users))
	}
	var guest models.User
	for _, u := range repo.users {
		guest = u
	}
	if !guest.Guest {
		t.Fatal("created account should be flagged as guest")
	}
	if guest.Role != models.RoleClient {
		t.Fatalf("guest role should be client, got %q", guest.Role)
	}
	if !strings.HasPrefix(guest.Email, "walkin-") || !strings.HasSuffix(guest.Email, "@luxurynails.local") {
		t.Fatalf("unexpected synthesized email %q", guest.Email)
	}
	if guest.PasswordHash == "" {
		t.Fatal("guest must carry a placeholder credential")
	}
}

func TestBookWalkIn_ReusesExistingClientByEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")

	user := models.User{Name: "Ana Torres", Email: "ana@example.com", Role: models.RoleClient}
	if err := repo.CreateUser(context.Background(), &user); err != nil {
		t.Fatal(err)
	}
	existing := repo.addClient(user.ID, "555-0101")

	uc := NewBookWalkIn(repo, &fakeRecorder{}, nil)

	ap, err := uc.Execute(context.Background(), walkInInput(domain.WalkInContact{
		Name:  "Ana Torres",
		Email: "ana@example.com",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.ClientID != existing.ID {
		t.Fatalf("expected booking against existing client %d, got %d", existing.ID, ap.ClientID)
	}
	if len(repo.users) != 1 {
		t.Fatalf("no new account should be created, got %d users", len(repo.users))
	}
}

func TestBookWalkIn_CreatesProfileForAccountWithoutOne(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")

	staff := models.User{Name: "Eva", Email: "eva@example.com", Role: models.RoleStaff}
	if err := repo.CreateUser(context.Background(), &staff); err != nil {
		t.Fatal(err)
	}

	uc := NewBookWalkIn(repo, &fakeRecorder{}, nil)

	ap, err := uc.Execute(context.Background(), walkInInput(domain.WalkInContact{
		Name:  "Eva",
		Email: "eva@example.com",
		Phone: "555-0102",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	client, err := repo.GetClientByUserID(context.Background(), staff.ID)
	if err != nil {
		t.Fatalf("expected a client profile for the existing account: %v", err)
	}
	if ap.ClientID != client.ID {
		t.Fatalf("booking should use the new profile %d, got %d", client.ID, ap.ClientID)
	}
	if len(repo.users) != 1 {
		t.Fatal("no duplicate account should be created")
	}
}

func TestBookWalkIn_GuestRollsBackWithBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")
	uc := NewBookWalkIn(repo, &fakeRecorder{}, nil)

	in := walkInInput(domain.WalkInContact{Name: "Ana Torres"})
	in.ServiceIDs = []uint{3, 999}

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}

	if len(repo.users) != 0 || len(repo.clients) != 0 {
		t.Fatal("guest identity must roll back with the failed booking")
	}
	if len(repo.appointments) != 0 {
		t.Fatal("appointment survived rollback")
	}
}
