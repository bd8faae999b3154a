package booking

import (
	"context"
	"testing"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
)

func TestSetStatus_UnknownStatus(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSetStatus(repo, &fakeRecorder{}, nil)

	_, err := uc.Execute(context.Background(), 1, 10, "archived")
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestSetStatus_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewSetStatus(repo, &fakeRecorder{}, nil)

	_, err := uc.Execute(context.Background(), 1, 12345, "confirmed")
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestSetStatus_AdminOverridesTerminalState(t *testing.T) {
	repo := newFakeRepo()
	ap := seedOwnedAppointment(repo, 7, domain.StatusCompleted)

	recorder := &fakeRecorder{}
	cache := newFakeCache()
	uc := NewSetStatus(repo, recorder, cache)

	got, err := uc.Execute(context.Background(), 1, ap.ID, "pending")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(domain.StatusPending) {
		t.Fatalf("expected pending, got %q", got.Status)
	}
	if repo.appointments[ap.ID].Status != string(domain.StatusPending) {
		t.Fatal("override not persisted")
	}
	if len(cache.invalidated) != 1 {
		t.Fatalf("expected one invalidation, got %v", cache.invalidated)
	}
	if len(recorder.events) != 1 || recorder.events[0].Action != "appointment_status_set" {
		t.Fatalf("expected appointment_status_set event, got %+v", recorder.events)
	}
}
