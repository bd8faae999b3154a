package booking

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
)

func TestBookAppointment_NoServices(t *testing.T) {
	repo := newFakeRepo()
	uc := NewBookAppointment(repo, &fakeRecorder{}, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID: 1,
		Date:   "2024-05-10",
		Time:   "10:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestBookAppointment_BadDate(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")
	repo.addClient(1, "555-0100")
	uc := NewBookAppointment(repo, &fakeRecorder{}, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID:     1,
		Date:       "10/05/2024",
		Time:       "10:00",
		ServiceIDs: []uint{3},
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	if len(repo.appointments) != 0 {
		t.Fatalf("expected no appointment, got %d", len(repo.appointments))
	}
}

func TestBookAppointment_FreezesPricesAndTotal(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")
	repo.prices[5] = decimal.RequireFromString("15.00")
	repo.addClient(7, "555-0100")

	recorder := &fakeRecorder{}
	cache := newFakeCache()
	uc := NewBookAppointment(repo, recorder, cache)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID:     7,
		Date:       "2024-05-10",
		Time:       "10:00",
		ServiceIDs: []uint{3, 5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != string(domain.StatusPending) {
		t.Fatalf("expected pending, got %q", ap.Status)
	}
	if !ap.Total.Equal(decimal.RequireFromString("35.00")) {
		t.Fatalf("expected total 35.00, got %s", ap.Total)
	}

	lines := repo.linesFor(ap.ID)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !lines[0].PriceAtBooking.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected frozen price 20.00, got %s", lines[0].PriceAtBooking)
	}

	// a later catalog change must not touch the stored line or total
	repo.prices[3] = decimal.RequireFromString("99.00")
	stored := repo.appointments[ap.ID]
	if !stored.Total.Equal(decimal.RequireFromString("35.00")) {
		t.Fatalf("total drifted after price change: %s", stored.Total)
	}
	if !repo.linesFor(ap.ID)[0].PriceAtBooking.Equal(decimal.RequireFromString("20.00")) {
		t.Fatal("line price drifted after catalog change")
	}

	if len(recorder.events) != 1 || recorder.events[0].Action != "appointment_booked" {
		t.Fatalf("expected one appointment_booked event, got %+v", recorder.events)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "2024-05-10" {
		t.Fatalf("expected cache invalidation for booked date, got %v", cache.invalidated)
	}
}

func TestBookAppointment_UnknownServiceRollsBackEverything(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")
	repo.addClient(7, "555-0100")

	cache := newFakeCache()
	uc := NewBookAppointment(repo, &fakeRecorder{}, cache)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID:     7,
		Date:       "2024-05-10",
		Time:       "10:00",
		ServiceIDs: []uint{3, 999},
	})
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}

	if !repo.rolledBack {
		t.Fatal("expected the transaction to roll back")
	}
	if len(repo.appointments) != 0 {
		t.Fatalf("appointment survived rollback: %d", len(repo.appointments))
	}
	if len(repo.lines) != 0 {
		t.Fatalf("lines survived rollback: %d", len(repo.lines))
	}
	if len(cache.invalidated) != 0 {
		t.Fatal("cache invalidated despite failed booking")
	}
}

func TestBookAppointment_MissingClientProfile(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")
	uc := NewBookAppointment(repo, &fakeRecorder{}, nil)

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID:     42,
		Date:       "2024-05-10",
		Time:       "10:00",
		ServiceIDs: []uint{3},
	})
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestBookAppointment_TruncatesSeconds(t *testing.T) {
	repo := newFakeRepo()
	repo.prices[3] = decimal.RequireFromString("20.00")
	repo.addClient(7, "555-0100")
	uc := NewBookAppointment(repo, &fakeRecorder{}, nil)

	ap, err := uc.Execute(context.Background(), BookAppointmentInput{
		UserID:     7,
		Date:       "2024-05-10",
		Time:       "10:00:30",
		ServiceIDs: []uint{3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Time != "10:00" {
		t.Fatalf("expected time 10:00, got %q", ap.Time)
	}
}
