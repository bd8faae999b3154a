package booking

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Omralejandro22/luxury-nails-backend/internal/audit"
	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

// fakeRepo is an in-memory Repository. InTx snapshots the whole state and
// restores it when the closure fails, mirroring a rolled-back transaction.
type fakeRepo struct {
	prices map[uint]decimal.Decimal

	users        map[uint]models.User
	usersByEmail map[string]uint
	clients      map[uint]models.Client

	appointments map[uint]models.Appointment
	lines        []models.AppointmentService
	reviews      map[uint]models.Review

	rows       []domain.AppointmentRow
	reviewRows []domain.ReviewRow

	nextID     uint
	rolledBack bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		prices:       map[uint]decimal.Decimal{},
		users:        map[uint]models.User{},
		usersByEmail: map[string]uint{},
		clients:      map[uint]models.Client{},
		appointments: map[uint]models.Appointment{},
		reviews:      map[uint]models.Review{},
		nextID:       100,
	}
}

func (f *fakeRepo) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeRepo) addClient(userID uint, phone string) models.Client {
	uid := userID
	cl := models.Client{ID: f.id(), UserID: &uid, Phone: phone}
	f.clients[cl.ID] = cl
	return cl
}

func (f *fakeRepo) addAppointment(ap models.Appointment) models.Appointment {
	if ap.ID == 0 {
		ap.ID = f.id()
	}
	f.appointments[ap.ID] = ap
	return ap
}

// ----- unit of work -----

type fakeState struct {
	users        map[uint]models.User
	usersByEmail map[string]uint
	clients      map[uint]models.Client
	appointments map[uint]models.Appointment
	lines        []models.AppointmentService
	reviews      map[uint]models.Review
}

func (f *fakeRepo) snapshot() fakeState {
	s := fakeState{
		users:        make(map[uint]models.User, len(f.users)),
		usersByEmail: make(map[string]uint, len(f.usersByEmail)),
		clients:      make(map[uint]models.Client, len(f.clients)),
		appointments: make(map[uint]models.Appointment, len(f.appointments)),
		lines:        append([]models.AppointmentService(nil), f.lines...),
		reviews:      make(map[uint]models.Review, len(f.reviews)),
	}
	for k, v := range f.users {
		s.users[k] = v
	}
	for k, v := range f.usersByEmail {
		s.usersByEmail[k] = v
	}
	for k, v := range f.clients {
		s.clients[k] = v
	}
	for k, v := range f.appointments {
		s.appointments[k] = v
	}
	for k, v := range f.reviews {
		s.reviews[k] = v
	}
	return s
}

func (f *fakeRepo) restore(s fakeState) {
	f.users = s.users
	f.usersByEmail = s.usersByEmail
	f.clients = s.clients
	f.appointments = s.appointments
	f.lines = s.lines
	f.reviews = s.reviews
}

func (f *fakeRepo) InTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	before := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(before)
		f.rolledBack = true
		return err
	}
	return nil
}

// ----- price oracle -----

func (f *fakeRepo) ServicePrice(ctx context.Context, serviceID uint) (decimal.Decimal, error) {
	price, ok := f.prices[serviceID]
	if !ok {
		return decimal.Zero, httperr.ErrBusiness(httperr.CodeNotFound, "service not found")
	}
	return price, nil
}

// ----- client resolution -----

func (f *fakeRepo) GetClientByUserID(ctx context.Context, userID uint) (*models.Client, error) {
	for _, cl := range f.clients {
		if cl.UserID != nil && *cl.UserID == userID {
			c := cl
			return &c, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound, "client profile not found")
}

func (f *fakeRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	id, ok := f.usersByEmail[email]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound, "user not found")
	}
	u := f.users[id]
	return &u, nil
}

func (f *fakeRepo) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = f.id()
	f.users[u.ID] = *u
	f.usersByEmail[u.Email] = u.ID
	return nil
}

func (f *fakeRepo) CreateClient(ctx context.Context, cl *models.Client) error {
	cl.ID = f.id()
	f.clients[cl.ID] = *cl
	return nil
}

// ----- appointment ledger -----

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	ap.ID = f.id()
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound, "appointment not found")
	}
	if cl, ok := f.clients[ap.ClientID]; ok {
		ap.Client = cl
	}
	return &ap, nil
}

func (f *fakeRepo) SaveAppointment(ctx context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) InsertLine(ctx context.Context, line *models.AppointmentService) error {
	line.ID = f.id()
	f.lines = append(f.lines, *line)
	return nil
}

func (f *fakeRepo) DeleteLines(ctx context.Context, appointmentID uint) error {
	kept := f.lines[:0]
	for _, ln := range f.lines {
		if ln.AppointmentID != appointmentID {
			kept = append(kept, ln)
		}
	}
	f.lines = append([]models.AppointmentService(nil), kept...)
	return nil
}

func (f *fakeRepo) linesFor(appointmentID uint) []models.AppointmentService {
	var out []models.AppointmentService
	for _, ln := range f.lines {
		if ln.AppointmentID == appointmentID {
			out = append(out, ln)
		}
	}
	return out
}

// ----- read models -----

func (f *fakeRepo) ListAppointmentRows(ctx context.Context, userID *uint) ([]domain.AppointmentRow, error) {
	return f.rows, nil
}

func (f *fakeRepo) OccupiedTimes(ctx context.Context, date string, staffID *uint) ([]string, error) {
	seen := map[string]bool{}
	var times []string
	for _, ap := range f.appointments {
		if ap.Date != date || !domain.Status(ap.Status).Occupies() {
			continue
		}
		if staffID != nil && (ap.StaffID == nil || *ap.StaffID != *staffID) {
			continue
		}
		if !seen[ap.Time] {
			seen[ap.Time] = true
			times = append(times, ap.Time)
		}
	}
	return times, nil
}

func (f *fakeRepo) OccupancyForMonth(ctx context.Context, month string) ([]domain.DateCount, error) {
	byDate := map[string]int{}
	for _, ap := range f.appointments {
		if strings.HasPrefix(ap.Date, month) && domain.Status(ap.Status).Occupies() {
			byDate[ap.Date]++
		}
	}
	var counts []domain.DateCount
	for date, n := range byDate {
		counts = append(counts, domain.DateCount{Date: date, Count: n})
	}
	return counts, nil
}

// ----- reviews -----

func (f *fakeRepo) CreateReview(ctx context.Context, rv *models.Review) error {
	if _, exists := f.reviews[rv.AppointmentID]; exists {
		return httperr.ErrBusiness(httperr.CodeConflict, "review already exists for this appointment")
	}
	rv.ID = f.id()
	f.reviews[rv.AppointmentID] = *rv
	return nil
}

func (f *fakeRepo) ListReviews(ctx context.Context) ([]domain.ReviewRow, error) {
	return f.reviewRows, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeRecorder captures dispatched audit events.
type fakeRecorder struct {
	events []audit.Event
}

func (f *fakeRecorder) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

// fakeCache records invalidations and serves primed entries.
type fakeCache struct {
	entries     map[string][]string
	invalidated []string
	sets        int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]string{}}
}

func cacheKey(date string, staffID *uint) string {
	if staffID == nil {
		return date
	}
	return date + ":staff"
}

func (f *fakeCache) GetOccupied(ctx context.Context, date string, staffID *uint) ([]string, bool) {
	times, ok := f.entries[cacheKey(date, staffID)]
	return times, ok
}

func (f *fakeCache) SetOccupied(ctx context.Context, date string, staffID *uint, times []string) {
	f.entries[cacheKey(date, staffID)] = times
	f.sets++
}

func (f *fakeCache) InvalidateDate(ctx context.Context, date string) {
	f.invalidated = append(f.invalidated, date)
	delete(f.entries, cacheKey(date, nil))
}
