package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domain "github.com/Omralejandro22/luxury-nails-backend/internal/domain/booking"
	"github.com/Omralejandro22/luxury-nails-backend/internal/httperr"
	"github.com/Omralejandro22/luxury-nails-backend/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// InTx runs fn against a repository bound to a single transaction. A non-nil
// error from fn rolls everything back; the handle never outlives the call.
func (r *BookingGormRepository) InTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Price oracle
// --------------------------------------------------

func (r *BookingGormRepository) ServicePrice(
	ctx context.Context,
	serviceID uint,
) (decimal.Decimal, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Select("id", "price").
		First(&svc, serviceID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, httperr.ErrBusiness(
				httperr.CodeNotFound, "service not found",
			)
		}
		return decimal.Zero, err
	}

	return svc.Price, nil
}

// --------------------------------------------------
// Client resolution
// --------------------------------------------------

func (r *BookingGormRepository) GetClientByUserID(
	ctx context.Context,
	userID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&client).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(
				httperr.CodeNotFound, "client profile not found",
			)
		}
		return nil, err
	}

	return &client, nil
}

func (r *BookingGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(
				httperr.CodeNotFound, "user not found",
			)
		}
		return nil, err
	}

	return &user, nil
}

func (r *BookingGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *BookingGormRepository) CreateClient(
	ctx context.Context,
	cl *models.Client,
) error {
	return r.db.WithContext(ctx).Create(cl).Error
}

// --------------------------------------------------
// Appointment ledger
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(
				httperr.CodeNotFound, "appointment not found",
			)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) InsertLine(
	ctx context.Context,
	line *models.AppointmentService,
) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *BookingGormRepository) DeleteLines(
	ctx context.Context,
	appointmentID uint,
) error {
	return r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.AppointmentService{}).Error
}

// --------------------------------------------------
// Read models
// --------------------------------------------------

const appointmentRowsQuery = `
SELECT a.id, a.date, a.time, a.status, a.total,
       COALESCE(u.name, '')  AS client_name,
       COALESCE(u.email, '') AS client_email,
       cl.phone              AS client_phone,
       staff.name            AS staff_name,
       s.id                  AS service_id,
       s.name                AS service_name,
       s.duration_min        AS duration_min,
       ln.price_at_booking   AS price_at_booking
FROM appointments a
JOIN clients cl        ON cl.id = a.client_id
LEFT JOIN users u      ON u.id = cl.user_id
LEFT JOIN users staff  ON staff.id = a.staff_id
LEFT JOIN appointment_services ln ON ln.appointment_id = a.id
LEFT JOIN services s   ON s.id = ln.service_id
`

func (r *BookingGormRepository) ListAppointmentRows(
	ctx context.Context,
	userID *uint,
) ([]domain.AppointmentRow, error) {

	query := appointmentRowsQuery
	args := []any{}

	if userID != nil {
		query += "WHERE cl.user_id = ?\n"
		args = append(args, *userID)
	}
	query += "ORDER BY a.date DESC, a.time DESC, a.id DESC, ln.id ASC"

	var rows []domain.AppointmentRow
	if err := r.db.WithContext(ctx).
		Raw(query, args...).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *BookingGormRepository) OccupiedTimes(
	ctx context.Context,
	date string,
	staffID *uint,
) ([]string, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Distinct("time").
		Where("date = ? AND status IN ?", date, []string{
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
		})

	if staffID != nil {
		q = q.Where("staff_id = ?", *staffID)
	}

	var times []string
	if err := q.Order("time ASC").Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *BookingGormRepository) OccupancyForMonth(
	ctx context.Context,
	month string,
) ([]domain.DateCount, error) {

	var counts []domain.DateCount
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Select("date", "COUNT(*) AS count").
		Where("date LIKE ? AND status IN ?", month+"%", []string{
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
		}).
		Group("date").
		Order("date ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	return counts, nil
}

// --------------------------------------------------
// Reviews
// --------------------------------------------------

func (r *BookingGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {

	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness(
				httperr.CodeConflict, "review already exists for this appointment",
			)
		}
		return err
	}

	return nil
}

func (r *BookingGormRepository) ListReviews(
	ctx context.Context,
) ([]domain.ReviewRow, error) {

	var rows []domain.ReviewRow
	if err := r.db.WithContext(ctx).
		Raw(`
SELECT rv.id, rv.rating, rv.comment, rv.created_at,
       COALESCE(u.name, '') AS client_name,
       a.date, a.time, a.total
FROM reviews rv
JOIN appointments a ON a.id = rv.appointment_id
JOIN clients cl     ON cl.id = a.client_id
LEFT JOIN users u   ON u.id = cl.user_id
ORDER BY rv.created_at DESC`).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
