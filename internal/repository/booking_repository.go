package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/repository/base"
)

const bookingColumns = `id, student_id, date, start_hour, start_minute, day,
		frequency, duration, language, venue, status, created_at, updated_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts an open booking request.
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.create(ctx, r.pool, booking)
}

// CreateIn inserts a booking through q, which may be a transaction.
func (r *BookingRepository) CreateIn(ctx context.Context, q base.Querier, booking *model.Booking) error {
	return r.create(ctx, q, booking)
}

func (r *BookingRepository) create(ctx context.Context, q base.Querier, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (student_id, date, start_hour, start_minute, day,
			frequency, duration, language, venue, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	if booking.Venue == "" {
		booking.Venue = model.DefaultVenue
	}
	if booking.Status == "" {
		booking.Status = model.BookingStatusOpen
	}

	err := q.QueryRow(
		ctx, query,
		booking.StudentID,
		booking.Date,
		booking.StartHour,
		booking.StartMinute,
		int16(booking.Day),
		string(booking.Frequency),
		string(booking.Duration),
		string(booking.Language),
		booking.Venue,
		string(booking.Status),
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// GetByID fetches a booking, returning model.ErrNotFound when the id does
// not resolve.
func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*model.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, fmt.Errorf("booking %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("get booking by id: %w", err)
	}

	return booking, nil
}

// Update persists editable booking fields.
func (r *BookingRepository) Update(ctx context.Context, booking *model.Booking) error {
	query := `
		UPDATE bookings
		SET date = $1, start_hour = $2, start_minute = $3, day = $4,
			frequency = $5, duration = $6, language = $7, updated_at = now()
		WHERE id = $8
		RETURNING updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		booking.Date,
		booking.StartHour,
		booking.StartMinute,
		int16(booking.Day),
		string(booking.Frequency),
		string(booking.Duration),
		string(booking.Language),
		booking.ID,
	).Scan(&booking.UpdatedAt)

	if err != nil {
		if base.IsNotFound(err) {
			return fmt.Errorf("booking %d: %w", booking.ID, model.ErrNotFound)
		}
		return fmt.Errorf("update booking: %w", err)
	}

	return nil
}

// Delete removes a booking; dependent lessons go with it via the cascade.
func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("booking %d: %w", id, model.ErrNotFound)
	}

	return nil
}

// ListOpenByStudent returns a student's pending booking requests.
func (r *BookingRepository) ListOpenByStudent(ctx context.Context, studentID int64) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE student_id = $1 AND status = 'OPEN'
		ORDER BY date, start_hour, start_minute
	`

	return r.list(ctx, query, studentID)
}

// ListOpen returns every pending booking, oldest first, for the admin queue.
func (r *BookingRepository) ListOpen(ctx context.Context) ([]*model.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'OPEN'
		ORDER BY created_at ASC
	`

	return r.list(ctx, query)
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]*model.Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	var (
		booking                              model.Booking
		day                                  int16
		frequency, duration, language, state string
		date                                 time.Time
	)

	err := row.Scan(
		&booking.ID,
		&booking.StudentID,
		&date,
		&booking.StartHour,
		&booking.StartMinute,
		&day,
		&frequency,
		&duration,
		&language,
		&booking.Venue,
		&state,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	booking.Day = time.Weekday(day)
	booking.Frequency = model.Frequency(frequency)
	booking.Duration = model.Duration(duration)
	booking.Language = model.Language(language)
	booking.Status = model.BookingStatus(state)

	return &booking, nil
}
