package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/repository/base"
)

type LessonRepository struct {
	pool        *pgxpool.Pool
	bookingRepo *BookingRepository
}

func NewLessonRepository(pool *pgxpool.Pool, bookingRepo *BookingRepository) *LessonRepository {
	return &LessonRepository{pool: pool, bookingRepo: bookingRepo}
}

// ListByTutorAndDate returns the tutor's lessons on one calendar date, each
// with its backing booking loaded. This is the read behind the conflict
// detector.
func (r *LessonRepository) ListByTutorAndDate(ctx context.Context, tutorID int64, date time.Time) ([]*model.Lesson, error) {
	query := `
		SELECT l.id, l.booking_id, l.tutor_id, l.series_id, l.created_at,
			` + bookingColumns2("b") + `
		FROM lessons l
		JOIN bookings b ON b.id = l.booking_id
		WHERE l.tutor_id = $1 AND b.date = $2
		ORDER BY b.start_hour, b.start_minute
	`

	return r.list(ctx, query, tutorID, date)
}

// ListByTutorBetween returns the tutor's lessons with dates in [from, to].
func (r *LessonRepository) ListByTutorBetween(ctx context.Context, tutorID int64, from, to time.Time) ([]*model.Lesson, error) {
	query := `
		SELECT l.id, l.booking_id, l.tutor_id, l.series_id, l.created_at,
			` + bookingColumns2("b") + `
		FROM lessons l
		JOIN bookings b ON b.id = l.booking_id
		WHERE l.tutor_id = $1 AND b.date BETWEEN $2 AND $3
		ORDER BY b.date, b.start_hour, b.start_minute
	`

	return r.list(ctx, query, tutorID, from, to)
}

// CreateSeries commits a full recurrence series in one transaction: the
// tutor row is locked, the overlap check is re-run against the source date,
// the source booking is closed, and one snapshot booking plus one lesson is
// inserted per date. Either the whole series lands or nothing does.
func (r *LessonRepository) CreateSeries(
	ctx context.Context,
	source *model.Booking,
	snapshots []*model.Booking,
	tutorID int64,
	seriesID uuid.UUID,
) ([]*model.Lesson, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent assignments touching this tutor's schedule.
	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM tutors WHERE id = $1 FOR UPDATE`, tutorID).Scan(&lockedID)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, fmt.Errorf("tutor %d: %w", tutorID, model.ErrNotFound)
		}
		return nil, fmt.Errorf("lock tutor: %w", err)
	}

	// Authoritative overlap recheck under the lock. The service ran the same
	// test before opening the transaction, but a concurrent assignment may
	// have committed in between.
	newStart := source.StartHour*60 + source.StartMinute
	newEnd := newStart + source.Duration.Minutes()

	var overlapping int
	err = tx.QueryRow(ctx, `
		SELECT count(*)
		FROM lessons l
		JOIN bookings b ON b.id = l.booking_id
		WHERE l.tutor_id = $1
		  AND b.date = $2
		  AND b.start_hour * 60 + b.start_minute < $4
		  AND b.start_hour * 60 + b.start_minute
		      + CASE b.duration WHEN 'long' THEN 120 ELSE 60 END > $3
	`, tutorID, source.Date, newStart, newEnd).Scan(&overlapping)
	if err != nil {
		return nil, fmt.Errorf("recheck overlap: %w", err)
	}
	if overlapping > 0 {
		return nil, model.ErrSchedulingConflict
	}

	// Retire the source booking. Zero rows means another admin got here
	// first or the booking was already resolved.
	tag, err := tx.Exec(ctx, `
		UPDATE bookings SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, string(model.BookingStatusClosed), source.ID, string(model.BookingStatusOpen))
	if err != nil {
		return nil, fmt.Errorf("close source booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("booking %d: %w", source.ID, model.ErrDuplicateAssignment)
	}

	lessons := make([]*model.Lesson, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if err := r.bookingRepo.CreateIn(ctx, tx, snapshot); err != nil {
			return nil, err
		}

		lesson := &model.Lesson{
			BookingID: snapshot.ID,
			TutorID:   tutorID,
			SeriesID:  seriesID,
			Booking:   snapshot,
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO lessons (booking_id, tutor_id, series_id)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`, lesson.BookingID, lesson.TutorID, lesson.SeriesID).Scan(&lesson.ID, &lesson.CreatedAt)
		if err != nil {
			if base.IsUniqueViolation(err) {
				return nil, fmt.Errorf("booking %d: %w", lesson.BookingID, model.ErrDuplicateAssignment)
			}
			return nil, fmt.Errorf("create lesson: %w", err)
		}

		lessons = append(lessons, lesson)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return lessons, nil
}

func (r *LessonRepository) list(ctx context.Context, query string, args ...any) ([]*model.Lesson, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*model.Lesson
	for rows.Next() {
		lesson, err := scanLessonWithBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	return lessons, rows.Err()
}

func scanLessonWithBooking(row rowScanner) (*model.Lesson, error) {
	var (
		lesson                               model.Lesson
		booking                              model.Booking
		day                                  int16
		frequency, duration, language, state string
		date                                 time.Time
	)

	err := row.Scan(
		&lesson.ID,
		&lesson.BookingID,
		&lesson.TutorID,
		&lesson.SeriesID,
		&lesson.CreatedAt,
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
	lesson.Booking = &booking

	return &lesson, nil
}

// bookingColumns2 qualifies the booking column list with a table alias.
func bookingColumns2(alias string) string {
	return alias + `.id, ` + alias + `.student_id, ` + alias + `.date, ` +
		alias + `.start_hour, ` + alias + `.start_minute, ` + alias + `.day, ` +
		alias + `.frequency, ` + alias + `.duration, ` + alias + `.language, ` +
		alias + `.venue, ` + alias + `.status, ` + alias + `.created_at, ` + alias + `.updated_at`
}
