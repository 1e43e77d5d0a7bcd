package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/codetutors/code_tutors/internal/auth"
	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/schedule"
	"github.com/codetutors/code_tutors/internal/service/ports"
	"github.com/codetutors/code_tutors/internal/term"
)

// User-facing status messages surfaced by the assignment workflow.
const (
	MsgBookingUpdated = "Booking details updated successfully!"
	MsgTutorAssigned  = "Tutor assigned successfully and further lessons booked!"
	MsgTutorConflict  = "This tutor is already booked for an overlapping lesson."
)

// AssignmentService orchestrates the admin workflow that turns an open
// booking into a term-long lesson series: eligibility filtering, conflict
// detection and recurrence generation.
type AssignmentService struct {
	bookings ports.BookingStore
	tutors   ports.TutorStore
	lessons  ports.LessonStore
	students ports.StudentStore
	notifier ports.AssignmentNotifier
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAssignmentService(
	bookings ports.BookingStore,
	tutors ports.TutorStore,
	lessons ports.LessonStore,
	students ports.StudentStore,
	notifier ports.AssignmentNotifier,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		bookings: bookings,
		tutors:   tutors,
		lessons:  lessons,
		students: students,
		notifier: notifier,
		validate: validator.New(),
		logger:   logger,
	}
}

// AssignmentPage is the tri-state context the assignment screen renders.
// NoTutors is a valid, displayable state, not a failure.
type AssignmentPage struct {
	Booking        *model.Booking `json:"booking"`
	EligibleTutors []*model.Tutor `json:"eligible_tutors"`
	NoTutors       bool           `json:"no_tutors"`
}

// AssignResult reports a successful assignment.
type AssignResult struct {
	Lessons  []*model.Lesson `json:"lessons"`
	SeriesID uuid.UUID       `json:"series_id"`
	Term     term.Term       `json:"term"`
	Message  string          `json:"message"`
}

// Page loads the assignment screen context for a booking. A missing booking
// is fatal (ErrNotFound); an empty eligible set is not.
func (s *AssignmentService) Page(ctx context.Context, actor auth.Actor, bookingID int64) (*AssignmentPage, error) {
	if err := auth.Authorize(actor, auth.ActionViewAssignment, 0); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	tutors, err := s.EligibleTutors(ctx, booking)
	if err != nil {
		return nil, err
	}

	return &AssignmentPage{
		Booking:        booking,
		EligibleTutors: tutors,
		NoTutors:       len(tutors) == 0,
	}, nil
}

// EligibleTutors returns every tutor whose specialty set contains the
// booking's language and whose availability set contains its weekday.
func (s *AssignmentService) EligibleTutors(ctx context.Context, booking *model.Booking) ([]*model.Tutor, error) {
	tutors, err := s.tutors.FindAvailable(ctx, booking.Language, booking.Day)
	if err != nil {
		return nil, fmt.Errorf("find eligible tutors: %w", err)
	}
	return tutors, nil
}

// HasConflict reports whether assigning tutor to booking would overlap any
// lesson already on the tutor's schedule for that date. Interval bounds are
// half-open, so back-to-back lessons do not conflict.
func (s *AssignmentService) HasConflict(ctx context.Context, tutor *model.Tutor, booking *model.Booking) (bool, error) {
	if tutor == nil || !booking.HasSchedule() {
		return false, fmt.Errorf("conflict check needs a tutor and a scheduled booking: %w", model.ErrInvalidInput)
	}

	existing, err := s.lessons.ListByTutorAndDate(ctx, tutor.ID, booking.Date)
	if err != nil {
		return false, fmt.Errorf("list lessons for conflict check: %w", err)
	}

	for _, lesson := range existing {
		if lesson.Booking == nil {
			continue
		}
		if schedule.BookingsOverlap(booking, lesson.Booking) {
			return true, nil
		}
	}

	return false, nil
}

// EditBooking re-validates and persists changed booking fields, keeping the
// workflow in its assigning state with a refreshed eligible-tutor set. On
// validation failure nothing is persisted.
func (s *AssignmentService) EditBooking(ctx context.Context, actor auth.Actor, bookingID int64, input BookingInput) (*AssignmentPage, error) {
	if err := auth.Authorize(actor, auth.ActionEditBooking, 0); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != model.BookingStatusOpen {
		return nil, fmt.Errorf("booking %d is closed: %w", bookingID, model.ErrValidation)
	}

	if err := validateBookingInput(s.validate, input); err != nil {
		return nil, err
	}

	input.apply(booking)
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("Booking details updated",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("admin_id", actor.ID),
	)

	tutors, err := s.EligibleTutors(ctx, booking)
	if err != nil {
		return nil, err
	}

	return &AssignmentPage{
		Booking:        booking,
		EligibleTutors: tutors,
		NoTutors:       len(tutors) == 0,
	}, nil
}

// AssignTutor runs the full assignment: the tutor must be in the eligible
// set and conflict-free, the booking date must fall in a school term, and
// the resulting series is committed atomically. The source booking ends up
// CLOSED and is never assignable again.
func (s *AssignmentService) AssignTutor(ctx context.Context, actor auth.Actor, bookingID, tutorID int64) (*AssignResult, error) {
	if err := auth.Authorize(actor, auth.ActionAssignTutor, 0); err != nil {
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != model.BookingStatusOpen {
		return nil, fmt.Errorf("booking %d: %w", bookingID, model.ErrDuplicateAssignment)
	}

	tutor, err := s.tutors.GetByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	if !tutor.EligibleFor(booking) {
		return nil, model.FieldErrors{"tutor": "selected tutor is not eligible for this booking"}
	}

	conflict, err := s.HasConflict(ctx, tutor, booking)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, fmt.Errorf("tutor %d on %s: %w", tutorID, booking.Date.Format("2006-01-02"), model.ErrSchedulingConflict)
	}

	currentTerm, ok := term.ForDate(booking.Date)
	if !ok {
		return nil, fmt.Errorf("booking date %s: %w", booking.Date.Format("2006-01-02"), model.ErrNoValidTerm)
	}

	dates := schedule.SeriesDates(booking.Date, currentTerm.End, booking.Frequency)
	snapshots := make([]*model.Booking, len(dates))
	for i, date := range dates {
		snapshots[i] = booking.Snapshot(date)
	}

	seriesID := uuid.New()
	lessons, err := s.lessons.CreateSeries(ctx, booking, snapshots, tutor.ID, seriesID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tutor assigned, lesson series booked",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("tutor_id", tutor.ID),
		zap.String("series_id", seriesID.String()),
		zap.String("term", currentTerm.Name),
		zap.Int("lessons", len(lessons)),
	)

	s.notifyStudent(ctx, booking.StudentID, tutor, lessons)

	return &AssignResult{
		Lessons:  lessons,
		SeriesID: seriesID,
		Term:     currentTerm,
		Message:  MsgTutorAssigned,
	}, nil
}

func (s *AssignmentService) notifyStudent(ctx context.Context, studentID int64, tutor *model.Tutor, lessons []*model.Lesson) {
	if s.notifier == nil {
		return
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		s.logger.Error("Failed to load student for notification",
			zap.Int64("student_id", studentID),
			zap.Error(err))
		return
	}

	go s.notifier.NotifySeriesBooked(context.WithoutCancel(ctx), student, tutor, lessons)
}
