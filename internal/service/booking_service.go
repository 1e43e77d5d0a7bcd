package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/codetutors/code_tutors/internal/auth"
	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/service/ports"
)

// BookingService handles the booking lifecycle around the assignment core:
// students submit requests, list their open ones, and delete them.
type BookingService struct {
	bookings ports.BookingStore
	students ports.StudentStore
	validate *validator.Validate
	logger   *zap.Logger
}

func NewBookingService(
	bookings ports.BookingStore,
	students ports.StudentStore,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		students: students,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateBooking validates and stores a new OPEN booking owned by the acting
// student.
func (s *BookingService) CreateBooking(ctx context.Context, actor auth.Actor, input BookingInput) (*model.Booking, error) {
	if err := auth.Authorize(actor, auth.ActionCreateBooking, actor.ID); err != nil {
		return nil, err
	}

	if err := validateBookingInput(s.validate, input); err != nil {
		return nil, err
	}

	student, err := s.students.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}

	booking := &model.Booking{
		StudentID: student.ID,
		Venue:     model.DefaultVenue,
		Status:    model.BookingStatusOpen,
	}
	input.apply(booking)

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("student_id", student.ID),
		zap.String("language", string(booking.Language)),
		zap.Time("date", booking.Date),
	)

	return booking, nil
}

// ListOpenBookings returns the pending queue: every open booking for admins,
// the actor's own for students.
func (s *BookingService) ListOpenBookings(ctx context.Context, actor auth.Actor) ([]*model.Booking, error) {
	if actor.Role == auth.RoleAdmin {
		return s.bookings.ListOpen(ctx)
	}
	if actor.Role == auth.RoleStudent {
		return s.bookings.ListOpenByStudent(ctx, actor.ID)
	}
	return nil, fmt.Errorf("list bookings as %s: %w", actor.Role, model.ErrForbidden)
}

// DeleteBooking removes a booking. Only the owning student or an admin may
// delete; dependent lessons cascade away with it.
func (s *BookingService) DeleteBooking(ctx context.Context, actor auth.Actor, bookingID int64) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := auth.Authorize(actor, auth.ActionDeleteBooking, booking.StudentID); err != nil {
		return err
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return err
	}

	s.logger.Info("Booking deleted",
		zap.Int64("booking_id", bookingID),
		zap.Int64("actor_id", actor.ID),
		zap.String("actor_role", string(actor.Role)),
	)

	return nil
}
