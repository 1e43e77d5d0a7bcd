// Package controller exposes the booking and assignment workflows as a thin
// JSON API. Authentication happens upstream; the trusted proxy forwards the
// acting user in the X-Actor-ID and X-Actor-Role headers.
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/codetutors/code_tutors/internal/auth"
	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/service"
	"github.com/codetutors/code_tutors/internal/service/ports"
)

type Handler struct {
	bookings   *service.BookingService
	assignment *service.AssignmentService
	tutorStore ports.TutorDirectory
	students   ports.StudentDirectory
	lessons    ports.LessonStore
	logger     *zap.Logger
}

func NewHandler(
	bookings *service.BookingService,
	assignment *service.AssignmentService,
	tutorStore ports.TutorDirectory,
	students ports.StudentDirectory,
	lessons ports.LessonStore,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bookings:   bookings,
		assignment: assignment,
		tutorStore: tutorStore,
		students:   students,
		lessons:    lessons,
		logger:     logger,
	}
}

// actor reads the acting user from the trusted headers.
func actor(c *fiber.Ctx) (auth.Actor, error) {
	id, err := strconv.ParseInt(c.Get("X-Actor-ID"), 10, 64)
	if err != nil {
		return auth.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "missing or invalid X-Actor-ID header")
	}

	role := auth.Role(c.Get("X-Actor-Role"))
	if !role.Valid() {
		return auth.Actor{}, fiber.NewError(fiber.StatusUnauthorized, "missing or invalid X-Actor-Role header")
	}

	return auth.Actor{ID: id, Role: role}, nil
}

func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// respondError translates domain errors into HTTP responses. Recoverable
// conditions carry the user-facing message the assignment screen shows.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var fields model.FieldErrors

	switch {
	case errors.Is(err, model.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})

	case errors.Is(err, model.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})

	case errors.As(err, &fields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fields,
		})

	case errors.Is(err, model.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, model.ErrSchedulingConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": service.MsgTutorConflict})

	case errors.Is(err, model.ErrDuplicateAssignment):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "booking already has a lesson assigned"})

	case errors.Is(err, model.ErrNoValidTerm):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": model.ErrNoValidTerm.Error()})

	default:
		// ErrInvalidInput and unexpected failures are defects, not user
		// mistakes.
		h.logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

// bookingRequest is the wire form of service.BookingInput; dates travel as
// YYYY-MM-DD strings.
type bookingRequest struct {
	Date        string `json:"date"`
	StartHour   int    `json:"start_hour"`
	StartMinute int    `json:"start_minute"`
	Day         string `json:"day"`
	Frequency   string `json:"frequency"`
	Duration    string `json:"duration"`
	Language    string `json:"language"`
}

func (r bookingRequest) toInput() (service.BookingInput, error) {
	date, err := time.ParseInLocation("2006-01-02", r.Date, time.UTC)
	if err != nil {
		return service.BookingInput{}, model.FieldErrors{"date": "expected YYYY-MM-DD"}
	}

	return service.BookingInput{
		Date:        date,
		StartHour:   r.StartHour,
		StartMinute: r.StartMinute,
		Day:         r.Day,
		Frequency:   r.Frequency,
		Duration:    r.Duration,
		Language:    r.Language,
	}, nil
}
