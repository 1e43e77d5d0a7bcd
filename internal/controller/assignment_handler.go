package controller

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codetutors/code_tutors/internal/render"
	"github.com/codetutors/code_tutors/internal/service"
	"github.com/codetutors/code_tutors/internal/term"
)

// AssignmentPage handles GET /api/bookings/:id/assignment. It returns the
// tri-state context the assignment screen renders: booking snapshot,
// eligible tutors and the no-tutors flag.
func (h *Handler) AssignmentPage(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	page, err := h.assignment.Page(c.Context(), act, id)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(page)
}

// EditBooking handles PUT /api/bookings/:id, the "save changes" branch of
// the assignment screen.
func (h *Handler) EditBooking(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req bookingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	input, err := req.toInput()
	if err != nil {
		return h.respondError(c, err)
	}

	page, err := h.assignment.EditBooking(c.Context(), act, id, input)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": service.MsgBookingUpdated,
		"page":    page,
	})
}

// AssignTutor handles POST /api/bookings/:id/assign.
func (h *Handler) AssignTutor(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req struct {
		TutorID int64 `json:"tutor_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.TutorID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "tutor_id is required")
	}

	result, err := h.assignment.AssignTutor(c.Context(), act, id, req.TutorID)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(result)
}

// TermDates handles GET /api/terms/:year.
func (h *Handler) TermDates(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1583 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid year")
	}

	return c.JSON(fiber.Map{"terms": term.Dates(year)})
}

// TutorScheduleImage handles GET /api/tutors/:id/schedule.png?week=YYYY-MM-DD
// and renders the tutor's lessons for that week. The week defaults to the
// current one and is normalized to its Monday.
func (h *Handler) TutorScheduleImage(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	tutor, err := h.tutorStore.GetByID(c.Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}

	weekStart := time.Now().UTC()
	if raw := c.Query("week"); raw != "" {
		weekStart, err = time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "week must be YYYY-MM-DD")
		}
	}
	weekStart = term.Date(weekStart.Year(), weekStart.Month(), weekStart.Day())
	// Roll back to Monday.
	offset := (int(weekStart.Weekday()) - int(time.Monday) + 7) % 7
	weekStart = weekStart.AddDate(0, 0, -offset)

	lessons, err := h.lessons.ListByTutorBetween(c.Context(), id, weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return h.respondError(c, err)
	}

	png, err := render.WeekImage(tutor, lessons, weekStart)
	if err != nil {
		return h.respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
