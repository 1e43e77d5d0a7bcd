package controller

import (
	"github.com/gofiber/fiber/v2"
)

// CreateBooking handles POST /api/bookings.
func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	act, err := actor(c)
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

	booking, err := h.bookings.CreateBooking(c.Context(), act, input)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully!",
		"booking": booking,
	})
}

// ListOpenBookings handles GET /api/bookings.
func (h *Handler) ListOpenBookings(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.ListOpenBookings(c.Context(), act)
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"bookings": bookings})
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *Handler) DeleteBooking(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.bookings.DeleteBooking(c.Context(), act, id); err != nil {
		return h.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
