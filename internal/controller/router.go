package controller

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api")

	api.Post("/bookings", h.CreateBooking)
	api.Get("/bookings", h.ListOpenBookings)
	api.Delete("/bookings/:id", h.DeleteBooking)

	api.Get("/bookings/:id/assignment", h.AssignmentPage)
	api.Put("/bookings/:id", h.EditBooking)
	api.Post("/bookings/:id/assign", h.AssignTutor)

	api.Get("/terms/:year", h.TermDates)
	api.Get("/tutors/:id/schedule.png", h.TutorScheduleImage)

	api.Post("/tutors", h.CreateTutor)
	api.Get("/tutors", h.ListTutors)
	api.Post("/students", h.CreateStudent)
	api.Delete("/students/:id", h.DeleteStudent)
}
