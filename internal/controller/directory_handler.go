package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/codetutors/code_tutors/internal/auth"
	"github.com/codetutors/code_tutors/internal/model"
)

// Admin-only management of the tutor and student profiles the assignment
// workflow matches against.

type tutorRequest struct {
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	Specialties  []string `json:"specialties"`
	Availability []string `json:"availability"` // weekday names
	RateCents    int64    `json:"rate_cents"`
}

var weekdayByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func (r tutorRequest) toTutor() (*model.Tutor, error) {
	fields := model.FieldErrors{}
	if r.FirstName == "" {
		fields["first_name"] = "required"
	}
	if r.LastName == "" {
		fields["last_name"] = "required"
	}
	if r.RateCents < 0 {
		fields["rate_cents"] = "must not be negative"
	}

	tutor := &model.Tutor{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		RateCents: r.RateCents,
	}
	for _, s := range r.Specialties {
		lang := model.Language(s)
		if !lang.Valid() {
			fields["specialties"] = "unsupported language " + s
			break
		}
		tutor.Specialties = append(tutor.Specialties, lang)
	}
	for _, name := range r.Availability {
		day, ok := weekdayByName[name]
		if !ok {
			fields["availability"] = "unknown weekday " + name
			break
		}
		tutor.Availability = append(tutor.Availability, day)
	}

	if len(fields) > 0 {
		return nil, fields
	}
	return tutor, nil
}

// CreateTutor handles POST /api/tutors.
func (h *Handler) CreateTutor(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	if err := auth.Authorize(act, auth.ActionManageProfiles, 0); err != nil {
		return h.respondError(c, err)
	}

	var req tutorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	tutor, err := req.toTutor()
	if err != nil {
		return h.respondError(c, err)
	}

	if err := h.tutorStore.Create(c.Context(), tutor); err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"tutor": tutor})
}

// ListTutors handles GET /api/tutors.
func (h *Handler) ListTutors(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	if err := auth.Authorize(act, auth.ActionManageProfiles, 0); err != nil {
		return h.respondError(c, err)
	}

	tutors, err := h.tutorStore.List(c.Context())
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(fiber.Map{"tutors": tutors})
}

// CreateStudent handles POST /api/students.
func (h *Handler) CreateStudent(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	if err := auth.Authorize(act, auth.ActionManageProfiles, 0); err != nil {
		return h.respondError(c, err)
	}

	var student model.Student
	if err := c.BodyParser(&student); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if student.FirstName == "" || student.LastName == "" || student.Email == "" {
		return h.respondError(c, model.FieldErrors{"student": "first_name, last_name and email are required"})
	}

	if err := h.students.Create(c.Context(), &student); err != nil {
		return h.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"student": student})
}

// DeleteStudent handles DELETE /api/students/:id. Bookings and lessons of the
// student cascade away with the row.
func (h *Handler) DeleteStudent(c *fiber.Ctx) error {
	act, err := actor(c)
	if err != nil {
		return err
	}
	if err := auth.Authorize(act, auth.ActionManageProfiles, 0); err != nil {
		return h.respondError(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.students.Delete(c.Context(), id); err != nil {
		return h.respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
