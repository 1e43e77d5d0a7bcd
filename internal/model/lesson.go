package model

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is a confirmed, tutor-assigned teaching session. Each lesson is
// backed by exactly one (closed) booking snapshot; all lessons generated
// from one accepted booking share a SeriesID.
type Lesson struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	TutorID   int64     `json:"tutor_id"`
	SeriesID  uuid.UUID `json:"series_id"`
	CreatedAt time.Time `json:"created_at"`

	Booking *Booking `json:"booking,omitempty"`
	Tutor   *Tutor   `json:"tutor,omitempty"`
}

// InvoiceCents returns the lesson price: the tutor's hourly rate times the
// duration multiplier (short=1, long=2). Zero when the rate is missing or
// the joined records are not loaded.
func (l *Lesson) InvoiceCents() int64 {
	if l.Tutor == nil || l.Booking == nil || l.Tutor.RateCents <= 0 {
		return 0
	}
	return l.Tutor.RateCents * l.Booking.Duration.Multiplier()
}
