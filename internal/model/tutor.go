package model

import "time"

// Tutor teaches one or more languages on the weekdays they are available.
// Specialties and availability are stored as sets rather than one boolean
// column per language/day.
type Tutor struct {
	ID           int64          `json:"id"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Specialties  []Language     `json:"specialties"`
	Availability []time.Weekday `json:"availability"` // Monday-Sunday
	RateCents    int64          `json:"rate_cents"`   // hourly rate in cents, >= 0
	CreatedAt    time.Time      `json:"created_at"`
}

// SpecializesIn reports whether the tutor teaches lang.
func (t *Tutor) SpecializesIn(lang Language) bool {
	for _, s := range t.Specialties {
		if s == lang {
			return true
		}
	}
	return false
}

// AvailableOn reports whether the tutor works on day.
func (t *Tutor) AvailableOn(day time.Weekday) bool {
	for _, d := range t.Availability {
		if d == day {
			return true
		}
	}
	return false
}

// EligibleFor reports whether the tutor matches a booking's language and
// requested weekday.
func (t *Tutor) EligibleFor(b *Booking) bool {
	return t.SpecializesIn(b.Language) && t.AvailableOn(b.Day)
}

// FullName returns the tutor's display name.
func (t *Tutor) FullName() string {
	return t.FirstName + " " + t.LastName
}
