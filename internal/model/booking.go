package model

import "time"

// DefaultVenue is where all lessons take place.
const DefaultVenue = "Code Tutors HQ"

// Working window for lesson start times.
const (
	WorkdayStartHour = 9
	WorkdayEndHour   = 17
)

// Booking is a student's lesson request. While status is OPEN it is pending
// tutor assignment; once a tutor is assigned the booking is CLOSED and the
// generated lesson series references per-date snapshots of it.
type Booking struct {
	ID          int64         `json:"id"`
	StudentID   int64         `json:"student_id"`
	Date        time.Time     `json:"date"` // UTC midnight, date only
	StartHour   int           `json:"start_hour"`
	StartMinute int           `json:"start_minute"`
	Day         time.Weekday  `json:"day"` // requested weekday, Monday-Friday
	Frequency   Frequency     `json:"frequency"`
	Duration    Duration      `json:"duration"`
	Language    Language      `json:"language"`
	Venue       string        `json:"venue"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Student *Student `json:"student,omitempty"`
}

// StartsAt returns the lesson start as an instant on the booking date.
func (b *Booking) StartsAt() time.Time {
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(),
		b.StartHour, b.StartMinute, 0, 0, time.UTC)
}

// EndsAt returns the lesson end instant (start + duration).
func (b *Booking) EndsAt() time.Time {
	return b.StartsAt().Add(time.Duration(b.Duration.Minutes()) * time.Minute)
}

// HasSchedule reports whether the booking carries enough data for the
// conflict check: a date and a start time inside a day.
func (b *Booking) HasSchedule() bool {
	return b != nil && !b.Date.IsZero() &&
		b.StartHour >= 0 && b.StartHour < 24 &&
		b.StartMinute >= 0 && b.StartMinute < 60
}

// Snapshot copies the booking's schedule fields into a fresh CLOSED booking
// on the given date. Snapshots back the lessons of a recurrence series and
// are never assignable.
func (b *Booking) Snapshot(date time.Time) *Booking {
	return &Booking{
		StudentID:   b.StudentID,
		Date:        date,
		StartHour:   b.StartHour,
		StartMinute: b.StartMinute,
		Day:         b.Day,
		Frequency:   b.Frequency,
		Duration:    b.Duration,
		Language:    b.Language,
		Venue:       b.Venue,
		Status:      BookingStatusClosed,
	}
}
