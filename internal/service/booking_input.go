package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/term"
)

// BookingInput carries the user-editable booking fields, both for creation
// and for the "edit booking" path of the assignment screen.
type BookingInput struct {
	Date        time.Time `json:"date" validate:"required"`
	StartHour   int       `json:"start_hour" validate:"min=0,max=23"`
	StartMinute int       `json:"start_minute" validate:"min=0,max=59"`
	Day         string    `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	Frequency   string    `json:"frequency" validate:"required,oneof=weekly fortnightly"`
	Duration    string    `json:"duration" validate:"required,oneof=short long"`
	Language    string    `json:"language" validate:"required"`
}

var weekdayNames = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
}

// validateBookingInput checks in against the struct tags and the domain
// rules (working window, weekday/date agreement, term membership). It
// returns model.FieldErrors wrapping model.ErrValidation on failure.
func validateBookingInput(v *validator.Validate, in BookingInput) error {
	fields := model.FieldErrors{}

	if err := v.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate booking input: %w", err)
		}
		for _, fe := range verrs {
			fields[jsonField(fe.Field())] = fmt.Sprintf("failed %q rule", fe.Tag())
		}
	}

	if !model.Language(in.Language).Valid() {
		fields["language"] = "unsupported language"
	}

	// Lessons start inside the 09:00-17:00 working window.
	if _, ok := fields["start_hour"]; !ok {
		startsTooEarly := in.StartHour < model.WorkdayStartHour
		startsTooLate := in.StartHour > model.WorkdayEndHour ||
			(in.StartHour == model.WorkdayEndHour && in.StartMinute > 0)
		if startsTooEarly || startsTooLate {
			fields["time"] = "lessons can only start between 9:00 AM and 5:00 PM"
		}
	}

	if !in.Date.IsZero() {
		date := term.Date(in.Date.Year(), in.Date.Month(), in.Date.Day())

		if day, ok := weekdayNames[in.Day]; ok && date.Weekday() != day {
			fields["date"] = fmt.Sprintf("date does not fall on a %s", in.Day)
		}

		if _, ok := term.ForDate(date); !ok {
			fields["date"] = "date falls outside every school term"
		}
	}

	if len(fields) > 0 {
		return fields
	}
	return nil
}

// jsonField converts a Go field name to its snake_case json key.
func jsonField(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// apply copies the validated input onto the booking.
func (in BookingInput) apply(b *model.Booking) {
	b.Date = term.Date(in.Date.Year(), in.Date.Month(), in.Date.Day())
	b.StartHour = in.StartHour
	b.StartMinute = in.StartMinute
	b.Day = weekdayNames[in.Day]
	b.Frequency = model.Frequency(in.Frequency)
	b.Duration = model.Duration(in.Duration)
	b.Language = model.Language(in.Language)
}
