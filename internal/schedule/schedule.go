// Package schedule holds the pure date and interval arithmetic behind
// conflict detection and recurrence generation.
package schedule

import (
	"time"

	"github.com/codetutors/code_tutors/internal/model"
)

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Intervals that merely abut (one ends exactly
// when the other begins) do not overlap, so back-to-back lessons are fine.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BookingsOverlap applies the half-open interval test to two bookings'
// start/end instants.
func BookingsOverlap(a, b *model.Booking) bool {
	return Overlaps(a.StartsAt(), a.EndsAt(), b.StartsAt(), b.EndsAt())
}

// SeriesDates enumerates every lesson date of a recurrence series: start,
// then start plus the frequency step, repeated up to and including termEnd.
// If start is already past termEnd the result is empty; if start is the last
// eligible date the series has exactly one entry.
func SeriesDates(start, termEnd time.Time, freq model.Frequency) []time.Time {
	step := freq.StepDays()

	var dates []time.Time
	for d := start; !d.After(termEnd); d = d.AddDate(0, 0, step) {
		dates = append(dates, d)
	}
	return dates
}
