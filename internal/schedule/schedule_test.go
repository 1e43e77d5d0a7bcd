package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/term"
)

func booking(day int, hour int, dur model.Duration) *model.Booking {
	return &model.Booking{
		Date:      term.Date(2023, time.September, day),
		StartHour: hour,
		Duration:  dur,
	}
}

func TestOverlaps_Abutting(t *testing.T) {
	// Existing short lesson at 10:00 ends exactly when the candidate at
	// 11:00 begins: no conflict.
	existing := booking(4, 10, model.DurationShort)
	candidate := booking(4, 11, model.DurationShort)

	assert.False(t, BookingsOverlap(candidate, existing))
	assert.False(t, BookingsOverlap(existing, candidate))
}

func TestOverlaps_InsideLongLesson(t *testing.T) {
	// Existing long lesson 10:00-12:00 swallows a candidate starting 11:00.
	existing := booking(4, 10, model.DurationLong)
	candidate := booking(4, 11, model.DurationShort)

	assert.True(t, BookingsOverlap(candidate, existing))
	assert.True(t, BookingsOverlap(existing, candidate))
}

func TestOverlaps_PartialMinute(t *testing.T) {
	existing := booking(4, 10, model.DurationShort) // 10:00-11:00
	candidate := &model.Booking{
		Date:        term.Date(2023, time.September, 4),
		StartHour:   10,
		StartMinute: 59,
		Duration:    model.DurationShort,
	}

	assert.True(t, BookingsOverlap(candidate, existing))
}

func TestSeriesDates_WeeklyFullTerm(t *testing.T) {
	// Term 3 of 2023 runs Monday Sep 4 through Sunday Dec 17. A weekly
	// Monday series should contain floor((end-start)/7)+1 lessons.
	start := term.Date(2023, time.September, 4)
	end := term.Date(2023, time.December, 17)

	dates := SeriesDates(start, end, model.FrequencyWeekly)

	want := int(end.Sub(start).Hours()/(7*24)) + 1
	require.Len(t, dates, want)
	assert.Equal(t, start, dates[0])
	assert.Equal(t, term.Date(2023, time.December, 11), dates[len(dates)-1])

	for i := 1; i < len(dates); i++ {
		assert.Equal(t, 7*24*time.Hour, dates[i].Sub(dates[i-1]))
	}
}

func TestSeriesDates_Fortnightly(t *testing.T) {
	start := term.Date(2023, time.September, 4)
	end := term.Date(2023, time.October, 2)

	dates := SeriesDates(start, end, model.FrequencyFortnightly)

	require.Len(t, dates, 3)
	assert.Equal(t, term.Date(2023, time.September, 18), dates[1])
	assert.Equal(t, term.Date(2023, time.October, 2), dates[2])
}

func TestSeriesDates_LastEligibleDate(t *testing.T) {
	// Booking on the term's final eligible occurrence of its weekday
	// produces exactly one lesson.
	start := term.Date(2023, time.December, 11)
	end := term.Date(2023, time.December, 17)

	dates := SeriesDates(start, end, model.FrequencyWeekly)

	require.Len(t, dates, 1)
	assert.Equal(t, start, dates[0])
}

func TestSeriesDates_EndDateInclusive(t *testing.T) {
	// A date landing exactly on the term end is still part of the series.
	start := term.Date(2023, time.December, 10)
	end := term.Date(2023, time.December, 17)

	dates := SeriesDates(start, end, model.FrequencyWeekly)

	require.Len(t, dates, 2)
	assert.Equal(t, end, dates[1])
}

func TestSeriesDates_StartAfterEnd(t *testing.T) {
	start := term.Date(2023, time.December, 18)
	end := term.Date(2023, time.December, 17)

	assert.Empty(t, SeriesDates(start, end, model.FrequencyWeekly))
}
