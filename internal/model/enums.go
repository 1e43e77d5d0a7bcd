package model

import "time"

// Language is a programming language tutors can teach.
type Language string

const (
	LanguagePython Language = "Python"
	LanguageJava   Language = "Java"
	LanguageRuby   Language = "Ruby"
	LanguageC      Language = "C"
	LanguageSQL    Language = "SQL"
)

// Languages lists every supported language.
var Languages = []Language{
	LanguagePython,
	LanguageJava,
	LanguageRuby,
	LanguageC,
	LanguageSQL,
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

// Frequency is how often a student wants their lessons.
type Frequency string

const (
	FrequencyWeekly      Frequency = "weekly"
	FrequencyFortnightly Frequency = "fortnightly"
)

// StepDays returns the calendar-day step between lessons in a series.
func (f Frequency) StepDays() int {
	if f == FrequencyFortnightly {
		return 14
	}
	return 7
}

// Valid reports whether f is a supported frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyFortnightly
}

// Duration is the lesson length category.
type Duration string

const (
	DurationShort Duration = "short" // 1 hour
	DurationLong  Duration = "long"  // 2 hours
)

// Minutes returns the lesson length in minutes.
func (d Duration) Minutes() int {
	if d == DurationLong {
		return 120
	}
	return 60
}

// Multiplier returns the invoice multiplier for the duration.
func (d Duration) Multiplier() int64 {
	if d == DurationLong {
		return 2
	}
	return 1
}

// Valid reports whether d is a supported duration.
func (d Duration) Valid() bool {
	return d == DurationShort || d == DurationLong
}

// BookingStatus is the lifecycle state of a booking request.
type BookingStatus string

const (
	BookingStatusOpen   BookingStatus = "OPEN"
	BookingStatusClosed BookingStatus = "CLOSED"
)

// LessonWeekdays are the weekdays bookings may request (Monday-Friday).
var LessonWeekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// ValidLessonWeekday reports whether d is a bookable weekday.
func ValidLessonWeekday(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}
