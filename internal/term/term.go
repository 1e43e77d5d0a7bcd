// Package term computes the three school terms of a year from the academic
// calendar rule anchored on Easter. All boundaries are normalized to
// Monday starts and Sunday ends; ranges are inclusive on both ends.
package term

import "time"

// Term is a named date range within a school year. Terms are recomputed on
// demand and never persisted.
type Term struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"` // always a Monday
	End   time.Time `json:"end"`   // always a Sunday
}

// Contains reports whether d falls inside the term, boundaries included.
func (t Term) Contains(d time.Time) bool {
	d = Date(d.Year(), d.Month(), d.Day())
	return !d.Before(t.Start) && !d.After(t.End)
}

// Date builds a UTC-midnight date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Dates returns the three terms of year in chronological order:
//   - Term 1: first Monday of January to the Sunday before Easter Sunday.
//   - Term 2: first Monday at least two weeks after Term 1 ends, to the
//     Sunday on or before July 18.
//   - Term 3: first Monday of September to the Sunday two weeks before the
//     first Monday of the following January.
func Dates(year int) []Term {
	easter := EasterSunday(year)

	term1Start := nextMonday(Date(year, time.January, 1))
	term1End := prevSunday(easter.AddDate(0, 0, -1))

	term2Start := nextMonday(term1End.AddDate(0, 0, 14))
	term2End := prevSunday(Date(year, time.July, 18))

	term3Start := nextMonday(Date(year, time.September, 1))
	janMondayNext := nextMonday(Date(year+1, time.January, 1))
	term3End := prevSunday(janMondayNext.AddDate(0, 0, -14))

	return []Term{
		{Name: "Term 1", Start: term1Start, End: term1End},
		{Name: "Term 2", Start: term2Start, End: term2End},
		{Name: "Term 3", Start: term3Start, End: term3End},
	}
}

// ForDate returns the term containing d, if any.
func ForDate(d time.Time) (Term, bool) {
	for _, t := range Dates(d.Year()) {
		if t.Contains(d) {
			return t, true
		}
	}
	return Term{}, false
}

// EasterSunday computes Easter for a year using the anonymous Gregorian
// computus.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date(year, time.Month(month), day)
}

// nextMonday returns the first Monday on or after d.
func nextMonday(d time.Time) time.Time {
	offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// prevSunday returns the last Sunday on or before d.
func prevSunday(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}
