package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetutors/code_tutors/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestWeekImage(t *testing.T) {
	tutor := &model.Tutor{FirstName: "Ada", LastName: "Lovelace"}
	weekStart := time.Date(2023, time.September, 4, 0, 0, 0, 0, time.UTC)
	lessons := []*model.Lesson{
		{Booking: &model.Booking{
			Date:      weekStart,
			StartHour: 10,
			Duration:  model.DurationLong,
			Language:  model.LanguagePython,
		}},
	}

	png, err := WeekImage(tutor, lessons, weekStart)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestWeekImage_SkipsLessonsOutsideWeek(t *testing.T) {
	tutor := &model.Tutor{FirstName: "Ada", LastName: "Lovelace"}
	weekStart := time.Date(2023, time.September, 4, 0, 0, 0, 0, time.UTC)
	lessons := []*model.Lesson{
		{Booking: &model.Booking{Date: weekStart.AddDate(0, 0, 14), StartHour: 10}},
		{Booking: nil},
	}

	_, err := WeekImage(tutor, lessons, weekStart)

	require.NoError(t, err)
}
