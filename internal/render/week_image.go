// Package render draws a tutor's weekly lesson schedule as a PNG.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/codetutors/code_tutors/internal/model"
)

const (
	imageWidth      = 1120
	imageHeight     = 760
	headerHeight    = 80
	leftLabelsWidth = 70
	totalDays       = 7
	minHour         = 8  // grid starts an hour before the working window
	maxHour         = 18 // and ends an hour after it
)

var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}
	lessonColor    = color.RGBA{255, 182, 193, 255}
	lessonTextCol  = color.RGBA{120, 40, 50, 255}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
)

// WeekImage renders the tutor's lessons for the week starting at weekStart
// (a Monday) and returns the encoded PNG.
func WeekImage(tutor *model.Tutor, lessons []*model.Lesson, weekStart time.Time) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	title := fmt.Sprintf("%s - week of %s", tutor.FullName(), weekStart.Format("2 Jan 2006"))
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)

	dayWidth := float64(imageWidth-leftLabelsWidth) / totalDays
	gridHeight := float64(imageHeight - headerHeight)
	hourHeight := gridHeight / float64(maxHour-minHour)

	// Day columns with alternating shading and date labels.
	for day := 0; day < totalDays; day++ {
		x := float64(leftLabelsWidth) + float64(day)*dayWidth
		if day%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, headerHeight, dayWidth, gridHeight)
		dc.Fill()

		date := weekStart.AddDate(0, 0, day)
		dc.SetColor(textColor)
		dc.DrawStringAnchored(date.Format("Mon 2 Jan"), x+dayWidth/2, headerHeight-12, 0.5, 0.5)
	}

	// Hour lines and labels.
	for hour := minHour; hour <= maxHour; hour++ {
		y := float64(headerHeight) + float64(hour-minHour)*hourHeight
		dc.SetColor(hourLineColor)
		dc.SetLineWidth(0.5)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()

		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hour), leftLabelsWidth/2, y, 0.5, 0.5)
	}

	// Lesson blocks.
	for _, lesson := range lessons {
		booking := lesson.Booking
		if booking == nil {
			continue
		}

		day := int(booking.Date.Sub(weekStart).Hours() / 24)
		if day < 0 || day >= totalDays {
			continue
		}

		startMin := booking.StartHour*60 + booking.StartMinute
		top := float64(headerHeight) + (float64(startMin)/60-minHour)*hourHeight
		height := float64(booking.Duration.Minutes()) / 60 * hourHeight
		x := float64(leftLabelsWidth) + float64(day)*dayWidth

		dc.SetColor(lessonColor)
		dc.DrawRoundedRectangle(x+4, top+1, dayWidth-8, height-2, 6)
		dc.Fill()

		label := fmt.Sprintf("%s %02d:%02d", booking.Language, booking.StartHour, booking.StartMinute)
		dc.SetColor(lessonTextCol)
		dc.DrawStringAnchored(label, x+dayWidth/2, top+height/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode schedule image: %w", err)
	}

	return buf.Bytes(), nil
}
