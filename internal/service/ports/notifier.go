package ports

import (
	"context"

	"github.com/codetutors/code_tutors/internal/model"
)

// AssignmentNotifier tells a student their lesson series was booked. Called
// after commit on a detached context; implementations must not fail the
// assignment.
type AssignmentNotifier interface {
	NotifySeriesBooked(ctx context.Context, student *model.Student, tutor *model.Tutor, lessons []*model.Lesson)
}
