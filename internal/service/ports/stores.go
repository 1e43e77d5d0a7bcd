// Package ports declares the store and notifier interfaces the services
// depend on. The pgx repositories implement them; tests substitute stubs.
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/codetutors/code_tutors/internal/model"
)

// BookingStore persists booking requests.
type BookingStore interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	Update(ctx context.Context, booking *model.Booking) error
	Delete(ctx context.Context, id int64) error
	ListOpenByStudent(ctx context.Context, studentID int64) ([]*model.Booking, error)
	ListOpen(ctx context.Context) ([]*model.Booking, error)
}

// TutorStore reads tutor profiles.
type TutorStore interface {
	GetByID(ctx context.Context, id int64) (*model.Tutor, error)
	FindAvailable(ctx context.Context, lang model.Language, day time.Weekday) ([]*model.Tutor, error)
}

// LessonStore reads a tutor's confirmed schedule and commits recurrence
// series. CreateSeries is atomic: the source booking is closed and every
// snapshot booking plus lesson is inserted in one transaction, or none are.
type LessonStore interface {
	ListByTutorAndDate(ctx context.Context, tutorID int64, date time.Time) ([]*model.Lesson, error)
	ListByTutorBetween(ctx context.Context, tutorID int64, from, to time.Time) ([]*model.Lesson, error)
	CreateSeries(ctx context.Context, source *model.Booking, snapshots []*model.Booking,
		tutorID int64, seriesID uuid.UUID) ([]*model.Lesson, error)
}

// StudentStore reads student records.
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*model.Student, error)
}

// TutorDirectory extends TutorStore with the admin management operations.
type TutorDirectory interface {
	TutorStore
	Create(ctx context.Context, tutor *model.Tutor) error
	List(ctx context.Context) ([]*model.Tutor, error)
}

// StudentDirectory extends StudentStore with the admin management operations.
type StudentDirectory interface {
	StudentStore
	Create(ctx context.Context, student *model.Student) error
	Delete(ctx context.Context, id int64) error
}
