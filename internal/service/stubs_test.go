package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/term"
)

// In-memory stand-ins for the pgx stores, shared by the service tests.

type stubBookingStore struct {
	bookings map[int64]*model.Booking
	nextID   int64
	updated  int
	deleted  []int64
}

func newStubBookingStore(bookings ...*model.Booking) *stubBookingStore {
	s := &stubBookingStore{bookings: map[int64]*model.Booking{}, nextID: 100}
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
	return s
}

func (s *stubBookingStore) Create(_ context.Context, b *model.Booking) error {
	s.nextID++
	b.ID = s.nextID
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	s.bookings[b.ID] = b
	return nil
}

func (s *stubBookingStore) GetByID(_ context.Context, id int64) (*model.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %d: %w", id, model.ErrNotFound)
	}
	return b, nil
}

func (s *stubBookingStore) Update(_ context.Context, b *model.Booking) error {
	if _, ok := s.bookings[b.ID]; !ok {
		return fmt.Errorf("booking %d: %w", b.ID, model.ErrNotFound)
	}
	s.bookings[b.ID] = b
	s.updated++
	return nil
}

func (s *stubBookingStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.bookings[id]; !ok {
		return fmt.Errorf("booking %d: %w", id, model.ErrNotFound)
	}
	delete(s.bookings, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubBookingStore) ListOpenByStudent(_ context.Context, studentID int64) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range s.bookings {
		if b.StudentID == studentID && b.Status == model.BookingStatusOpen {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingStore) ListOpen(_ context.Context) ([]*model.Booking, error) {
	var out []*model.Booking
	for _, b := range s.bookings {
		if b.Status == model.BookingStatusOpen {
			out = append(out, b)
		}
	}
	return out, nil
}

type stubTutorStore struct {
	tutors []*model.Tutor
}

func (s *stubTutorStore) GetByID(_ context.Context, id int64) (*model.Tutor, error) {
	for _, t := range s.tutors {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, fmt.Errorf("tutor %d: %w", id, model.ErrNotFound)
}

func (s *stubTutorStore) FindAvailable(_ context.Context, lang model.Language, day time.Weekday) ([]*model.Tutor, error) {
	var out []*model.Tutor
	for _, t := range s.tutors {
		if t.SpecializesIn(lang) && t.AvailableOn(day) {
			out = append(out, t)
		}
	}
	return out, nil
}

type stubLessonStore struct {
	existing []*model.Lesson // returned by ListByTutorAndDate

	seriesCalls int
	source      *model.Booking
	snapshots   []*model.Booking
	tutorID     int64
	seriesErr   error
}

func (s *stubLessonStore) ListByTutorAndDate(_ context.Context, tutorID int64, date time.Time) ([]*model.Lesson, error) {
	var out []*model.Lesson
	for _, l := range s.existing {
		if l.TutorID == tutorID && l.Booking != nil && l.Booking.Date.Equal(date) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubLessonStore) ListByTutorBetween(_ context.Context, tutorID int64, from, to time.Time) ([]*model.Lesson, error) {
	return nil, nil
}

func (s *stubLessonStore) CreateSeries(_ context.Context, source *model.Booking, snapshots []*model.Booking, tutorID int64, seriesID uuid.UUID) ([]*model.Lesson, error) {
	s.seriesCalls++
	s.source = source
	s.snapshots = snapshots
	s.tutorID = tutorID

	if s.seriesErr != nil {
		return nil, s.seriesErr
	}

	lessons := make([]*model.Lesson, len(snapshots))
	for i, snap := range snapshots {
		snap.ID = int64(1000 + i)
		lessons[i] = &model.Lesson{
			ID:        int64(2000 + i),
			BookingID: snap.ID,
			TutorID:   tutorID,
			SeriesID:  seriesID,
			Booking:   snap,
		}
	}
	source.Status = model.BookingStatusClosed
	return lessons, nil
}

type stubStudentStore struct {
	students map[int64]*model.Student
}

func (s *stubStudentStore) GetByID(_ context.Context, id int64) (*model.Student, error) {
	st, ok := s.students[id]
	if !ok {
		return nil, fmt.Errorf("student %d: %w", id, model.ErrNotFound)
	}
	return st, nil
}

type stubNotifier struct {
	notified chan *model.Student
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{notified: make(chan *model.Student, 1)}
}

func (s *stubNotifier) NotifySeriesBooked(_ context.Context, student *model.Student, _ *model.Tutor, _ []*model.Lesson) {
	s.notified <- student
}

// Shared fixtures.

func mondayBooking() *model.Booking {
	// Monday Sep 4 2023, the first day of Term 3.
	return &model.Booking{
		ID:        1,
		StudentID: 7,
		Date:      term.Date(2023, time.September, 4),
		StartHour: 10,
		Day:       time.Monday,
		Frequency: model.FrequencyWeekly,
		Duration:  model.DurationShort,
		Language:  model.LanguagePython,
		Venue:     model.DefaultVenue,
		Status:    model.BookingStatusOpen,
	}
}

func pythonTutor() *model.Tutor {
	return &model.Tutor{
		ID:           2,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Specialties:  []model.Language{model.LanguagePython, model.LanguageC},
		Availability: []time.Weekday{time.Monday, time.Wednesday},
		RateCents:    2500,
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
