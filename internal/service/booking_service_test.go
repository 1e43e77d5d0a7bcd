package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetutors/code_tutors/internal/auth"
	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/term"
)

func newBookingService(store *stubBookingStore) *BookingService {
	students := &stubStudentStore{students: map[int64]*model.Student{
		7: {ID: 7, FirstName: "Sam", LastName: "Student"},
	}}
	return NewBookingService(store, students, testLogger())
}

func validInput() BookingInput {
	return BookingInput{
		Date:      term.Date(2023, time.September, 4), // Monday, Term 3
		StartHour: 10,
		Day:       "Monday",
		Frequency: "weekly",
		Duration:  "short",
		Language:  "Python",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	store := newStubBookingStore()
	svc := newBookingService(store)
	student := auth.Actor{ID: 7, Role: auth.RoleStudent}

	booking, err := svc.CreateBooking(context.Background(), student, validInput())

	require.NoError(t, err)
	assert.NotZero(t, booking.ID)
	assert.Equal(t, int64(7), booking.StudentID)
	assert.Equal(t, model.BookingStatusOpen, booking.Status)
	assert.Equal(t, model.DefaultVenue, booking.Venue)
	assert.Equal(t, time.Monday, booking.Day)
}

func TestCreateBooking_TutorForbidden(t *testing.T) {
	svc := newBookingService(newStubBookingStore())

	_, err := svc.CreateBooking(context.Background(), auth.Actor{ID: 3, Role: auth.RoleTutor}, validInput())

	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestCreateBooking_UnsupportedLanguage(t *testing.T) {
	svc := newBookingService(newStubBookingStore())
	input := validInput()
	input.Language = "COBOL"

	_, err := svc.CreateBooking(context.Background(), auth.Actor{ID: 7, Role: auth.RoleStudent}, input)

	var fields model.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "language")
}

func TestCreateBooking_HolidayDateRejected(t *testing.T) {
	svc := newBookingService(newStubBookingStore())
	input := validInput()
	input.Date = term.Date(2023, time.August, 7) // Monday in the summer break

	_, err := svc.CreateBooking(context.Background(), auth.Actor{ID: 7, Role: auth.RoleStudent}, input)

	var fields model.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "date")
}

func TestListOpenBookings_ByRole(t *testing.T) {
	mine := mondayBooking()
	theirs := mondayBooking()
	theirs.ID = 2
	theirs.StudentID = 8
	store := newStubBookingStore(mine, theirs)
	svc := newBookingService(store)

	all, err := svc.ListOpenBookings(context.Background(), auth.Actor{ID: 99, Role: auth.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.ListOpenBookings(context.Background(), auth.Actor{ID: 7, Role: auth.RoleStudent})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, int64(7), own[0].StudentID)

	_, err = svc.ListOpenBookings(context.Background(), auth.Actor{ID: 3, Role: auth.RoleTutor})
	assert.ErrorIs(t, err, model.ErrForbidden)
}

func TestDeleteBooking_OwnerOnly(t *testing.T) {
	booking := mondayBooking()
	store := newStubBookingStore(booking)
	svc := newBookingService(store)

	err := svc.DeleteBooking(context.Background(), auth.Actor{ID: 8, Role: auth.RoleStudent}, booking.ID)
	assert.ErrorIs(t, err, model.ErrForbidden)

	err = svc.DeleteBooking(context.Background(), auth.Actor{ID: 7, Role: auth.RoleStudent}, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, store.deleted)
}

func TestDeleteBooking_Missing(t *testing.T) {
	svc := newBookingService(newStubBookingStore())

	err := svc.DeleteBooking(context.Background(), auth.Actor{ID: 99, Role: auth.RoleAdmin}, 42)

	assert.ErrorIs(t, err, model.ErrNotFound)
}
