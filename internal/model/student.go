package model

import "time"

// Student owns bookings. Deleting a student cascades to their bookings and,
// through those, to any dependent lessons.
type Student struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"` // nil if not linked
	CreatedAt      time.Time `json:"created_at"`
}

// FullName returns the student's display name.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
