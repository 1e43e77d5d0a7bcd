// Package notification delivers booking confirmations to students over
// Telegram. The notifier degrades to a no-op when no bot token is
// configured; delivery failures are logged and never surface to callers.
package notification

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"

	"github.com/codetutors/code_tutors/internal/model"
)

type TelegramNotifier struct {
	bot    *bot.Bot
	logger *zap.Logger
}

// NewTelegramNotifier creates the notifier. An empty token disables it.
func NewTelegramNotifier(token string, logger *zap.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("Telegram token is empty, booking notifications disabled")
		return &TelegramNotifier{logger: logger}, nil
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: b, logger: logger}, nil
}

// NotifySeriesBooked messages the student that their tutor is assigned and
// the term's lessons are booked.
func (n *TelegramNotifier) NotifySeriesBooked(ctx context.Context, student *model.Student, tutor *model.Tutor, lessons []*model.Lesson) {
	if n.bot == nil {
		return
	}
	if student.TelegramChatID == nil {
		n.logger.Debug("Notification skipped, student has no linked chat",
			zap.Int64("student_id", student.ID))
		return
	}
	if len(lessons) == 0 {
		return
	}

	first := lessons[0].Booking
	last := lessons[len(lessons)-1].Booking
	text := fmt.Sprintf(
		"Tutor assigned! %s will teach your %s lessons.\nFirst lesson: %s at %02d:%02d\nLast lesson of the term: %s\nLessons booked: %d",
		tutor.FullName(),
		first.Language,
		first.Date.Format("Monday, 2 January 2006"),
		first.StartHour, first.StartMinute,
		last.Date.Format("Monday, 2 January 2006"),
		len(lessons),
	)

	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: *student.TelegramChatID,
		Text:   text,
	})
	if err != nil {
		n.logger.Error("Failed to send telegram notification",
			zap.Int64("student_id", student.ID),
			zap.Int64("chat_id", *student.TelegramChatID),
			zap.Error(err))
	}
}
