package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/repository/base"
)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// Create inserts a student record.
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, email, telegram_chat_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		student.FirstName,
		student.LastName,
		student.Email,
		student.TelegramChatID,
	).Scan(&student.ID, &student.CreatedAt)

	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID fetches a student, returning model.ErrNotFound when missing.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	query := `
		SELECT id, first_name, last_name, email, telegram_chat_id, created_at
		FROM students
		WHERE id = $1
	`

	var student model.Student
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.TelegramChatID,
		&student.CreatedAt,
	)
	if err != nil {
		if base.IsNotFound(err) {
			return nil, fmt.Errorf("student %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return &student, nil
}

// Delete removes a student; their bookings and dependent lessons cascade.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("student %d: %w", id, model.ErrNotFound)
	}

	return nil
}
