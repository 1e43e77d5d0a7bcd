package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codetutors/code_tutors/internal/model"
	"github.com/codetutors/code_tutors/internal/repository/base"
)

type TutorRepository struct {
	pool *pgxpool.Pool
}

func NewTutorRepository(pool *pgxpool.Pool) *TutorRepository {
	return &TutorRepository{pool: pool}
}

// Create inserts a tutor profile.
func (r *TutorRepository) Create(ctx context.Context, tutor *model.Tutor) error {
	query := `
		INSERT INTO tutors (first_name, last_name, specialties, availability, rate_cents)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		tutor.FirstName,
		tutor.LastName,
		languagesToStrings(tutor.Specialties),
		weekdaysToInts(tutor.Availability),
		tutor.RateCents,
	).Scan(&tutor.ID, &tutor.CreatedAt)

	if err != nil {
		return fmt.Errorf("create tutor: %w", err)
	}

	return nil
}

// GetByID fetches a tutor, returning model.ErrNotFound when missing.
func (r *TutorRepository) GetByID(ctx context.Context, id int64) (*model.Tutor, error) {
	query := `
		SELECT id, first_name, last_name, specialties, availability, rate_cents, created_at
		FROM tutors
		WHERE id = $1
	`

	tutor, err := scanTutor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, fmt.Errorf("tutor %d: %w", id, model.ErrNotFound)
		}
		return nil, fmt.Errorf("get tutor by id: %w", err)
	}

	return tutor, nil
}

// FindAvailable returns tutors whose specialty set contains lang and whose
// availability set contains day. An empty result is not an error.
func (r *TutorRepository) FindAvailable(ctx context.Context, lang model.Language, day time.Weekday) ([]*model.Tutor, error) {
	query := `
		SELECT id, first_name, last_name, specialties, availability, rate_cents, created_at
		FROM tutors
		WHERE $1 = ANY(specialties) AND $2 = ANY(availability)
		ORDER BY last_name, first_name
	`

	return r.list(ctx, query, string(lang), int16(day))
}

// List returns every tutor ordered by name.
func (r *TutorRepository) List(ctx context.Context) ([]*model.Tutor, error) {
	query := `
		SELECT id, first_name, last_name, specialties, availability, rate_cents, created_at
		FROM tutors
		ORDER BY last_name, first_name
	`

	return r.list(ctx, query)
}

func (r *TutorRepository) list(ctx context.Context, query string, args ...any) ([]*model.Tutor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tutors: %w", err)
	}
	defer rows.Close()

	var tutors []*model.Tutor
	for rows.Next() {
		tutor, err := scanTutor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tutor: %w", err)
		}
		tutors = append(tutors, tutor)
	}

	return tutors, rows.Err()
}

func scanTutor(row rowScanner) (*model.Tutor, error) {
	var (
		tutor        model.Tutor
		specialties  []string
		availability []int16
	)

	err := row.Scan(
		&tutor.ID,
		&tutor.FirstName,
		&tutor.LastName,
		&specialties,
		&availability,
		&tutor.RateCents,
		&tutor.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	tutor.Specialties = make([]model.Language, len(specialties))
	for i, s := range specialties {
		tutor.Specialties[i] = model.Language(s)
	}
	tutor.Availability = make([]time.Weekday, len(availability))
	for i, d := range availability {
		tutor.Availability[i] = time.Weekday(d)
	}

	return &tutor, nil
}

func languagesToStrings(langs []model.Language) []string {
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = string(l)
	}
	return out
}

func weekdaysToInts(days []time.Weekday) []int16 {
	out := make([]int16, len(days))
	for i, d := range days {
		out[i] = int16(d)
	}
	return out
}
