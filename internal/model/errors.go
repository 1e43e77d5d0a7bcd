package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel domain errors. Callers match them with errors.Is.
var (
	// ErrNotFound - booking, tutor, student or lesson id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput - malformed arguments to a core operation; a contract
	// violation rather than a user mistake.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoValidTerm - booking date does not fall within any school term.
	ErrNoValidTerm = errors.New("no valid term found for the booking date")

	// ErrSchedulingConflict - the tutor already has an overlapping lesson.
	ErrSchedulingConflict = errors.New("scheduling conflict")

	// ErrForbidden - the actor's role or ownership does not allow the action.
	ErrForbidden = errors.New("forbidden")

	// ErrValidation - user-submitted fields failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateAssignment - the booking already has a lesson.
	ErrDuplicateAssignment = errors.New("booking already has a lesson assigned")
)

// FieldErrors carries per-field validation messages. It wraps ErrValidation
// so errors.Is(err, ErrValidation) holds.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ErrValidation.Error()
	}
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, fe[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error {
	return ErrValidation
}
