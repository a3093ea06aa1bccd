package booking

import (
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/domain/availability"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDuplicate reports that an identical blocked date already exists.
	ErrDuplicate = errors.New("already exists")
)

// SlotTakenError means the requested start time is not bookable any more.
type SlotTakenError struct {
	BarberID string
	Date     string
	Time     string
	Reason   availability.Reason
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s %s for barber %s is not available (%s)", e.Date, e.Time, e.BarberID, e.Reason)
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a storage driver failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err for op. Nil, ErrNotFound and domain errors pass
// through untouched so callers can keep matching on them.
func Persistence(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}

	var taken *SlotTakenError
	var invalid *ValidationError
	var already *PersistenceError
	if errors.As(err, &taken) || errors.As(err, &invalid) || errors.As(err, &already) {
		return err
	}

	return &PersistenceError{Op: op, Err: err}
}
