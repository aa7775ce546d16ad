package booking

import (
	"fmt"
	"strings"
	"time"

	"roomreserve/models"
)

// ValidationError reports the first request rule a submission violated.
// Recoverable: the caller corrects the input and resubmits.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ConflictError reports that one or more requested slots are already
// taken for the room/date. The whole request is rejected; no partial
// admission.
type ConflictError struct {
	Room    models.Room
	Date    time.Time
	SlotIDs []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%d slot(s) already booked for %s on %s: %s",
		len(e.SlotIDs), e.Room, e.Date.Format("2006-01-02"), strings.Join(e.SlotIDs, ", "))
}

// PersistenceError wraps a booking-store failure. The commit is aborted
// entirely; nothing is written.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("booking store %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
