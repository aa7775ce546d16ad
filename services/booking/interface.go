package booking

import (
	"context"
	"sync"
	"time"

	"roomreserve/database/store"
	"roomreserve/models"
	"roomreserve/services/notification"
)

// BookingService is the engine boundary the presentation layer calls.
type BookingService interface {
	AvailableSlots(ctx context.Context, room models.Room, date time.Time) ([]models.TimeSlot, error)
	Submit(ctx context.Context, req models.BookingRequest) (*SubmitResult, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
}

// SubmitResult carries the committed booking plus a warning when the
// confirmation email could not be dispatched. Email delivery is
// best-effort; booking persistence is authoritative.
type SubmitResult struct {
	Booking      *models.Booking
	EmailWarning string
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Store      store.BookingStore
	Dispatcher notification.Dispatcher
	SheetSync  notification.SheetSync

	// The store is whole-document read-then-overwrite with no
	// versioning, so admissions are serialized through this mutex to
	// keep two racing submissions from both committing the same slot.
	mu  sync.Mutex
	now func() time.Time
}

func NewBookingService(st store.BookingStore, dispatcher notification.Dispatcher) *DefaultBookingService {
	return &DefaultBookingService{
		Store:      st,
		Dispatcher: dispatcher,
		SheetSync:  notification.LogSheetSync{},
		now:        time.Now,
	}
}
