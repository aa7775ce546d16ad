package notification

import (
	"context"

	"roomreserve/models"
)

// Dispatcher delivers a booking confirmation to the user. Delivery is
// best-effort: a failed dispatch is surfaced as a warning, never as a
// booking failure.
type Dispatcher interface {
	Notify(ctx context.Context, booking models.Booking) error
}

// SheetSync mirrors committed bookings into an external spreadsheet.
// The real integration lives outside this service; the hook is kept as
// a named seam so the engine's call site doesn't change when it lands.
type SheetSync interface {
	Append(ctx context.Context, booking models.Booking) error
}
