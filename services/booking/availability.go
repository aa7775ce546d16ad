package booking

import (
	"context"
	"time"

	"roomreserve/models"
)

// AvailableSlots returns the daily grid for a room/date with IsBooked
// set on every slot some stored booking already holds. There is no
// caching layer: every call re-reads the store.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, room models.Room, date time.Time) ([]models.TimeSlot, error) {
	if !room.Valid() {
		return nil, newValidationError("room", "unknown room")
	}

	bookings, err := s.Store.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	booked := bookedSlotIDs(bookings, room, date)
	grid := GenerateTimeSlots()
	for i := range grid {
		_, taken := booked[grid[i].ID]
		grid[i].IsBooked = taken
	}
	return grid, nil
}

// bookedSlotIDs collects every slot id held by a stored booking for the
// room on the same calendar day.
func bookedSlotIDs(bookings []models.Booking, room models.Room, date time.Time) map[string]struct{} {
	booked := make(map[string]struct{})
	for _, b := range bookings {
		if b.Room != room || !models.SameCalendarDay(b.Date, date) {
			continue
		}
		for _, id := range b.TimeSlotIDs {
			booked[id] = struct{}{}
		}
	}
	return booked
}
