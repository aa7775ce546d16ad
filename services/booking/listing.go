package booking

import (
	"context"
	"sort"

	"roomreserve/models"
)

// ListAllBookings returns every stored booking for the overview view,
// sorted by date ascending and then by each booking's earliest slot.
func (s *DefaultBookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Store.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !models.SameCalendarDay(a.Date, b.Date) {
			return a.Date.Before(b.Date)
		}
		return firstStartTime(a) < firstStartTime(b)
	})
	return bookings, nil
}

func firstStartTime(b models.Booking) string {
	if len(b.TimeSlots) == 0 {
		return ""
	}
	return b.TimeSlots[0].StartTime
}
