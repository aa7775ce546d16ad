package booking

import (
	"fmt"

	"roomreserve/models"
)

// Bookable hours run from 06:00 to the midnight boundary in half-hour
// steps, giving (24-6)*2 = 36 slots per day.
const (
	slotStartHour = 6
	slotEndHour   = 24
)

// GenerateTimeSlots produces the canonical ordered daily slot grid.
// Pure and deterministic; IsBooked is always false on the templates.
// The last slot wraps 23:30 -> 00:00.
func GenerateTimeSlots() []models.TimeSlot {
	slots := make([]models.TimeSlot, 0, (slotEndHour-slotStartHour)*2)

	for hour := slotStartHour; hour < slotEndHour; hour++ {
		slots = append(slots, models.TimeSlot{
			ID:        fmt.Sprintf("%d:00", hour),
			StartTime: fmt.Sprintf("%02d:00", hour),
			EndTime:   fmt.Sprintf("%02d:30", hour),
		})

		endHour := hour + 1
		if hour == 23 {
			endHour = 0
		}
		slots = append(slots, models.TimeSlot{
			ID:        fmt.Sprintf("%d:30", hour),
			StartTime: fmt.Sprintf("%02d:30", hour),
			EndTime:   fmt.Sprintf("%02d:00", endHour),
		})
	}

	return slots
}

// slotsByID returns the grid keyed by slot id, preserving nothing of
// the order; use GenerateTimeSlots when order matters.
func slotsByID() map[string]models.TimeSlot {
	grid := GenerateTimeSlots()
	byID := make(map[string]models.TimeSlot, len(grid))
	for _, slot := range grid {
		byID[slot.ID] = slot
	}
	return byID
}
