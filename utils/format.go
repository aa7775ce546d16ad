package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatClock converts a 24-hour "HH:MM" string into its 12-hour
// display form, e.g. "14:30" -> "2:30 PM" and "00:00" -> "12:00 AM".
func FormatClock(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	minute := parts[1]

	switch {
	case hour == 0:
		return fmt.Sprintf("12:%s AM", minute)
	case hour < 12:
		return fmt.Sprintf("%d:%s AM", hour, minute)
	case hour == 12:
		return fmt.Sprintf("12:%s PM", minute)
	default:
		return fmt.Sprintf("%d:%s PM", hour-12, minute)
	}
}

// FormatDate renders a booking date in its long display form,
// e.g. "Saturday, June 1, 2024".
func FormatDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}
