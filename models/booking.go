package models

import "time"

// BookingRequest is the payload a client submits to reserve one or more
// slots for a room on a date.
type BookingRequest struct {
	Room         Room      `json:"room"`
	Date         time.Time `json:"date"`
	TimeSlotIDs  []string  `json:"timeSlotIds"`
	TeamHeadName string    `json:"teamHeadName"`
	TeamName     string    `json:"teamName"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Purpose      string    `json:"purpose"`
}

// Booking represents a committed reservation record.
type Booking struct {
	ID           string     `bson:"id" json:"id"`
	Room         Room       `bson:"room" json:"room"`
	Date         time.Time  `bson:"date" json:"date"`
	TimeSlotIDs  []string   `bson:"timeSlotIds" json:"timeSlotIds"`
	TimeSlots    []TimeSlot `bson:"timeSlots" json:"timeSlots"` // snapshot of the reserved templates, IsBooked=true
	TeamHeadName string     `bson:"teamHeadName" json:"teamHeadName"`
	TeamName     string     `bson:"teamName" json:"teamName"`
	Phone        string     `bson:"phone" json:"phone"`
	Email        string     `bson:"email" json:"email"`
	Purpose      string     `bson:"purpose" json:"purpose"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
}

// SameCalendarDay reports whether two instants fall on the same local
// calendar day. Booking dates are day markers, not instants, so all
// conflict grouping ignores the time component.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
