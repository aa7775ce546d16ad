package models

// TimeSlot represents one half-hour booking window from the daily grid.
// The grid entries are immutable templates; IsBooked is a view-time
// annotation set by the availability resolver, never stored as ground
// truth on the template itself. StartTime and EndTime use 24-hour
// "HH:MM" format; IDs follow the "6:00"/"6:30" scheme.
type TimeSlot struct {
	ID        string `bson:"id" json:"id"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	IsBooked  bool   `bson:"isBooked" json:"isBooked"`
}
