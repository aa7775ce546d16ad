package models

import "time"

// ConfirmationEmail is a composed booking-confirmation message. Delivery
// is a stubbed integration point; sent messages are journaled so the UI
// can show them.
type ConfirmationEmail struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
}

// EmailTaskPayload is the asynq task payload for queued email dispatch.
type EmailTaskPayload struct {
	BookingID string  `json:"bookingId"`
	Booking   Booking `json:"booking"`
}
