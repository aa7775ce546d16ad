package notification

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"roomreserve/models"
	"roomreserve/utils"

	"go.uber.org/zap"
)

// journalCap bounds the in-memory sent-email journal.
const journalCap = 100

var nowFunc = time.Now

// EmailDispatcher composes booking-confirmation emails. Actual SMTP
// delivery is a stubbed integration point: messages are logged and kept
// in a bounded journal the UI can list.
type EmailDispatcher struct {
	From string

	mu      sync.Mutex
	journal []models.ConfirmationEmail
}

func NewEmailDispatcher(from string) *EmailDispatcher {
	return &EmailDispatcher{From: from}
}

// Notify composes and "sends" the confirmation email for a booking.
func (d *EmailDispatcher) Notify(ctx context.Context, booking models.Booking) error {
	email := ComposeConfirmation(booking)

	utils.GetLogger().Info("confirmation email sent",
		zap.String("from", d.From),
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("bookingId", booking.ID))

	d.mu.Lock()
	d.journal = append(d.journal, email)
	if len(d.journal) > journalCap {
		d.journal = d.journal[len(d.journal)-journalCap:]
	}
	d.mu.Unlock()
	return nil
}

// SentEmails returns a copy of the journal, newest last.
func (d *EmailDispatcher) SentEmails() []models.ConfirmationEmail {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.ConfirmationEmail, len(d.journal))
	copy(out, d.journal)
	return out
}

// ComposeConfirmation builds the confirmation message for a committed
// booking, one time range line per reserved slot.
func ComposeConfirmation(booking models.Booking) models.ConfirmationEmail {
	var times []string
	for _, slot := range booking.TimeSlots {
		times = append(times, fmt.Sprintf("%s - %s",
			utils.FormatClock(slot.StartTime), utils.FormatClock(slot.EndTime)))
	}

	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your booking for the %s Room has been confirmed.\n\n"+
			"Details:\n"+
			"- Date: %s\n"+
			"- Time: %s\n"+
			"- Team: %s\n"+
			"- Purpose: %s\n\n"+
			"Thank you for your booking!",
		booking.TeamHeadName,
		strings.ToUpper(string(booking.Room)),
		utils.FormatDate(booking.Date),
		strings.Join(times, ", "),
		booking.TeamName,
		booking.Purpose,
	)

	return models.ConfirmationEmail{
		To:      booking.Email,
		Subject: fmt.Sprintf("Booking Confirmation: %s Room", strings.ToUpper(string(booking.Room))),
		Body:    body,
		SentAt:  nowFunc(),
	}
}
