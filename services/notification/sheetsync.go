package notification

import (
	"context"

	"roomreserve/models"
	"roomreserve/utils"

	"go.uber.org/zap"
)

// LogSheetSync is the placeholder spreadsheet mirror. It records the
// booking in the log and nothing else.
type LogSheetSync struct{}

func (LogSheetSync) Append(ctx context.Context, booking models.Booking) error {
	utils.GetLogger().Debug("sheet sync stub invoked",
		zap.String("bookingId", booking.ID),
		zap.String("room", string(booking.Room)))
	return nil
}
