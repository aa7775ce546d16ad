// Package store persists the booking collection as a single document
// under a fixed key, mirroring the whole-document read/write contract of
// the persistence substrate: no partial-record updates, one serialized
// blob per backend.
package store

import (
	"context"
	"encoding/json"

	"roomreserve/models"
	"roomreserve/utils"

	"go.uber.org/zap"
)

// StorageKey is the fixed identifier the booking document lives under.
const StorageKey = "room-bookings"

// BookingStore is the persistence capability injected into the booking
// engine. Load returns the full collection; missing or corrupt data is
// treated as "no bookings" and never fails the caller. Save overwrites
// the whole collection in a single write.
type BookingStore interface {
	Load(ctx context.Context) ([]models.Booking, error)
	Save(ctx context.Context, bookings []models.Booking) error
}

// decodeBookings deserializes a stored document. Corruption is logged
// and downgraded to an empty collection.
func decodeBookings(data []byte) []models.Booking {
	if len(data) == 0 {
		return []models.Booking{}
	}
	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		utils.GetLogger().Error("corrupt booking document, treating as empty",
			zap.String("key", StorageKey), zap.Error(err))
		return []models.Booking{}
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings
}

func encodeBookings(bookings []models.Booking) ([]byte, error) {
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return json.Marshal(bookings)
}
