package store

import (
	"context"
	"sync"

	"roomreserve/models"
)

// MemoryStore keeps the booking document in process memory. Used in
// tests and as the dev backend; it still round-trips through the
// serialized form so it behaves exactly like the durable backends.
type MemoryStore struct {
	mu  sync.RWMutex
	doc []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return decodeBookings(s.doc), nil
}

func (s *MemoryStore) Save(ctx context.Context, bookings []models.Booking) error {
	data, err := encodeBookings(bookings)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = data
	s.mu.Unlock()
	return nil
}
