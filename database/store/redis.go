package store

import (
	"context"
	"fmt"

	"roomreserve/models"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps the booking document as a single string value under
// StorageKey, the direct analog of the key-value substrate the engine
// was designed against.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context) ([]models.Booking, error) {
	data, err := s.client.Get(ctx, StorageKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []models.Booking{}, nil
		}
		return nil, fmt.Errorf("reading booking document from redis: %w", err)
	}
	return decodeBookings(data), nil
}

func (s *RedisStore) Save(ctx context.Context, bookings []models.Booking) error {
	data, err := encodeBookings(bookings)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, StorageKey, data, 0).Err(); err != nil {
		return fmt.Errorf("writing booking document to redis: %w", err)
	}
	return nil
}
