package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"roomreserve/models"
)

// FileStore persists the booking document as a JSON file. Writes go
// through a temp file plus rename so a crash mid-write never leaves a
// truncated document behind.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(ctx context.Context) ([]models.Booking, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Booking{}, nil
		}
		return nil, fmt.Errorf("reading booking document %s: %w", s.path, err)
	}
	return decodeBookings(data), nil
}

func (s *FileStore) Save(ctx context.Context, bookings []models.Booking) error {
	data, err := encodeBookings(bookings)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".room-bookings-*")
	if err != nil {
		return fmt.Errorf("creating temp booking document: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing booking document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing booking document: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing booking document %s: %w", s.path, err)
	}
	return nil
}
