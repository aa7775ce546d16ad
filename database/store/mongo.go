package store

import (
	"context"
	"fmt"
	"time"

	"roomreserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bookingDocument is the single Mongo document holding the whole
// collection, keyed by StorageKey.
type bookingDocument struct {
	ID       string           `bson:"_id"`
	Bookings []models.Booking `bson:"bookings"`
}

// MongoStore persists the booking document in one Mongo document,
// replaced wholesale on every save.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{coll: client.Database(database).Collection("bookingDocuments")}
}

func (s *MongoStore) Load(ctx context.Context) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc bookingDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": StorageKey}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return []models.Booking{}, nil
		}
		return nil, fmt.Errorf("reading booking document from mongo: %w", err)
	}
	if doc.Bookings == nil {
		doc.Bookings = []models.Booking{}
	}
	return doc.Bookings, nil
}

func (s *MongoStore) Save(ctx context.Context, bookings []models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if bookings == nil {
		bookings = []models.Booking{}
	}
	doc := bookingDocument{ID: StorageKey, Bookings: bookings}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.coll.ReplaceOne(ctx, bson.M{"_id": StorageKey}, doc, opts); err != nil {
		return fmt.Errorf("writing booking document to mongo: %w", err)
	}
	return nil
}
