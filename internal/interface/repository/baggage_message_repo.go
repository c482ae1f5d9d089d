package repository

import (
	"context"
	"errors"
	"time"

	"bsm-service/internal/domain/entity"
	"bsm-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBaggageMessageRepository implements BaggageMessageRepository
type MongoBaggageMessageRepository struct {
	collection *mongo.Collection
}

// NewMongoBaggageMessageRepository creates a new baggage message repository
func NewMongoBaggageMessageRepository(db *mongo.Database) repository.BaggageMessageRepository {
	collection := db.Collection("baggage_messages")

	// Create unique index on tagNumber
	ctx := context.Background()
	indexModel := mongo.IndexModel{
		Keys:    bson.M{"tagNumber": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, indexModel)

	// Create index on flight for queries
	flightIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "airline", Value: 1},
			{Key: "flightNumber", Value: 1},
			{Key: "flightDate", Value: 1},
		},
	}
	collection.Indexes().CreateOne(ctx, flightIndex)

	return &MongoBaggageMessageRepository{
		collection: collection,
	}
}

// FindByTagNumber finds a baggage message by its first tag number
func (r *MongoBaggageMessageRepository) FindByTagNumber(ctx context.Context, tagNumber string) (*entity.BaggageMessage, error) {
	var record entity.BaggageMessage
	err := r.collection.FindOne(ctx, bson.M{"tagNumber": tagNumber}).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert creates or updates a baggage message
func (r *MongoBaggageMessageRepository) Upsert(ctx context.Context, record *entity.BaggageMessage) error {
	now := time.Now()
	record.UpdatedAt = now

	opts := options.Update().SetUpsert(true)
	filter := bson.M{"tagNumber": record.TagNumber}

	result, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{
			"$set":         upsertDocument(record),
			"$setOnInsert": bson.M{"createdAt": now},
		},
		opts,
	)
	if err != nil {
		return err
	}

	// If it was an insert, we need to get the new ID
	if result.UpsertedCount > 0 && result.UpsertedID != nil {
		if id, ok := result.UpsertedID.(primitive.ObjectID); ok {
			record.ID = id.Hex()
		}
		record.CreatedAt = now
	}

	return nil
}

// DeleteByTagNumber removes the baggage message keyed by tagNumber
func (r *MongoBaggageMessageRepository) DeleteByTagNumber(ctx context.Context, tagNumber string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"tagNumber": tagNumber})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// upsertDocument is the $set part of an upsert. The id and creation time are left to the store.
func upsertDocument(record *entity.BaggageMessage) bson.M {
	return bson.M{
		"tagNumber":       record.TagNumber,
		"tagNumbers":      record.TagNumbers,
		"changeOfStatus":  record.ChangeOfStatus,
		"airline":         record.Airline,
		"flightNumber":    record.FlightNumber,
		"flightDate":      record.FlightDate,
		"destination":     record.Destination,
		"classOfTravel":   record.ClassOfTravel,
		"surname":         record.Surname,
		"givenNames":      record.GivenNames,
		"version":         record.Version,
		"sourceIndicator": record.SourceIndicator,
		"airportCode":     record.AirportCode,
		"raw":             record.Raw,
		"valid":           record.Valid,
		"issues":          record.Issues,
		"receivedAt":      record.ReceivedAt,
		"updatedAt":       record.UpdatedAt,
	}
}
