package eventRepo

import (
	"context"
	"fmt"
	"time"

	"eventparadise/database"
	"eventparadise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo creates a new instance of EventRepository using MongoDB.
func NewMongoEventRepo() EventRepository {
	coll := database.Collection("events")
	repo := &MongoEventRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields the scheduler queries by window.
func (r *MongoEventRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "organizerId", Value: 1}}},
		{Keys: bson.D{{Key: "startDate", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "endDate", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an event by its unique ID.
func (r *MongoEventRepo) GetByID(id string) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

// GetByOrganizer retrieves all events owned by the given organizer.
func (r *MongoEventRepo) GetByOrganizer(organizerID string) ([]models.Event, error) {
	return r.find(bson.M{"organizerId": organizerID})
}

// GetAll retrieves all events.
func (r *MongoEventRepo) GetAll() ([]models.Event, error) {
	return r.find(bson.M{})
}

// GetStartingBetween retrieves events starting inside the window, optionally
// restricted to the given statuses.
func (r *MongoEventRepo) GetStartingBetween(from, to time.Time, statuses ...string) ([]models.Event, error) {
	filter := bson.M{"startDate": bson.M{"$gte": from, "$lte": to}}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return r.find(filter)
}

// GetEndedBetween retrieves events with the given status ending inside the window.
func (r *MongoEventRepo) GetEndedBetween(from, to time.Time, status string) ([]models.Event, error) {
	return r.find(bson.M{
		"endDate": bson.M{"$gte": from, "$lte": to},
		"status":  status,
	})
}

// CountCreatedBetween counts events created inside the window.
func (r *MongoEventRepo) CountCreatedBetween(from, to time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": from, "$lt": to}})
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}

func (r *MongoEventRepo) find(filter bson.M) ([]models.Event, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	for cursor.Next(ctx) {
		var e models.Event
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

// Create inserts a new event document.
func (r *MongoEventRepo) Create(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// Update modifies an existing event document.
func (r *MongoEventRepo) Update(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	event.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": event.ID}, bson.M{"$set": event})
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", event.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event with id %s not found", event.ID)
	}
	return nil
}

// Delete removes an event document by its ID.
func (r *MongoEventRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event with id %s not found", id)
	}
	return nil
}

// Count returns the total number of events.
func (r *MongoEventRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return n, nil
}
