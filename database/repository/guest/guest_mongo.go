package guestRepo

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

// MongoGuestRepo implements GuestRepository using MongoDB.
type MongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo creates a new instance of GuestRepository using MongoDB.
func NewMongoGuestRepo() GuestRepository {
	coll := database.Collection("guests")
	repo := &MongoGuestRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGuestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "eventId", Value: 1}}},
		{Keys: bson.D{{Key: "ticketNumber", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a guest by its unique ID.
func (r *MongoGuestRepo) GetByID(id string) (*models.Guest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest); err != nil {
		return nil, fmt.Errorf("failed to fetch guest with id %s: %w", id, err)
	}
	return &guest, nil
}

// GetByEvent retrieves all guests of the given event.
func (r *MongoGuestRepo) GetByEvent(eventID string) ([]models.Guest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guests for event %s: %w", eventID, err)
	}
	defer cursor.Close(ctx)

	var guests []models.Guest
	for cursor.Next(ctx) {
		var g models.Guest
		if err := cursor.Decode(&g); err != nil {
			return nil, fmt.Errorf("failed to decode guest: %w", err)
		}
		guests = append(guests, g)
	}
	return guests, nil
}

// GetByTicketNumber retrieves a guest by its ticket number.
func (r *MongoGuestRepo) GetByTicketNumber(ticket string) (*models.Guest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var guest models.Guest
	if err := r.coll.FindOne(ctx, bson.M{"ticketNumber": ticket}).Decode(&guest); err != nil {
		return nil, fmt.Errorf("failed to fetch guest with ticket %s: %w", ticket, err)
	}
	return &guest, nil
}

// CountByEvent counts the guests of the given event.
func (r *MongoGuestRepo) CountByEvent(eventID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return 0, fmt.Errorf("failed to count guests for event %s: %w", eventID, err)
	}
	return n, nil
}

// CountCreatedBetween counts guests registered inside the window.
func (r *MongoGuestRepo) CountCreatedBetween(from, to time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"createdAt": bson.M{"$gte": from, "$lt": to}})
	if err != nil {
		return 0, fmt.Errorf("failed to count guests: %w", err)
	}
	return n, nil
}

// Create inserts a new guest document.
func (r *MongoGuestRepo) Create(guest *models.Guest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	guest.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, guest)
	if err != nil {
		return fmt.Errorf("failed to create guest: %w", err)
	}
	return nil
}

// Update modifies an existing guest document.
func (r *MongoGuestRepo) Update(guest *models.Guest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": guest.ID}, bson.M{"$set": guest})
	if err != nil {
		return fmt.Errorf("failed to update guest with id %s: %w", guest.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("guest with id %s not found", guest.ID)
	}
	return nil
}

// Delete removes a guest document by its ID.
func (r *MongoGuestRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete guest with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("guest with id %s not found", id)
	}
	return nil
}

// Count returns the total number of guests.
func (r *MongoGuestRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count guests: %w", err)
	}
	return n, nil
}
