package feedbackRepo

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

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	coll := database.Collection("feedback")
	repo := &MongoFeedbackRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFeedbackRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "eventId", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByEvent retrieves all feedback entries of the given event.
func (r *MongoFeedbackRepo) GetByEvent(eventID string) ([]models.Feedback, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"eventId": eventID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback for event %s: %w", eventID, err)
	}
	defer cursor.Close(ctx)

	var entries []models.Feedback
	for cursor.Next(ctx) {
		var f models.Feedback
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		entries = append(entries, f)
	}
	return entries, nil
}

// Create inserts a new feedback document.
func (r *MongoFeedbackRepo) Create(feedback *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	feedback.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, feedback)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// DeleteOlderThan removes feedback created before the cutoff.
func (r *MongoFeedbackRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	ctx, cancel := newContext(30 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete old feedback: %w", err)
	}
	return result.DeletedCount, nil
}
