package callLogRepo

import (
	"context"
	"fmt"
	"time"

	"medcrm/database"
	"medcrm/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCallLogRepo implements CallLogRepository using MongoDB.
type MongoCallLogRepo struct {
	coll *mongo.Collection
}

// NewMongoCallLogRepo creates a new instance of CallLogRepository using MongoDB.
func NewMongoCallLogRepo() CallLogRepository {
	coll := database.Collection("call_logs")
	return &MongoCallLogRepo{coll: coll}
}

func (r *MongoCallLogRepo) GetByID(id string) (*models.CallLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var callLog models.CallLog
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&callLog); err != nil {
		return nil, fmt.Errorf("failed to fetch call log with id %s: %w", id, err)
	}
	return &callLog, nil
}

func (r *MongoCallLogRepo) List(filter models.CallLogFilter) ([]models.CallLog, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.AgentID != "" {
		query["agent_id"] = filter.AgentID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	started := bson.M{}
	if !filter.From.IsZero() {
		started["$gte"] = filter.From
	}
	if !filter.To.IsZero() {
		started["$lte"] = filter.To
	}
	if len(started) > 0 {
		query["started_at"] = started
	}

	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "started_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve call logs: %w", err)
	}
	defer cursor.Close(ctx)

	var logs []models.CallLog
	for cursor.Next(ctx) {
		var l models.CallLog
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode call log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return logs, nil
}

func (r *MongoCallLogRepo) Create(log *models.CallLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to create call log: %w", err)
	}
	return nil
}

func (r *MongoCallLogRepo) Update(log *models.CallLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": log.ID}
	update := bson.M{"$set": log}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update call log with id %s: %w", log.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("call log with id %s not found", log.ID)
	}
	return nil
}

func (r *MongoCallLogRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete call log with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("call log with id %s not found", id)
	}
	return nil
}

// DeleteOlderThan removes call logs started before the cutoff. Used by the
// retention sweeper.
func (r *MongoCallLogRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	filter := bson.M{"started_at": bson.M{"$lt": cutoff}}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to purge call logs: %w", err)
	}
	return result.DeletedCount, nil
}
