package agentRepo

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

// MongoAgentRepo implements AgentRepository using MongoDB.
type MongoAgentRepo struct {
	coll *mongo.Collection
}

// NewMongoAgentRepo creates a new instance of AgentRepository using MongoDB.
func NewMongoAgentRepo() AgentRepository {
	coll := database.Collection("agents")
	return &MongoAgentRepo{coll: coll}
}

func (r *MongoAgentRepo) GetByID(id string) (*models.AgentConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var agent models.AgentConfig
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&agent); err != nil {
		return nil, fmt.Errorf("failed to fetch agent with id %s: %w", id, err)
	}
	return &agent, nil
}

func (r *MongoAgentRepo) GetAll() ([]models.AgentConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve agents: %w", err)
	}
	defer cursor.Close(ctx)

	var agents []models.AgentConfig
	for cursor.Next(ctx) {
		var a models.AgentConfig
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode agent: %w", err)
		}
		agents = append(agents, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return agents, nil
}

func (r *MongoAgentRepo) Create(agent *models.AgentConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, agent)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

func (r *MongoAgentRepo) Update(agent *models.AgentConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": agent.ID}
	update := bson.M{"$set": agent}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update agent with id %s: %w", agent.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("agent with id %s not found", agent.ID)
	}
	return nil
}

func (r *MongoAgentRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete agent with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("agent with id %s not found", id)
	}
	return nil
}
