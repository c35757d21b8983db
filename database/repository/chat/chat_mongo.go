package chatRepo

import (
	"context"
	"fmt"
	"time"

	"legalassist/models"
	"legalassist/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoTurnStore is the durable store for authenticated sessions.
type MongoTurnStore struct {
	coll *mongo.Collection
}

func NewMongoTurnStore(db *mongo.Database) TurnStore {
	store := &MongoTurnStore{coll: db.Collection("chat_messages")}
	if err := store.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("NewMongoTurnStore: index setup failed", zap.Error(err))
	}
	return store
}

func (s *MongoTurnStore) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "sessionId", Value: 1}, {Key: "createdAt", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (s *MongoTurnStore) AppendTurn(ctx context.Context, turn *models.ChatTurn) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.coll.InsertOne(ctx, turn); err != nil {
		return fmt.Errorf("failed to append turn to session %s: %w", turn.SessionID, err)
	}
	return nil
}

// ListTurns sorts on createdAt then _id; ObjectIDs grow with insertion order.
func (s *MongoTurnStore) ListTurns(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	defer cursor.Close(ctx)

	turns := make([]models.ChatTurn, 0)
	if err := cursor.All(ctx, &turns); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return turns, nil
}
