package documentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legalassist/models"
	"legalassist/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type MongoDocumentRepo struct {
	coll *mongo.Collection
}

func NewMongoDocumentRepo(db *mongo.Database) DocumentRepository {
	repo := &MongoDocumentRepo{coll: db.Collection("documents")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("NewMongoDocumentRepo: index setup failed", zap.Error(err))
	}
	return repo
}

func (r *MongoDocumentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "sharedWith", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *MongoDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.Document
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch document %s: %w", id, err)
	}
	return &doc, nil
}

func (r *MongoDocumentRepo) find(ctx context.Context, filter bson.M) ([]models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]models.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *MongoDocumentRepo) ListByUser(ctx context.Context, userID string) ([]models.Document, error) {
	docs, err := r.find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for user %s: %w", userID, err)
	}
	return docs, nil
}

func (r *MongoDocumentRepo) ListSharedWith(ctx context.Context, userID string) ([]models.Document, error) {
	docs, err := r.find(ctx, bson.M{"isShared": true, "sharedWith": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents shared with %s: %w", userID, err)
	}
	return docs, nil
}

func (r *MongoDocumentRepo) Share(ctx context.Context, id string, userIDs []string) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set":      bson.M{"isShared": true},
		"$addToSet": bson.M{"sharedWith": bson.M{"$each": userIDs}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc models.Document
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to share document %s: %w", id, err)
	}
	return &doc, nil
}

func (r *MongoDocumentRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	return nil
}
