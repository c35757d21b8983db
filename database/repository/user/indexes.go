package userRepo

import (
	"context"
	"fmt"
	"time"

	"legalassist/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userIndexes backs the account lookups and the directory's bulk lawyer read.
// Email and username are unique at the storage level too.
func userIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetName("user_id").SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("user_email").SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName("user_username").SetUnique(true)},
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
			Options: options.Index().
				SetName("lawyer_directory").
				SetPartialFilterExpression(bson.M{"userType": models.UserTypeLawyer}),
		},
	}
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.coll.Indexes().CreateMany(ctx, userIndexes()); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}
