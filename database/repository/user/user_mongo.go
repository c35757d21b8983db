package userRepo

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

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) UserRepository {
	repo := &MongoUserRepo{coll: db.Collection("users")}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("NewMongoUserRepo: index setup failed", zap.Error(err))
	}
	return repo
}

// newContext bounds a single repository call.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

var lawyerFilter = bson.M{
	"userType":      models.UserTypeLawyer,
	"lawyerProfile": bson.M{"$exists": true, "$ne": nil},
}

// Create inserts a new user document.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user by its unique ID.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return user, nil
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := r.findOne(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return user, nil
}

func (r *MongoUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"username": username}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check username %s: %w", username, err)
	}
	return n > 0, nil
}

// ListLawyers performs the single bulk read the directory filters over.
func (r *MongoUserRepo) ListLawyers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, lawyerFilter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lawyers: %w", err)
	}
	defer cursor.Close(ctx)

	lawyers := make([]models.User, 0)
	for cursor.Next(ctx) {
		var u models.User
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode lawyer: %w", err)
		}
		lawyers = append(lawyers, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lawyers: %w", err)
	}
	return lawyers, nil
}

func (r *MongoUserRepo) GetLawyerByID(ctx context.Context, id string) (*models.User, error) {
	filter := bson.M{"id": id}
	for k, v := range lawyerFilter {
		filter[k] = v
	}
	user, err := r.findOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lawyer with id %s: %w", id, err)
	}
	return user, nil
}

func (r *MongoUserRepo) setProfile(ctx context.Context, userID, field string, profile interface{}) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": userID, field: bson.M{"$exists": false}}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{field: profile}})
	if err != nil {
		return fmt.Errorf("failed to set %s for user %s: %w", field, userID, err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	existing, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}
	return ErrProfileExists
}

func (r *MongoUserRepo) SetLawyerProfile(ctx context.Context, userID string, profile *models.LawyerProfile) error {
	return r.setProfile(ctx, userID, "lawyerProfile", profile)
}

func (r *MongoUserRepo) SetClientProfile(ctx context.Context, userID string, profile *models.ClientProfile) error {
	return r.setProfile(ctx, userID, "clientProfile", profile)
}
