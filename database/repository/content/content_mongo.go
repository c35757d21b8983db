package contentRepo

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

type MongoContentRepo struct {
	resources *mongo.Collection
	news      *mongo.Collection
}

func NewMongoContentRepo(db *mongo.Database) ContentRepository {
	repo := &MongoContentRepo{
		resources: db.Collection("legal_resources"),
		news:      db.Collection("legal_news"),
	}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("NewMongoContentRepo: index setup failed", zap.Error(err))
	}
	return repo
}

func (r *MongoContentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}
	if _, err := r.resources.Indexes().CreateMany(ctx, idx); err != nil {
		return fmt.Errorf("failed to create resource indexes: %w", err)
	}
	if _, err := r.news.Indexes().CreateMany(ctx, idx); err != nil {
		return fmt.Errorf("failed to create news indexes: %w", err)
	}
	return nil
}

func categoryFilter(category string) bson.M {
	if category == "" {
		return bson.M{}
	}
	return bson.M{"category": category}
}

func (r *MongoContentRepo) ListResources(ctx context.Context, category string) ([]models.LegalResource, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.resources.Find(ctx, categoryFilter(category), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]models.LegalResource, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode resources: %w", err)
	}
	return out, nil
}

func (r *MongoContentRepo) GetResource(ctx context.Context, id string) (*models.LegalResource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.LegalResource
	if err := r.resources.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch resource %s: %w", id, err)
	}
	return &res, nil
}

func (r *MongoContentRepo) CreateResource(ctx context.Context, res *models.LegalResource) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.resources.InsertOne(ctx, res); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) ResourceTitleExists(ctx context.Context, title string) (bool, error) {
	return titleExists(ctx, r.resources, title)
}

func (r *MongoContentRepo) ListNews(ctx context.Context, category string) ([]models.LegalNews, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "publicationDate", Value: -1}})
	cursor, err := r.news.Find(ctx, categoryFilter(category), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	defer cursor.Close(ctx)

	out := make([]models.LegalNews, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode news: %w", err)
	}
	return out, nil
}

func (r *MongoContentRepo) GetNews(ctx context.Context, id string) (*models.LegalNews, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n models.LegalNews
	if err := r.news.FindOne(ctx, bson.M{"id": id}).Decode(&n); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch news %s: %w", id, err)
	}
	return &n, nil
}

func (r *MongoContentRepo) CreateNews(ctx context.Context, news *models.LegalNews) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.news.InsertOne(ctx, news); err != nil {
		return fmt.Errorf("failed to create news: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) NewsTitleExists(ctx context.Context, title string) (bool, error) {
	return titleExists(ctx, r.news, title)
}

func titleExists(ctx context.Context, coll *mongo.Collection, title string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := coll.CountDocuments(ctx, bson.M{"title": title}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check title %q: %w", title, err)
	}
	return n > 0, nil
}
