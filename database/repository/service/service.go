// File: database/repository/service/service.go
package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"salonbook/database"
	"salonbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryResolver interface {
	FindServiceCategories(ctx context.Context, serviceIDs []string) ([]models.ServiceCategory, error)
}

type ServiceRepository interface {
	CategoryResolver
	EnsureIndexes() error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{coll: database.DB().Collection("services")}
}

// FindServiceCategories returns the category of every known service in serviceIDs.
// Unknown ids are omitted.
func (r *mongoServiceRepo) FindServiceCategories(ctx context.Context, serviceIDs []string) ([]models.ServiceCategory, error) {
	if len(serviceIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": serviceIDs}}
	opts := options.Find().SetProjection(bson.M{"id": 1, "categoryId": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find service categories: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ServiceCategory
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode service categories: %w", err)
	}
	return out, nil
}

func (r *mongoServiceRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("unique_id"),
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}
