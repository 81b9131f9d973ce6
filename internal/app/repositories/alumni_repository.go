package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

// AlumniRepository handles database operations for alumni records.
type AlumniRepository struct {
	collection *mongo.Collection
}

// NewAlumniRepository creates a new alumni repository.
func NewAlumniRepository(database *mongo.Database) *AlumniRepository {
	return &AlumniRepository{collection: database.Collection("alumni")}
}

// CreateMany inserts a batch of alumni records.
func (r *AlumniRepository) CreateMany(ctx context.Context, alumni []models.Alumni) error {
	docs := make([]interface{}, len(alumni))
	for i := range alumni {
		docs[i] = alumni[i]
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error saving alumni: %w", err)
	}
	return nil
}

// List retrieves every alumni record.
func (r *AlumniRepository) List(ctx context.Context) ([]models.Alumni, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding alumni: %w", err)
	}
	defer cursor.Close(ctx)

	var alumni []models.Alumni
	if err := cursor.All(ctx, &alumni); err != nil {
		return nil, fmt.Errorf("error decoding alumni: %w", err)
	}
	return alumni, nil
}
