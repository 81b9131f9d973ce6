package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

// ExecomRepository handles database operations for executive committee
// accounts.
type ExecomRepository struct {
	collection *mongo.Collection
}

// NewExecomRepository creates a new execom repository.
func NewExecomRepository(database *mongo.Database) *ExecomRepository {
	return &ExecomRepository{collection: database.Collection("execoms")}
}

// GetByID retrieves an execom account by storage id. Returns
// mongo.ErrNoDocuments when no such account exists.
func (r *ExecomRepository) GetByID(ctx context.Context, id string) (*models.Execom, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var execom models.Execom
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&execom); err != nil {
		return nil, err
	}
	return &execom, nil
}

// GetByDesignation retrieves an execom account by its designation.
func (r *ExecomRepository) GetByDesignation(ctx context.Context, designation string) (*models.Execom, error) {
	var execom models.Execom
	if err := r.collection.FindOne(ctx, bson.M{"designation": designation}).Decode(&execom); err != nil {
		return nil, err
	}
	return &execom, nil
}

// UpdatePasswordByDesignation sets a new password hash for the account with
// the designation. Returns mongo.ErrNoDocuments when none matches.
func (r *ExecomRepository) UpdatePasswordByDesignation(ctx context.Context, designation, passwordHash string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"designation": designation}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdatePasswordByID sets a new password hash for an account by storage id.
func (r *ExecomRepository) UpdatePasswordByID(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
