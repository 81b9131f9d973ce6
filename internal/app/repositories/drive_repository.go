package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

// DriveRepository handles database operations for placement drives.
type DriveRepository struct {
	collection *mongo.Collection
}

// NewDriveRepository creates a new drive repository.
func NewDriveRepository(database *mongo.Database) *DriveRepository {
	return &DriveRepository{collection: database.Collection("drives")}
}

// Create inserts a new drive.
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	if drive.ID.IsZero() {
		drive.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, drive); err != nil {
		return fmt.Errorf("error saving drive: %w", err)
	}
	return nil
}

// List retrieves every drive, newest first.
func (r *DriveRepository) List(ctx context.Context) ([]models.Drive, error) {
	return r.listFiltered(ctx, bson.M{})
}

// ListFiltered retrieves drives matching an eligibility filter, newest first.
func (r *DriveRepository) ListFiltered(ctx context.Context, filter bson.M) ([]models.Drive, error) {
	return r.listFiltered(ctx, filter)
}

func (r *DriveRepository) listFiltered(ctx context.Context, filter bson.M) ([]models.Drive, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding drives: %w", err)
	}
	defer cursor.Close(ctx)

	var drives []models.Drive
	if err := cursor.All(ctx, &drives); err != nil {
		return nil, fmt.Errorf("error decoding drives: %w", err)
	}
	return drives, nil
}

// GetByID retrieves a drive by storage id. Returns mongo.ErrNoDocuments when
// no such drive exists.
func (r *DriveRepository) GetByID(ctx context.Context, id string) (*models.Drive, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var drive models.Drive
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&drive); err != nil {
		return nil, err
	}
	return &drive, nil
}

// Delete removes a drive by storage id. Returns mongo.ErrNoDocuments when
// nothing was deleted.
func (r *DriveRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddRegistration records a student on the drive roster. The filter excludes
// drives already carrying the register number, so a concurrent duplicate
// registration matches nothing instead of double-counting. Returns
// (found, registered).
func (r *DriveRepository) AddRegistration(ctx context.Context, id string, registerNumber string) (bool, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, false, nil
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "registered_students": bson.M{"$ne": registerNumber}},
		bson.M{"$addToSet": bson.M{"registered_students": registerNumber}},
	)
	if err != nil {
		return false, false, fmt.Errorf("error registering for drive: %w", err)
	}
	if result.MatchedCount > 0 {
		return true, true, nil
	}

	// Nothing matched: either the drive is missing or the student is
	// already on the roster. Distinguish the two.
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID}, options.Count().SetLimit(1))
	if err != nil {
		return false, false, fmt.Errorf("error checking drive: %w", err)
	}
	return count > 0, false, nil
}

// RemoveRegistration removes a student from the drive roster. The filter
// requires the register number to be present, so removing twice matches
// nothing. Returns (found, removed).
func (r *DriveRepository) RemoveRegistration(ctx context.Context, id string, registerNumber string) (bool, bool, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, false, nil
	}

	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "registered_students": registerNumber},
		bson.M{"$pull": bson.M{"registered_students": registerNumber}},
	)
	if err != nil {
		return false, false, fmt.Errorf("error deregistering from drive: %w", err)
	}
	if result.MatchedCount > 0 {
		return true, true, nil
	}

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": objectID}, options.Count().SetLimit(1))
	if err != nil {
		return false, false, fmt.Errorf("error checking drive: %w", err)
	}
	return count > 0, false, nil
}
