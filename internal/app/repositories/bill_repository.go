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

// BillRepository handles database operations for expense records.
type BillRepository struct {
	collection *mongo.Collection
}

// NewBillRepository creates a new bill repository.
func NewBillRepository(database *mongo.Database) *BillRepository {
	return &BillRepository{collection: database.Collection("bills")}
}

// Create inserts a new bill.
func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	if bill.ID.IsZero() {
		bill.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, bill); err != nil {
		return fmt.Errorf("error saving bill: %w", err)
	}
	return nil
}

// List retrieves every bill, newest first.
func (r *BillRepository) List(ctx context.Context) ([]models.Bill, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bills: %w", err)
	}
	defer cursor.Close(ctx)

	var bills []models.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, fmt.Errorf("error decoding bills: %w", err)
	}
	return bills, nil
}

// Delete removes a bill by storage id. Returns mongo.ErrNoDocuments when
// nothing was deleted.
func (r *BillRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting bill: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
