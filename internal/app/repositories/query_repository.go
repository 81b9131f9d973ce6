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

// QueryRepository handles database operations for forum queries.
type QueryRepository struct {
	collection *mongo.Collection
}

// NewQueryRepository creates a new query repository.
func NewQueryRepository(database *mongo.Database) *QueryRepository {
	return &QueryRepository{collection: database.Collection("queries")}
}

// Create inserts a new query.
func (r *QueryRepository) Create(ctx context.Context, query *models.Query) error {
	if query.ID.IsZero() {
		query.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, query); err != nil {
		return fmt.Errorf("error saving query: %w", err)
	}
	return nil
}

// List retrieves every query, newest first.
func (r *QueryRepository) List(ctx context.Context) ([]models.Query, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding queries: %w", err)
	}
	defer cursor.Close(ctx)

	var queries []models.Query
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, fmt.Errorf("error decoding queries: %w", err)
	}
	return queries, nil
}

// GetByID retrieves a query by storage id. Returns mongo.ErrNoDocuments when
// no such query exists.
func (r *QueryRepository) GetByID(ctx context.Context, id string) (*models.Query, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var query models.Query
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&query); err != nil {
		return nil, err
	}
	return &query, nil
}

// UpdateQuestion replaces the question text of a query.
func (r *QueryRepository) UpdateQuestion(ctx context.Context, id primitive.ObjectID, question string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"question.question": question}})
	if err != nil {
		return fmt.Errorf("error updating question: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpdateAnswer sets the answer sub-record of a query, replacing any earlier
// answer.
func (r *QueryRepository) UpdateAnswer(ctx context.Context, id string, answer *models.Answer) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"answer": answer}})
	if err != nil {
		return fmt.Errorf("error updating answer: %w", err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a query by storage id. Returns mongo.ErrNoDocuments when
// nothing was deleted.
func (r *QueryRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting query: %w", err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
