package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
)

// PlacementRepository handles database operations for placement records.
type PlacementRepository struct {
	collection *mongo.Collection
}

// NewPlacementRepository creates a new placement repository.
func NewPlacementRepository(database *mongo.Database) *PlacementRepository {
	return &PlacementRepository{collection: database.Collection("placements")}
}

// Upsert writes the placement record keyed by register number, replacing any
// earlier report from the same student.
func (r *PlacementRepository) Upsert(ctx context.Context, placement *models.Placement) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"register_number": placement.RegisterNumber}, placement, opts)
	if err != nil {
		return fmt.Errorf("error saving placement: %w", err)
	}
	return nil
}

// GetByRegisterNumber retrieves a placement record by register number.
func (r *PlacementRepository) GetByRegisterNumber(ctx context.Context, registerNumber string) (*models.Placement, error) {
	var placement models.Placement
	if err := r.collection.FindOne(ctx, bson.M{"register_number": registerNumber}).Decode(&placement); err != nil {
		return nil, err
	}
	return &placement, nil
}

// ListByYear retrieves the placements of a graduation year.
func (r *PlacementRepository) ListByYear(ctx context.Context, passOutYear int) ([]models.Placement, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"pass_out_year": passOutYear})
	if err != nil {
		return nil, fmt.Errorf("error finding placements: %w", err)
	}
	defer cursor.Close(ctx)

	var placements []models.Placement
	if err := cursor.All(ctx, &placements); err != nil {
		return nil, fmt.Errorf("error decoding placements: %w", err)
	}
	return placements, nil
}

// YearWiseReport groups placement records by graduation year and counts them,
// newest year first.
func (r *PlacementRepository) YearWiseReport(ctx context.Context) ([]dto.PlacementReportEntry, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$pass_out_year"},
			{Key: "placements", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error building placement report: %w", err)
	}
	defer cursor.Close(ctx)

	var report []dto.PlacementReportEntry
	if err := cursor.All(ctx, &report); err != nil {
		return nil, fmt.Errorf("error decoding placement report: %w", err)
	}
	return report, nil
}
