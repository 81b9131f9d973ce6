package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
)

type billStore interface {
	Create(ctx context.Context, bill *models.Bill) error
	List(ctx context.Context) ([]models.Bill, error)
	Delete(ctx context.Context, id string) error
}

// BillService implements expense record keeping.
type BillService struct {
	bills billStore
}

// NewBillService creates a new bill service.
func NewBillService(bills billStore) *BillService {
	return &BillService{bills: bills}
}

// Create records a new expense.
func (s *BillService) Create(ctx context.Context, req dto.PostBillRequest) error {
	billDate, err := fieldval.ParseDate(*req.BillDate)
	if err != nil {
		return apperrors.NewBadRequest("Bill Date must be a valid date")
	}

	return s.bills.Create(ctx, &models.Bill{
		CreatedDate:     time.Now(),
		BillTitle:       *req.BillTitle,
		BillDate:        billDate,
		BillAmount:      *req.BillAmount,
		BillDescription: *req.BillDescription,
	})
}

// List retrieves every bill, newest first.
func (s *BillService) List(ctx context.Context) ([]models.Bill, error) {
	return s.bills.List(ctx)
}

// Delete removes a bill.
func (s *BillService) Delete(ctx context.Context, id string) error {
	if err := s.bills.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Bill not found")
		}
		return err
	}
	return nil
}
