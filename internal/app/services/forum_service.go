package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
)

type queryStore interface {
	Create(ctx context.Context, query *models.Query) error
	List(ctx context.Context) ([]models.Query, error)
	GetByID(ctx context.Context, id string) (*models.Query, error)
	UpdateQuestion(ctx context.Context, id primitive.ObjectID, question string) error
	UpdateAnswer(ctx context.Context, id string, answer *models.Answer) error
	Delete(ctx context.Context, id string) error
}

// ForumService implements the Q&A forum: students ask, staff answer.
type ForumService struct {
	queries queryStore
}

// NewForumService creates a new forum service.
func NewForumService(queries queryStore) *ForumService {
	return &ForumService{queries: queries}
}

// PostQuestion records a new question under the student's identity.
func (s *ForumService) PostQuestion(ctx context.Context, student *models.Student, question string) error {
	return s.queries.Create(ctx, &models.Query{
		CreatedDate: time.Now(),
		Question: models.Question{
			Question:    question,
			StudentName: student.Name,
			StudentID:   student.ID.Hex(),
		},
	})
}

// List retrieves every forum query, newest first.
func (s *ForumService) List(ctx context.Context) ([]models.Query, error) {
	return s.queries.List(ctx)
}

// EditQuestion replaces the question text. Only the original author may edit.
func (s *ForumService) EditQuestion(ctx context.Context, student *models.Student, id, question string) error {
	query, err := s.queries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Query not found")
		}
		return err
	}
	if query.Question.StudentID != student.ID.Hex() {
		return apperrors.NewForbidden("Invalid Student")
	}
	return s.queries.UpdateQuestion(ctx, query.ID, question)
}

// Answer sets the staff answer on a query, replacing any earlier one. The
// answering principal's designation is recorded alongside the text.
func (s *ForumService) Answer(ctx context.Context, designation, id, answer string) error {
	err := s.queries.UpdateAnswer(ctx, id, &models.Answer{
		Answer:      answer,
		Designation: designation,
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Query not found")
		}
		return err
	}
	return nil
}

// Delete removes a query.
func (s *ForumService) Delete(ctx context.Context, id string) error {
	if err := s.queries.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Query not found")
		}
		return err
	}
	return nil
}
