package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
)

type placementStore interface {
	Upsert(ctx context.Context, placement *models.Placement) error
	ListByYear(ctx context.Context, passOutYear int) ([]models.Placement, error)
	YearWiseReport(ctx context.Context) ([]dto.PlacementReportEntry, error)
}

type alumniStore interface {
	CreateMany(ctx context.Context, alumni []models.Alumni) error
	List(ctx context.Context) ([]models.Alumni, error)
}

type placementStudentStore interface {
	ListByYear(ctx context.Context, passOutYear int) ([]models.Student, error)
	SetPlacement(ctx context.Context, id primitive.ObjectID, company string) error
}

// PlacementService implements placement outcome reporting and alumni
// snapshots.
type PlacementService struct {
	placements placementStore
	alumni     alumniStore
	students   placementStudentStore
}

// NewPlacementService creates a new placement service.
func NewPlacementService(placements placementStore, alumni alumniStore, students placementStudentStore) *PlacementService {
	return &PlacementService{placements: placements, alumni: alumni, students: students}
}

// Report records a student's placement outcome. Reporting again replaces the
// earlier record; the student document is flagged as placed either way.
func (s *PlacementService) Report(ctx context.Context, student *models.Student, placedCompany string, ctc float64) error {
	placement := &models.Placement{
		Name:           student.Name,
		RegisterNumber: student.RegisterNumber,
		Email:          student.Email,
		PhoneNumber:    student.PhoneNumber,
		PassOutYear:    student.PassOutYear,
		PlacedCompany:  placedCompany,
		CTC:            ctc,
	}
	if err := s.placements.Upsert(ctx, placement); err != nil {
		return err
	}
	return s.students.SetPlacement(ctx, student.ID, placedCompany)
}

// PlacedStudents retrieves the placement records of a graduation year.
func (s *PlacementService) PlacedStudents(ctx context.Context, passOutYear int) ([]models.Placement, error) {
	return s.placements.ListByYear(ctx, passOutYear)
}

// YearWiseReport counts placements per graduation year, newest year first.
func (s *PlacementService) YearWiseReport(ctx context.Context) ([]dto.PlacementReportEntry, error) {
	return s.placements.YearWiseReport(ctx)
}

// CreateAlumni copies every student of a graduation year into the alumni
// collection. The snapshot lives its own life afterwards; later edits to the
// student records do not propagate.
func (s *PlacementService) CreateAlumni(ctx context.Context, passOutYear int) error {
	students, err := s.students.ListByYear(ctx, passOutYear)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		return apperrors.NewNotFound("No students found for this year")
	}

	alumni := make([]models.Alumni, len(students))
	for i, student := range students {
		alumni[i] = models.Alumni{
			Name:            student.Name,
			Email:           student.Email,
			Address:         student.Address,
			PhoneNumber:     student.PhoneNumber,
			PlacementStatus: student.PlacementStatus,
			PlacedCompany:   student.PlacedCompany,
		}
	}
	return s.alumni.CreateMany(ctx, alumni)
}

// ListAlumni retrieves every alumni record.
func (s *PlacementService) ListAlumni(ctx context.Context) ([]models.Alumni, error) {
	return s.alumni.List(ctx)
}
