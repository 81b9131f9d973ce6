package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
)

type driveStore interface {
	Create(ctx context.Context, drive *models.Drive) error
	List(ctx context.Context) ([]models.Drive, error)
	ListFiltered(ctx context.Context, filter bson.M) ([]models.Drive, error)
	GetByID(ctx context.Context, id string) (*models.Drive, error)
	Delete(ctx context.Context, id string) error
	AddRegistration(ctx context.Context, id, registerNumber string) (found, registered bool, err error)
	RemoveRegistration(ctx context.Context, id, registerNumber string) (found, removed bool, err error)
}

type driveRosterStore interface {
	ListByRegisterNumbers(ctx context.Context, regs, fields []string) ([]models.Student, error)
	AddRegisteredDrive(ctx context.Context, id primitive.ObjectID, driveID string) error
	RemoveRegisteredDrive(ctx context.Context, id primitive.ObjectID, driveID string) error
}

// DriveService implements placement drive management and student
// registration.
type DriveService struct {
	drives   driveStore
	students driveRosterStore
}

// NewDriveService creates a new drive service.
func NewDriveService(drives driveStore, students driveRosterStore) *DriveService {
	return &DriveService{drives: drives, students: students}
}

// Create posts a new placement drive.
func (s *DriveService) Create(ctx context.Context, req dto.CreateDriveRequest) error {
	driveDate, err := fieldval.ParseDate(*req.DriveDate)
	if err != nil {
		return apperrors.NewBadRequest("Drive Date must be a valid date")
	}

	drive := &models.Drive{
		CreatedDate:        time.Now(),
		CompanyName:        *req.CompanyName,
		Position:           *req.Position,
		Description:        *req.Description,
		ContactEmail:       *req.ContactEmail,
		DriveDate:          driveDate,
		Location:           *req.Location,
		Salary:             *req.Salary,
		RegisteredStudents: []string{},
	}
	if req.URL != nil {
		drive.URL = *req.URL
	}
	if req.Requirements != nil {
		drive.Requirements = models.DriveRequirements{
			Gender:           req.Requirements.Gender,
			TenthMark:        req.Requirements.TenthMark,
			PlusTwoMark:      req.Requirements.PlusTwoMark,
			BtechMinCGPA:     req.Requirements.BtechMinCGPA,
			NumberOfBacklogs: req.Requirements.NumberOfBacklogs,
		}
	}

	return s.drives.Create(ctx, drive)
}

// List retrieves every drive, newest first.
func (s *DriveService) List(ctx context.Context) ([]models.Drive, error) {
	return s.drives.List(ctx)
}

// ListEligible retrieves the drives whose requirements the student satisfies,
// newest first.
func (s *DriveService) ListEligible(ctx context.Context, student *models.Student) ([]models.Drive, error) {
	return s.drives.ListFiltered(ctx, EligibilityFilter(student))
}

// Delete removes a drive.
func (s *DriveService) Delete(ctx context.Context, id string) error {
	if err := s.drives.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Drive not found")
		}
		return err
	}
	return nil
}

// Register adds the student to the drive roster. Registering twice fails; the
// roster update and its check are one conditional write, so concurrent
// attempts cannot double-register.
func (s *DriveService) Register(ctx context.Context, student *models.Student, driveID string) error {
	found, registered, err := s.drives.AddRegistration(ctx, driveID, student.RegisterNumber)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("Drive not found")
	}
	if !registered {
		return apperrors.NewForbidden("You are already registered")
	}
	return s.students.AddRegisteredDrive(ctx, student.ID, driveID)
}

// Deregister removes the student from the drive roster. Deregistering without
// a prior registration fails.
func (s *DriveService) Deregister(ctx context.Context, student *models.Student, driveID string) error {
	found, removed, err := s.drives.RemoveRegistration(ctx, driveID, student.RegisterNumber)
	if err != nil {
		return err
	}
	if !found {
		return apperrors.NewNotFound("Drive not found")
	}
	if !removed {
		return apperrors.NewForbidden("You are not registered")
	}
	return s.students.RemoveRegisteredDrive(ctx, student.ID, driveID)
}

// RegisteredStudents retrieves the roster of a drive, projected to the fields
// the request selects. Name and register number are always included.
func (s *DriveService) RegisteredStudents(ctx context.Context, req dto.RegisteredStudentsRequest) ([]models.Student, error) {
	drive, err := s.drives.GetByID(ctx, *req.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("Drive not found")
		}
		return nil, err
	}
	if len(drive.RegisteredStudents) == 0 {
		return []models.Student{}, nil
	}

	var fields []string
	addField := func(flag *bool, name string) {
		if flag != nil && *flag {
			fields = append(fields, name)
		}
	}
	addField(req.Branch, "branch")
	addField(req.Gender, "gender")
	addField(req.DateOfBirth, "date_of_birth")
	addField(req.TenthMark, "tenth_mark")
	addField(req.PlusTwoMark, "plus_two_mark")
	addField(req.BtechCGPA, "btech_cgpa")
	addField(req.NumberOfBacklogs, "number_of_backlogs")
	addField(req.Email, "email")
	addField(req.PhoneNumber, "phone_number")

	return s.students.ListByRegisterNumbers(ctx, drive.RegisteredStudents, fields)
}
