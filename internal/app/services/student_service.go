package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/email"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/logger"
)

type studentStore interface {
	Create(ctx context.Context, student *models.Student) error
	CreateMany(ctx context.Context, students []*models.Student) error
	ExistsByRegisterNumber(ctx context.Context, registerNumber string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	DistinctRegisterNumbers(ctx context.Context) ([]string, error)
	DistinctEmails(ctx context.Context) ([]string, error)
	ListByBranchAndYear(ctx context.Context, branch string, passOutYear int) ([]models.Student, error)
	Delete(ctx context.Context, id string) error
	ApplyPatch(ctx context.Context, id primitive.ObjectID, patch bson.M) error
}

type placementLookup interface {
	GetByRegisterNumber(ctx context.Context, registerNumber string) (*models.Placement, error)
}

// StudentService implements student account lifecycle and profile management.
type StudentService struct {
	students   studentStore
	placements placementLookup
	mailer     email.Mailer
}

// NewStudentService creates a new student service.
func NewStudentService(students studentStore, placements placementLookup, mailer email.Mailer) *StudentService {
	return &StudentService{students: students, placements: placements, mailer: mailer}
}

// Create registers a single student account. The initial password is the
// register number; the student is expected to change it after first login.
func (s *StudentService) Create(ctx context.Context, req dto.CreateStudentRequest) error {
	exists, err := s.students.ExistsByRegisterNumber(ctx, *req.RegisterNumber)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewConflict("Student with this Register Number already exists")
	}
	exists, err = s.students.ExistsByEmail(ctx, *req.Email)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewConflict("Student with this Email ID already exists")
	}

	student, err := newStudentRecord(req)
	if err != nil {
		return err
	}
	if err := s.students.Create(ctx, student); err != nil {
		return err
	}

	s.notifyAccountCreated([]string{student.Email})
	return nil
}

// CreateMany registers a batch of student accounts. A duplicate register
// number or email, within the batch or against existing records, rejects the
// whole batch.
func (s *StudentService) CreateMany(ctx context.Context, rows []dto.CreateStudentRequest) error {
	existingRegs, err := s.students.DistinctRegisterNumbers(ctx)
	if err != nil {
		return err
	}
	existingEmails, err := s.students.DistinctEmails(ctx)
	if err != nil {
		return err
	}

	seenRegs := make(map[string]bool, len(existingRegs))
	for _, reg := range existingRegs {
		seenRegs[reg] = true
	}
	seenEmails := make(map[string]bool, len(existingEmails))
	for _, e := range existingEmails {
		seenEmails[e] = true
	}

	students := make([]*models.Student, 0, len(rows))
	recipients := make([]string, 0, len(rows))
	for _, row := range rows {
		if seenRegs[*row.RegisterNumber] {
			return apperrors.NewConflict(fmt.Sprintf("Duplicate Register Number %s", *row.RegisterNumber))
		}
		if seenEmails[*row.Email] {
			return apperrors.NewConflict(fmt.Sprintf("Duplicate Email ID %s", *row.Email))
		}
		seenRegs[*row.RegisterNumber] = true
		seenEmails[*row.Email] = true

		student, err := newStudentRecord(row)
		if err != nil {
			return err
		}
		students = append(students, student)
		recipients = append(recipients, student.Email)
	}

	if err := s.students.CreateMany(ctx, students); err != nil {
		return err
	}

	s.notifyAccountCreated(recipients)
	return nil
}

func newStudentRecord(req dto.CreateStudentRequest) (*models.Student, error) {
	hash, err := auth.HashPassword(*req.RegisterNumber)
	if err != nil {
		return nil, err
	}
	return &models.Student{
		RegisterNumber: *req.RegisterNumber,
		Password:       hash,
		Name:           *req.Name,
		Email:          *req.Email,
		Branch:         *req.Branch,
		PassOutYear:    *req.PassOutYear,
	}, nil
}

// Account-creation mail is best effort; a relay failure never fails the
// registration itself.
func (s *StudentService) notifyAccountCreated(recipients []string) {
	if _, rejected, err := s.mailer.Send(recipients, email.AccountCreatedSubject, email.AccountCreatedBody); err != nil {
		logger.Warn().Err(err).Strs("rejected", rejected).Msg("account creation mail failed")
	}
}

// List retrieves the students of a branch and graduation year.
func (s *StudentService) List(ctx context.Context, branch string, passOutYear int) ([]models.Student, error) {
	return s.students.ListByBranchAndYear(ctx, branch, passOutYear)
}

// Delete removes a student account.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.students.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewNotFound("Student not found")
		}
		return err
	}
	return nil
}

// Profile returns a student's own record with the placement snapshot folded
// in.
func (s *StudentService) Profile(ctx context.Context, student *models.Student) (*dto.StudentProfileResponse, error) {
	profile := &dto.StudentProfileResponse{Student: *student}

	placement, err := s.placements.GetByRegisterNumber(ctx, student.RegisterNumber)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return profile, nil
		}
		return nil, err
	}
	profile.PlacedCompany = placement.PlacedCompany
	profile.CTC = placement.CTC
	return profile, nil
}

// EditProfile applies a partial update to a student's own record. Only the
// fields present in the request are touched.
func (s *StudentService) EditProfile(ctx context.Context, student *models.Student, req dto.EditProfileRequest) error {
	patch := bson.M{}

	if req.Name != nil {
		patch["name"] = *req.Name
	}
	if req.DateOfBirth != nil {
		dob, err := fieldval.ParseDate(*req.DateOfBirth)
		if err != nil {
			return apperrors.NewBadRequest("Date of Birth must be a valid date")
		}
		patch["date_of_birth"] = dob
	}
	if req.Gender != nil {
		patch["gender"] = *req.Gender
	}
	if req.TenthMark != nil {
		patch["tenth_mark"] = req.TenthMark
	}
	if req.PlusTwoMark != nil {
		patch["plus_two_mark"] = req.PlusTwoMark
	}
	if req.BtechCGPA != nil {
		patch["btech_cgpa"] = *req.BtechCGPA
	}
	if req.NumberOfBacklogs != nil {
		patch["number_of_backlogs"] = *req.NumberOfBacklogs
	}
	if req.PhoneNumber != nil {
		patch["phone_number"] = *req.PhoneNumber
	}
	if req.Address != nil {
		patch["address"] = req.Address
	}
	if req.GuardianName != nil {
		patch["guardian_name"] = *req.GuardianName
	}
	if req.GuardianContactNumber != nil {
		patch["guardian_contact_number"] = *req.GuardianContactNumber
	}
	if req.LinkedIn != nil {
		patch["linkedin"] = *req.LinkedIn
	}
	if req.Twitter != nil {
		patch["twitter"] = *req.Twitter
	}
	if req.GitHub != nil {
		patch["github"] = *req.GitHub
	}
	if req.Projects != nil {
		patch["projects"] = req.Projects
	}
	if req.ProgrammingLanguages != nil {
		patch["programming_languages"] = req.ProgrammingLanguages
	}

	if len(patch) == 0 {
		return nil
	}
	return s.students.ApplyPatch(ctx, student.ID, patch)
}
