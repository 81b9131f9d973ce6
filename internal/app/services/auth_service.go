package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
)

type studentCredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdatePasswordByID(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
}

type execomCredentialStore interface {
	GetByDesignation(ctx context.Context, designation string) (*models.Execom, error)
	UpdatePasswordByID(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	UpdatePasswordByDesignation(ctx context.Context, designation, passwordHash string) error
}

// AuthService implements login and password management for all three roles.
// The admin is a single configured identity; students and execoms authenticate
// against their stored bcrypt hashes.
type AuthService struct {
	students  studentCredentialStore
	execoms   execomCredentialStore
	jwt       *auth.JWTService
	adminID   string
	adminHash string
}

// NewAuthService creates a new auth service.
func NewAuthService(students studentCredentialStore, execoms execomCredentialStore, jwt *auth.JWTService, adminID, adminHash string) *AuthService {
	return &AuthService{
		students:  students,
		execoms:   execoms,
		jwt:       jwt,
		adminID:   adminID,
		adminHash: adminHash,
	}
}

// LoginAdmin verifies the admin password against the configured hash and
// issues a session token.
func (s *AuthService) LoginAdmin(password string) (string, error) {
	if !auth.CheckPassword(s.adminHash, password) {
		return "", apperrors.NewUnauthorized("Incorrect Password")
	}
	return s.jwt.Sign(models.RoleAdmin, s.adminID)
}

// LoginStudent verifies a student's email and password and issues a session
// token.
func (s *AuthService) LoginStudent(ctx context.Context, email, password string) (string, error) {
	student, err := s.students.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", apperrors.NewUnauthorized("Invalid Email ID")
		}
		return "", err
	}
	if !auth.CheckPassword(student.Password, password) {
		return "", apperrors.NewUnauthorized("Incorrect Password")
	}
	return s.jwt.Sign(models.RoleStudent, student.ID.Hex())
}

// LoginExecom verifies an execom's designation and password and issues a
// session token.
func (s *AuthService) LoginExecom(ctx context.Context, designation, password string) (string, error) {
	execom, err := s.execoms.GetByDesignation(ctx, designation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", apperrors.NewUnauthorized("Invalid Designation")
		}
		return "", err
	}
	if !auth.CheckPassword(execom.Password, password) {
		return "", apperrors.NewUnauthorized("Incorrect Password")
	}
	return s.jwt.Sign(models.RoleExecom, execom.ID.Hex())
}

// ChangeStudentPassword rotates a student's own password after verifying the
// current one.
func (s *AuthService) ChangeStudentPassword(ctx context.Context, student *models.Student, currentPassword, newPassword string) error {
	if !auth.CheckPassword(student.Password, currentPassword) {
		return apperrors.NewUnauthorized("Incorrect Password")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.students.UpdatePasswordByID(ctx, student.ID, hash)
}

// ChangeExecomPassword rotates an execom's own password after verifying the
// current one.
func (s *AuthService) ChangeExecomPassword(ctx context.Context, execom *models.Execom, currentPassword, newPassword string) error {
	if !auth.CheckPassword(execom.Password, currentPassword) {
		return apperrors.NewUnauthorized("Incorrect Password")
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.execoms.UpdatePasswordByID(ctx, execom.ID, hash)
}

// ResetStudentPassword sets a new password for the student with the email,
// without knowledge of the old one. Admin operation.
func (s *AuthService) ResetStudentPassword(ctx context.Context, email, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.students.UpdatePasswordByEmail(ctx, email, hash); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewBadRequest("Invalid Email ID")
		}
		return err
	}
	return nil
}

// ResetExecomPassword sets a new password for the execom with the designation.
// Admin operation.
func (s *AuthService) ResetExecomPassword(ctx context.Context, designation, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.execoms.UpdatePasswordByDesignation(ctx, designation, hash); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperrors.NewBadRequest("Invalid Designation")
		}
		return err
	}
	return nil
}
