// Package services contains the business logic layer between controllers and
// repositories. Each service depends on narrow store interfaces so it can be
// exercised against in-memory fakes.
package services

import (
	"github.com/vishnuv55/SPC-Backend/internal/app/repositories"
	"github.com/vishnuv55/SPC-Backend/internal/config"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/email"
)

// Services bundles every service for dependency injection.
type Services struct {
	Auth       *AuthService
	Students   *StudentService
	Drives     *DriveService
	Placements *PlacementService
	Forum      *ForumService
	Bills      *BillService
	Mail       *MailService
}

// NewServices wires the services over the repositories and shared
// collaborators.
func NewServices(repos *repositories.Repositories, cfg *config.Config, jwt *auth.JWTService, mailer email.Mailer) *Services {
	return &Services{
		Auth:       NewAuthService(repos.Students, repos.Execoms, jwt, cfg.Admin.ID, cfg.Admin.PasswordHash),
		Students:   NewStudentService(repos.Students, repos.Placements, mailer),
		Drives:     NewDriveService(repos.Drives, repos.Students),
		Placements: NewPlacementService(repos.Placements, repos.Alumni, repos.Students),
		Forum:      NewForumService(repos.Queries),
		Bills:      NewBillService(repos.Bills),
		Mail:       NewMailService(repos.Students, mailer),
	}
}
