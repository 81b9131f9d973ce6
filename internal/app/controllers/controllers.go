// Package controllers contains the HTTP handlers. Each handler binds the
// request body, runs its validation sequence, delegates to a service and
// renders a fixed-shape response; every failure funnels through
// middleware.HandleError.
package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/services"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
)

// Controllers bundles every controller for route registration.
type Controllers struct {
	Admin   *AdminController
	Student *StudentController
	Execom  *ExecomController
	Drive   *DriveController
	Bill    *BillController
	Forum   *ForumController
	Mail    *MailController
	Session *SessionController
}

// NewControllers wires the controllers over the service layer.
func NewControllers(svcs *services.Services, jwt *auth.JWTService, secureCookies bool) *Controllers {
	return &Controllers{
		Admin:   NewAdminController(svcs, secureCookies),
		Student: NewStudentController(svcs, secureCookies),
		Execom:  NewExecomController(svcs, secureCookies),
		Drive:   NewDriveController(svcs.Drives),
		Bill:    NewBillController(svcs.Bills),
		Forum:   NewForumController(svcs.Forum),
		Mail:    NewMailController(svcs.Mail),
		Session: NewSessionController(jwt),
	}
}

// bindJSON decodes the request body, hiding decoder details behind a uniform
// 400.
func bindJSON(c *gin.Context, target interface{}) error {
	if err := c.ShouldBindJSON(target); err != nil {
		return apperrors.NewBadRequest("Invalid request body")
	}
	return nil
}
