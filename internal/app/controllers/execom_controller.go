package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/app/services"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
)

// ExecomController handles an execom member's own account endpoints.
type ExecomController struct {
	auth          *services.AuthService
	secureCookies bool
}

// NewExecomController creates a new execom controller.
func NewExecomController(svcs *services.Services, secureCookies bool) *ExecomController {
	return &ExecomController{auth: svcs.Auth, secureCookies: secureCookies}
}

// Login handles POST /api/execom/login.
func (ctl *ExecomController) Login(c *gin.Context) {
	var req dto.ExecomLoginRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.String(req.Designation, 2, 50, "Designation", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Password(req.Password, "Password", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	token, err := ctl.auth.LoginExecom(c.Request.Context(), *req.Designation, *req.Password)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	auth.SetSessionCookie(c, token, models.RoleExecom, ctl.secureCookies)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Login Successful"})
}

// Logout handles POST /api/execom/logout.
func (ctl *ExecomController) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, ctl.secureCookies)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout Successful"})
}

// ChangePassword handles POST /api/execom/change-password.
func (ctl *ExecomController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Password(req.CurrentPassword, "Current Password", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Password(req.NewPassword, "New Password", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	execom := middleware.CurrentExecom(c)
	if err := ctl.auth.ChangeExecomPassword(c.Request.Context(), execom, *req.CurrentPassword, *req.NewPassword); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}
