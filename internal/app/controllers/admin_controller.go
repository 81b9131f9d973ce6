package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/app/services"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
)

// AdminController handles the administrator's account and management
// endpoints.
type AdminController struct {
	auth          *services.AuthService
	students      *services.StudentService
	drives        *services.DriveService
	placements    *services.PlacementService
	secureCookies bool
}

// NewAdminController creates a new admin controller.
func NewAdminController(svcs *services.Services, secureCookies bool) *AdminController {
	return &AdminController{
		auth:          svcs.Auth,
		students:      svcs.Students,
		drives:        svcs.Drives,
		placements:    svcs.Placements,
		secureCookies: secureCookies,
	}
}

// Login handles POST /api/admin/login.
func (ctl *AdminController) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Password(req.Password, "Password", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	token, err := ctl.auth.LoginAdmin(*req.Password)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	auth.SetSessionCookie(c, token, models.RoleAdmin, ctl.secureCookies)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Login Successful"})
}

// Logout handles POST /api/admin/logout.
func (ctl *AdminController) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, ctl.secureCookies)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout Successful"})
}

func validateNewStudent(req dto.CreateStudentRequest) error {
	if err := fieldval.String(req.RegisterNumber, 2, 20, "Register Number", true); err != nil {
		return err
	}
	if err := fieldval.Name(req.Name, "Name", true); err != nil {
		return err
	}
	if err := fieldval.Email(req.Email, "Email", true); err != nil {
		return err
	}
	if err := fieldval.Branch(req.Branch, "Branch", true); err != nil {
		return err
	}
	return fieldval.PassOutYear(req.PassOutYear, "Pass Out Year", true)
}

// CreateStudent handles POST /api/admin/create-student.
func (ctl *AdminController) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := validateNewStudent(req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.students.Create(c.Request.Context(), req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Student created successfully"})
}

// CreateStudents handles POST /api/admin/create-students.
func (ctl *AdminController) CreateStudents(c *gin.Context) {
	var req dto.CreateStudentsRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if len(req.Students) == 0 {
		middleware.HandleError(c, apperrors.NewBadRequest("Students field cannot be empty"))
		return
	}
	for _, row := range req.Students {
		if err := validateNewStudent(row); err != nil {
			middleware.HandleError(c, err)
			return
		}
	}

	if err := ctl.students.CreateMany(c.Request.Context(), req.Students); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Students created successfully"})
}

// ListStudents handles POST /api/admin/students.
func (ctl *AdminController) ListStudents(c *gin.Context) {
	var req dto.ListStudentsRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Branch(req.Branch, "Branch", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.PassOutYear(req.PassOutYear, "Pass Out Year", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	students, err := ctl.students.List(c.Request.Context(), *req.Branch, *req.PassOutYear)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// DeleteStudent handles DELETE /api/admin/student/:id.
func (ctl *AdminController) DeleteStudent(c *gin.Context) {
	id := c.Param("id")
	if err := fieldval.ObjectID(&id, "Student ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.students.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully"})
}

// RegisteredStudents handles POST /api/admin/student-details: the roster of a
// drive, projected to the requested fields.
func (ctl *AdminController) RegisteredStudents(c *gin.Context) {
	var req dto.RegisteredStudentsRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.ObjectID(req.ID, "Drive ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	students, err := ctl.drives.RegisteredStudents(c.Request.Context(), req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// ResetStudentPassword handles POST /api/admin/update-student-password.
func (ctl *AdminController) ResetStudentPassword(c *gin.Context) {
	var req dto.ResetStudentPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Email(req.Email, "Email", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Password(req.Password, "Password", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.auth.ResetStudentPassword(c.Request.Context(), *req.Email, *req.Password); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// ResetExecomPassword handles POST /api/admin/update-execom-password.
func (ctl *AdminController) ResetExecomPassword(c *gin.Context) {
	var req dto.ResetExecomPasswordRequest
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

	if err := ctl.auth.ResetExecomPassword(c.Request.Context(), *req.Designation, *req.Password); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// CreateAlumni handles POST /api/admin/alumni-details: snapshot every student
// of a graduation year into the alumni collection.
func (ctl *AdminController) CreateAlumni(c *gin.Context) {
	var req dto.PassOutYearRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.PassOutYear(req.PassOutYear, "Pass Out Year", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.placements.CreateAlumni(c.Request.Context(), *req.PassOutYear); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Alumni details added successfully"})
}

// ListAlumni handles GET /api/admin/alumni-details.
func (ctl *AdminController) ListAlumni(c *gin.Context) {
	alumni, err := ctl.placements.ListAlumni(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, alumni)
}

// PlacedStudents handles POST /api/admin/placed-students.
func (ctl *AdminController) PlacedStudents(c *gin.Context) {
	var req dto.PassOutYearRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.PassOutYear(req.PassOutYear, "Pass Out Year", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	placements, err := ctl.placements.PlacedStudents(c.Request.Context(), *req.PassOutYear)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, placements)
}

// PlacementReport handles GET /api/admin/placement-report.
func (ctl *AdminController) PlacementReport(c *gin.Context) {
	report, err := ctl.placements.YearWiseReport(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
