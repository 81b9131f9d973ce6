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

// StudentController handles a student's own account, profile, drive
// registration and placement reporting.
type StudentController struct {
	auth          *services.AuthService
	students      *services.StudentService
	drives        *services.DriveService
	placements    *services.PlacementService
	secureCookies bool
}

// NewStudentController creates a new student controller.
func NewStudentController(svcs *services.Services, secureCookies bool) *StudentController {
	return &StudentController{
		auth:          svcs.Auth,
		students:      svcs.Students,
		drives:        svcs.Drives,
		placements:    svcs.Placements,
		secureCookies: secureCookies,
	}
}

// Login handles POST /api/student/login.
func (ctl *StudentController) Login(c *gin.Context) {
	var req dto.StudentLoginRequest
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

	token, err := ctl.auth.LoginStudent(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	auth.SetSessionCookie(c, token, models.RoleStudent, ctl.secureCookies)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Login Successful"})
}

// Logout handles POST /api/student/logout.
func (ctl *StudentController) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, ctl.secureCookies)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logout Successful"})
}

// ChangePassword handles POST /api/student/change-password.
func (ctl *StudentController) ChangePassword(c *gin.Context) {
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

	student := middleware.CurrentStudent(c)
	if err := ctl.auth.ChangeStudentPassword(c.Request.Context(), student, *req.CurrentPassword, *req.NewPassword); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// Profile handles GET /api/student/: the student's own record with the
// placement snapshot folded in.
func (ctl *StudentController) Profile(c *gin.Context) {
	student := middleware.CurrentStudent(c)
	profile, err := ctl.students.Profile(c.Request.Context(), student)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// EditProfile handles PATCH /api/student/: a partial profile update.
func (ctl *StudentController) EditProfile(c *gin.Context) {
	var req dto.EditProfileRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := validateProfilePatch(req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	student := middleware.CurrentStudent(c)
	if err := ctl.students.EditProfile(c.Request.Context(), student, req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Profile updated successfully"})
}

func validateProfilePatch(req dto.EditProfileRequest) error {
	if err := fieldval.Name(req.Name, "Name", false); err != nil {
		return err
	}
	if err := fieldval.DateOfBirth(req.DateOfBirth, 17, "Date of Birth", false); err != nil {
		return err
	}
	if err := fieldval.Gender(req.Gender, "Gender", false); err != nil {
		return err
	}
	if err := fieldval.Marks(req.TenthMark, "Tenth Mark", false); err != nil {
		return err
	}
	if err := fieldval.Marks(req.PlusTwoMark, "Plus Two Mark", false); err != nil {
		return err
	}
	if err := fieldval.Number(req.BtechCGPA, 0, 10, "Btech CGPA", false); err != nil {
		return err
	}
	if err := fieldval.Int(req.NumberOfBacklogs, 0, 100, "Number of Backlogs", false); err != nil {
		return err
	}
	if err := fieldval.Phone(req.PhoneNumber, "Phone Number", false); err != nil {
		return err
	}
	if err := fieldval.Address(req.Address, "Address", false); err != nil {
		return err
	}
	if err := fieldval.Name(req.GuardianName, "Guardian Name", false); err != nil {
		return err
	}
	if err := fieldval.Phone(req.GuardianContactNumber, "Guardian Contact Number", false); err != nil {
		return err
	}
	if err := fieldval.URL(req.LinkedIn, "LinkedIn", false); err != nil {
		return err
	}
	if err := fieldval.URL(req.Twitter, "Twitter", false); err != nil {
		return err
	}
	if err := fieldval.URL(req.GitHub, "GitHub", false); err != nil {
		return err
	}
	if err := fieldval.Projects(req.Projects, "Project"); err != nil {
		return err
	}
	return fieldval.StringArray(req.ProgrammingLanguages, 1, 50, "Programming Languages", true)
}

// EligibleDrives handles GET /api/student/drive-details: drives whose
// requirements the student satisfies, newest first.
func (ctl *StudentController) EligibleDrives(c *gin.Context) {
	student := middleware.CurrentStudent(c)
	drives, err := ctl.drives.ListEligible(c.Request.Context(), student)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, drives)
}

// RegisterDrive handles POST /api/student/register-drive.
func (ctl *StudentController) RegisterDrive(c *gin.Context) {
	var req dto.DriveIDRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.ObjectID(req.ID, "Drive ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	student := middleware.CurrentStudent(c)
	if err := ctl.drives.Register(c.Request.Context(), student, *req.ID); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Registered successfully"})
}

// DeregisterDrive handles POST /api/student/deregister-drive.
func (ctl *StudentController) DeregisterDrive(c *gin.Context) {
	var req dto.DriveIDRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.ObjectID(req.ID, "Drive ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	student := middleware.CurrentStudent(c)
	if err := ctl.drives.Deregister(c.Request.Context(), student, *req.ID); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Deregistered successfully"})
}

// PlacementDetails handles POST /api/student/placement-details: the student
// reports an accepted offer.
func (ctl *StudentController) PlacementDetails(c *gin.Context) {
	var req dto.PlacementDetailsRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.String(req.PlacedCompany, 2, 100, "Placed Company", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Number(req.CTC, 0, 10000, "CTC", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	student := middleware.CurrentStudent(c)
	if err := ctl.placements.Report(c.Request.Context(), student, *req.PlacedCompany, *req.CTC); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Placement details added successfully"})
}
