package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/app/services"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
)

// DriveController handles placement drive management, shared by the admin and
// execom route groups.
type DriveController struct {
	drives *services.DriveService
}

// NewDriveController creates a new drive controller.
func NewDriveController(drives *services.DriveService) *DriveController {
	return &DriveController{drives: drives}
}

// Create handles POST drive-details.
func (ctl *DriveController) Create(c *gin.Context) {
	var req dto.CreateDriveRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := validateNewDrive(req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.drives.Create(c.Request.Context(), req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Drive created successfully"})
}

func validateNewDrive(req dto.CreateDriveRequest) error {
	if err := fieldval.String(req.CompanyName, 2, 100, "Company Name", true); err != nil {
		return err
	}
	if err := fieldval.String(req.Position, 2, 100, "Position", true); err != nil {
		return err
	}
	if err := fieldval.String(req.Description, 10, 2000, "Description", true); err != nil {
		return err
	}
	if err := fieldval.Email(req.ContactEmail, "Contact Email", true); err != nil {
		return err
	}
	if err := fieldval.Date(req.DriveDate, "Drive Date", true); err != nil {
		return err
	}
	if err := fieldval.String(req.Location, 2, 100, "Location", true); err != nil {
		return err
	}
	if err := fieldval.String(req.Salary, 1, 50, "Salary", true); err != nil {
		return err
	}
	if err := fieldval.URL(req.URL, "URL", false); err != nil {
		return err
	}

	if req.Requirements == nil {
		return nil
	}
	if err := fieldval.GenderArray(req.Requirements.Gender, "Requirement Gender", true); err != nil {
		return err
	}
	if err := fieldval.Marks(req.Requirements.TenthMark, "Requirement Tenth Mark", false); err != nil {
		return err
	}
	if err := fieldval.Marks(req.Requirements.PlusTwoMark, "Requirement Plus Two Mark", false); err != nil {
		return err
	}
	if err := fieldval.Number(req.Requirements.BtechMinCGPA, 0, 10, "Requirement Btech CGPA", false); err != nil {
		return err
	}
	return fieldval.Int(req.Requirements.NumberOfBacklogs, 0, 100, "Requirement Number of Backlogs", false)
}

// List handles GET drive-details for staff: every drive, newest first.
func (ctl *DriveController) List(c *gin.Context) {
	drives, err := ctl.drives.List(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, drives)
}

// Delete handles DELETE drive/:id.
func (ctl *DriveController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := fieldval.ObjectID(&id, "Drive ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.drives.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Drive deleted successfully"})
}
