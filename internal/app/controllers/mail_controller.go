package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/app/services"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
)

// MailController handles criteria-based bulk mail, shared by the admin and
// execom route groups.
type MailController struct {
	mail *services.MailService
}

// NewMailController creates a new mail controller.
func NewMailController(mail *services.MailService) *MailController {
	return &MailController{mail: mail}
}

// Send handles POST send-email.
func (ctl *MailController) Send(c *gin.Context) {
	var req dto.SendMailRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := validateMailRequest(req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := ctl.mail.Send(c.Request.Context(), req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func validateMailRequest(req dto.SendMailRequest) error {
	if err := fieldval.BranchArray(req.BranchList, "Branch List", true); err != nil {
		return err
	}
	if err := fieldval.GenderArray(req.GenderList, "Gender List", true); err != nil {
		return err
	}
	if err := fieldval.Int(req.NumberOfBacklogs, 0, 100, "Number of Backlogs", false); err != nil {
		return err
	}
	if err := fieldval.Number(req.TenthMark, 0, 100, "Tenth Mark", false); err != nil {
		return err
	}
	if err := fieldval.Number(req.PlusTwoMark, 0, 100, "Plus Two Mark", false); err != nil {
		return err
	}
	if err := fieldval.Number(req.BtechCGPA, 0, 10, "Btech CGPA", false); err != nil {
		return err
	}
	if err := fieldval.String(req.Subject, 3, 100, "Subject", true); err != nil {
		return err
	}
	return fieldval.String(req.Content, 3, 5000, "Content", true)
}
