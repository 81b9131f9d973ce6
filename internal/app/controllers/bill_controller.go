package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/app/services"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
)

// BillController handles expense records, shared by the admin and execom
// route groups.
type BillController struct {
	bills *services.BillService
}

// NewBillController creates a new bill controller.
func NewBillController(bills *services.BillService) *BillController {
	return &BillController{bills: bills}
}

// Create handles POST bill-details.
func (ctl *BillController) Create(c *gin.Context) {
	var req dto.PostBillRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.String(req.BillTitle, 3, 100, "Bill Title", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Date(req.BillDate, "Bill Date", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.Number(req.BillAmount, 0, 10000000, "Bill Amount", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.String(req.BillDescription, 3, 500, "Bill Description", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.bills.Create(c.Request.Context(), req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Bill created successfully"})
}

// List handles GET bill-details: every bill, newest first.
func (ctl *BillController) List(c *gin.Context) {
	bills, err := ctl.bills.List(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// Delete handles DELETE bill/:id.
func (ctl *BillController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := fieldval.ObjectID(&id, "Bill ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.bills.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Bill deleted successfully"})
}
