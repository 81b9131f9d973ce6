package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/app/services"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/fieldval"
)

// adminDesignation is recorded on answers posted by the administrator, who has
// no execom record to take a designation from.
const adminDesignation = "Admin"

// ForumController handles the Q&A forum across all three route groups.
type ForumController struct {
	forum *services.ForumService
}

// NewForumController creates a new forum controller.
func NewForumController(forum *services.ForumService) *ForumController {
	return &ForumController{forum: forum}
}

// PostQuestion handles POST /api/student/forum-question.
func (ctl *ForumController) PostQuestion(c *gin.Context) {
	var req dto.PostQuestionRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.String(req.Question, 10, 500, "Question", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	student := middleware.CurrentStudent(c)
	if err := ctl.forum.PostQuestion(c.Request.Context(), student, *req.Question); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question posted successfully"})
}

// EditQuestion handles PATCH /api/student/forum/question. Only the original
// author may edit.
func (ctl *ForumController) EditQuestion(c *gin.Context) {
	var req dto.EditQuestionRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.ObjectID(req.ID, "Query ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.String(req.Question, 10, 500, "Question", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	student := middleware.CurrentStudent(c)
	if err := ctl.forum.EditQuestion(c.Request.Context(), student, *req.ID, *req.Question); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Question updated successfully"})
}

// List handles GET forum/queries for every role.
func (ctl *ForumController) List(c *gin.Context) {
	queries, err := ctl.forum.List(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, queries)
}

// AnswerAsAdmin handles POST /api/admin/forum-answer.
func (ctl *ForumController) AnswerAsAdmin(c *gin.Context) {
	ctl.answer(c, adminDesignation)
}

// AnswerAsExecom handles POST /api/execom/forum-answer; the member's
// designation is recorded on the answer.
func (ctl *ForumController) AnswerAsExecom(c *gin.Context) {
	ctl.answer(c, middleware.CurrentExecom(c).Designation)
}

func (ctl *ForumController) answer(c *gin.Context, designation string) {
	var req dto.PostAnswerRequest
	if err := bindJSON(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.ObjectID(req.ID, "Query ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if err := fieldval.String(req.Answer, 3, 1000, "Answer", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.forum.Answer(c.Request.Context(), designation, *req.ID, *req.Answer); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Answer posted successfully"})
}

// Delete handles DELETE forum/queries/:id.
func (ctl *ForumController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := fieldval.ObjectID(&id, "Query ID", true); err != nil {
		middleware.HandleError(c, err)
		return
	}

	if err := ctl.forum.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Query deleted successfully"})
}
