// Package middleware contains the authentication gate and the error
// translation layer shared by every route.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/logger"
)

// HandleError is the single point where errors become HTTP responses. Typed
// errors render their own status and message; anything else is logged and
// hidden behind a generic 500.
func HandleError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.AbortWithStatusJSON(appErr.StatusCode, dto.ErrorResponse{
			Status:     "error",
			StatusCode: appErr.StatusCode,
			Message:    appErr.Message,
		})
		return
	}

	logger.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")

	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
		Status:     "error",
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal Server Error",
	})
}

// NotFound answers requests for unknown paths.
func NotFound(c *gin.Context) {
	HandleError(c, apperrors.NewNotFound("Requested url does not exist"))
}
