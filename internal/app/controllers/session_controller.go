package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models/dto"
	"github.com/vishnuv55/SPC-Backend/internal/middleware"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
)

// SessionController answers the login probe the browser client calls on
// startup.
type SessionController struct {
	jwt *auth.JWTService
}

// NewSessionController creates a new session controller.
func NewSessionController(jwt *auth.JWTService) *SessionController {
	return &SessionController{jwt: jwt}
}

// IsUserLoggedIn handles GET /api/is-user-logged-in. A missing cookie is the
// one place an anonymous request is a normal answer rather than a rejection.
func (ctl *SessionController) IsUserLoggedIn(c *gin.Context) {
	tokenString, err := c.Cookie(auth.SessionCookieName)
	if err != nil {
		c.JSON(http.StatusOK, dto.LoginStatusResponse{IsUserLoggedIn: false})
		return
	}

	claims, err := ctl.jwt.Verify(tokenString)
	if err != nil {
		middleware.HandleError(c, apperrors.NewForbidden("JWT Token is invalid"))
		return
	}

	c.JSON(http.StatusOK, dto.LoginStatusResponse{
		IsUserLoggedIn: true,
		UserType:       claims.UserType,
	})
}
