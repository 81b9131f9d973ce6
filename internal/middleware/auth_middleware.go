package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/apperrors"
	"github.com/vishnuv55/SPC-Backend/internal/pkg/auth"
)

// principalKey is the gin context key under which the authenticated principal
// is stored for the duration of a request.
const principalKey = "principal"

type studentLoader interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
}

type execomLoader interface {
	GetByID(ctx context.Context, id string) (*models.Execom, error)
}

// AuthMiddleware gates route groups by role. A token names a role and an
// identity; the gate re-resolves the identity on every request so a deleted
// account is locked out immediately, not at token expiry.
type AuthMiddleware struct {
	jwt           *auth.JWTService
	students      studentLoader
	execoms       execomLoader
	adminID       string
	secureCookies bool
}

// NewAuthMiddleware creates the authentication gate.
func NewAuthMiddleware(jwt *auth.JWTService, students studentLoader, execoms execomLoader, adminID string, secureCookies bool) *AuthMiddleware {
	return &AuthMiddleware{
		jwt:           jwt,
		students:      students,
		execoms:       execoms,
		adminID:       adminID,
		secureCookies: secureCookies,
	}
}

// Require returns a handler admitting only requests carrying a valid session
// token for the role. A cookie that can never become valid again is cleared
// along with the rejection.
func (m *AuthMiddleware) Require(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.SessionCookieName)
		if err != nil {
			HandleError(c, apperrors.NewUnauthorized("token missing"))
			return
		}

		claims, err := m.jwt.Verify(tokenString)
		if err != nil {
			auth.ClearSessionCookie(c, m.secureCookies)
			HandleError(c, apperrors.NewForbidden("token invalid"))
			return
		}

		if claims.UserType != string(role) {
			HandleError(c, apperrors.NewForbidden("forbidden route"))
			return
		}

		principal, err := m.resolve(c.Request.Context(), role, claims.UserID)
		if err != nil {
			auth.ClearSessionCookie(c, m.secureCookies)
			HandleError(c, err)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(ctx context.Context, role models.Role, userID string) (*models.Principal, error) {
	switch role {
	case models.RoleAdmin:
		if userID != m.adminID {
			return nil, apperrors.NewBadRequest("token expired")
		}
		return &models.Principal{Role: models.RoleAdmin}, nil

	case models.RoleStudent:
		student, err := m.students.GetByID(ctx, userID)
		if err != nil {
			return nil, apperrors.NewUnauthorized("principal does not exist")
		}
		return &models.Principal{Role: models.RoleStudent, Student: student}, nil

	case models.RoleExecom:
		execom, err := m.execoms.GetByID(ctx, userID)
		if err != nil {
			return nil, apperrors.NewUnauthorized("principal does not exist")
		}
		return &models.Principal{Role: models.RoleExecom, Execom: execom}, nil
	}

	return nil, apperrors.NewForbidden("forbidden route")
}

// CurrentPrincipal returns the principal attached by Require. It must only be
// called on gated routes.
func CurrentPrincipal(c *gin.Context) *models.Principal {
	principal, _ := c.Get(principalKey)
	return principal.(*models.Principal)
}

// CurrentStudent returns the student principal attached by Require(student).
func CurrentStudent(c *gin.Context) *models.Student {
	return CurrentPrincipal(c).Student
}

// CurrentExecom returns the execom principal attached by Require(execom).
func CurrentExecom(c *gin.Context) *models.Execom {
	return CurrentPrincipal(c).Execom
}
