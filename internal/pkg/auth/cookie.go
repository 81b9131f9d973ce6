package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vishnuv55/SPC-Backend/internal/app/models"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// SetSessionCookie attaches a session cookie for the role, expiring with the
// role's session horizon. SameSite=None because the browser client is served
// from a different origin.
func SetSessionCookie(c *gin.Context, token string, role models.Role, secure bool) {
	c.SetSameSite(http.SameSiteNoneMode)
	maxAge := SessionDays(role) * 24 * 60 * 60
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
