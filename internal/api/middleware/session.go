package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvisser/enroll/internal/api/util"
	"github.com/mvisser/enroll/internal/core/service"
)

const (
	// SessionCookie is the cookie holding the signed session token.
	SessionCookie = "enroll_session"

	userIDContextKey = "userID"
)

// SessionMiddleware requires a valid session cookie and redirects to the
// login page when it is missing or no longer verifies.
func SessionMiddleware(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			redirectToLogin(c)
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			ClearSession(c)
			redirectToLogin(c)
			return
		}

		c.Set(userIDContextKey, claims.UserID)
		c.Next()
	}
}

// SessionUserID retrieves the authenticated user id from the context.
func SessionUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(int64)
	return userID, ok
}

// ClearSession drops the session cookie.
func ClearSession(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

func redirectToLogin(c *gin.Context) {
	util.SetFlash(c, "Please log in first.", "warning")
	c.Redirect(http.StatusSeeOther, "/")
	c.Abort()
}
