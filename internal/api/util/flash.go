package util

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "enroll_flash"

// Flash is a one-shot message carried across a redirect in a short-lived
// cookie. Category matches the usual alert classes (success, danger,
// warning).
type Flash struct {
	Message  string
	Category string
}

// SetFlash stores a flash message for the next request.
func SetFlash(c *gin.Context, message, category string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// PopFlash returns the pending flash message, if any, and clears it.
func PopFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	category, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return &Flash{Message: message, Category: category}
}
