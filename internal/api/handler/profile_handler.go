package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvisser/enroll/internal/api/middleware"
	"github.com/mvisser/enroll/internal/api/util"
	"github.com/mvisser/enroll/internal/core/service"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Show handles GET /profile
func (h *ProfileHandler) Show(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		middleware.ClearSession(c)
		util.SetFlash(c, "Please log in first.", "warning")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	profile, err := h.profiles.View(c.Request.Context(), userID)
	if err != nil {
		// A session pointing at a missing row or an unparseable birthdate is
		// a data-integrity problem; drop the session and re-prompt rather
		// than failing the request.
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Warn("profile unavailable, clearing session")
		middleware.ClearSession(c)
		util.SetFlash(c, "Please log in first.", "warning")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Flash": util.PopFlash(c),
		"User":  profile.User,
		"Age":   profile.Age,
	})
}
