package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvisser/enroll/internal/api/dto"
	"github.com/mvisser/enroll/internal/api/middleware"
	"github.com/mvisser/enroll/internal/api/util"
	"github.com/mvisser/enroll/internal/core/service"
)

type AuthHandler struct {
	accounts *service.AccountService
	sessions *service.SessionService
}

func NewAuthHandler(accounts *service.AccountService, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
	}
}

// ShowLogin handles GET /
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flash": util.PopFlash(c),
	})
}

// Login handles POST /
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		util.SetFlash(c, "Invalid username or password.", "danger")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	user, err := h.accounts.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		// Unknown username and wrong password get the same message.
		if !errors.Is(err, service.ErrInvalidCredentials) {
			c.Error(err)
			return
		}
		util.SetFlash(c, "Invalid username or password.", "danger")
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	token, err := h.sessions.Issue(user.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, service.SessionTTLHours*3600, "/", "", false, true)
	util.SetFlash(c, "Login successful!", "success")
	c.Redirect(http.StatusSeeOther, "/profile")
}
