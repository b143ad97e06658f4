package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mvisser/enroll/internal/api/dto"
	"github.com/mvisser/enroll/internal/api/util"
	"github.com/mvisser/enroll/internal/core/repository"
	"github.com/mvisser/enroll/internal/core/service"
)

type RegisterHandler struct {
	accounts *service.AccountService
	images   repository.ImageStore
}

func NewRegisterHandler(accounts *service.AccountService, images repository.ImageStore) *RegisterHandler {
	return &RegisterHandler{
		accounts: accounts,
		images:   images,
	}
}

// Show handles GET /register
func (h *RegisterHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Flash": util.PopFlash(c),
	})
}

// Register handles POST /register
func (h *RegisterHandler) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		util.SetFlash(c, "All fields are required.", "danger")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	if form.Password != form.ConfirmPassword {
		util.SetFlash(c, "Passwords do not match!", "danger")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	imageRef, ok := h.storeImage(c)
	if !ok {
		return
	}

	_, err := h.accounts.Register(c.Request.Context(), service.RegisterInput{
		Name:      form.Name,
		Birthdate: form.Birthdate,
		Address:   form.Address,
		Username:  form.Username,
		Password:  form.Password,
		Image:     imageRef,
	})
	if errors.Is(err, repository.ErrDuplicateUsername) {
		util.SetFlash(c, "Username already taken.", "danger")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}
	if err != nil {
		util.SetFlash(c, "Registration failed, please try again.", "danger")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	util.SetFlash(c, "Registration successful!", "success")
	c.Redirect(http.StatusSeeOther, "/")
}

// storeImage persists the optional image part and returns its reference
// path, empty when no image was uploaded. On a rejected upload it redirects
// back to the form and reports false.
func (h *RegisterHandler) storeImage(c *gin.Context) (string, bool) {
	file, err := c.FormFile("image")
	if err != nil || file == nil || file.Filename == "" {
		return "", true
	}

	src, err := file.Open()
	if err != nil {
		util.SetFlash(c, "Could not read the uploaded image.", "danger")
		c.Redirect(http.StatusSeeOther, "/register")
		return "", false
	}
	defer src.Close()

	ref, err := h.images.Save(file.Filename, src, file.Size)
	if errors.Is(err, repository.ErrFileTooLarge) {
		util.SetFlash(c, "Image is too large.", "danger")
		c.Redirect(http.StatusSeeOther, "/register")
		return "", false
	}
	if errors.Is(err, repository.ErrFileTypeNotAllowed) {
		util.SetFlash(c, "Image type is not allowed.", "danger")
		c.Redirect(http.StatusSeeOther, "/register")
		return "", false
	}
	if err != nil {
		util.SetFlash(c, "Could not store the uploaded image.", "danger")
		c.Redirect(http.StatusSeeOther, "/register")
		return "", false
	}

	return ref, true
}
