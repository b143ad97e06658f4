package dto

// RegisterForm represents the registration form submission. The image file
// part is read from the multipart form directly by the handler.
type RegisterForm struct {
	Name            string `form:"name" binding:"required"`
	Birthdate       string `form:"bday" binding:"required"`
	Address         string `form:"address" binding:"required"`
	Username        string `form:"username" binding:"required"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

// LoginForm represents the login form submission
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
