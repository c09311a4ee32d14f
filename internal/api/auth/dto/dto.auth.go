// Package dto - Auth domain.
package dto

// LoginInput is the body of POST /api/auth/login. Username accepts the
// username or the email address.
type LoginInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required,max=200"`
}

// RefreshInput is the body of POST /api/auth/refresh.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ChangePasswordInput is the body of POST /api/auth/change-password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strong_password"`
}
