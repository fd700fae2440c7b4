package admins

import (
	"time"

	"site-cms/core/database"
)

// DefaultRole is given to accounts created without a role.
const DefaultRole = "admin"

// Admin is a back-office account.
type Admin struct {
	database.Model
	Email        string     `gorm:"size:191;not null;uniqueIndex" json:"email"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Role         string     `gorm:"size:50;not null" json:"role"`
	PasswordHash string     `gorm:"column:password;size:255;not null" json:"-"`
	IsActive     bool       `gorm:"not null" json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt"`
}

// Profile is the public view of an account.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Profile returns the public view of a.
func (a *Admin) Profile() Profile {
	return Profile{ID: a.ID, Email: a.Email, Name: a.Name, Role: a.Role}
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Admin     Profile   `json:"admin"`
}

// ResetPasswordRequest is the body of POST /admin/auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// CreateRequest describes a new account.
type CreateRequest struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required"`
	Password string `validate:"required,min=6"`
	Role     string
}
