package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account identity. Accounts are created inactive and become
// active once the email address is verified. Staff accounts can use the
// admin endpoints.
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Username  string     `json:"username" gorm:"size:30;uniqueIndex"`
	Email     string     `json:"email" gorm:"size:254;uniqueIndex"` // stored lowercased
	FirstName string     `json:"first_name" gorm:"size:50"`
	LastName  string     `json:"last_name" gorm:"size:50"`
	Password  string     `json:"-"` // bcrypt hash, never serialized
	IsActive  bool       `json:"is_active" gorm:"default:false"`
	IsStaff   bool       `json:"is_staff" gorm:"default:false"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// UserCompact is the minimal user representation embedded in listings
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ToCompact returns the compact representation of the user
func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Username: u.Username}
}

// RegisterRequest defines the request body for account registration
type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=30"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required"`
	FirstName string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  string `json:"last_name,omitempty" validate:"omitempty,max=50"`
}

// LoginRequest defines the request body for login. Username also accepts
// the account's email address.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest defines the request body for changing the password
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// PasswordResetRequest defines the request body for requesting a reset link
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmRequest defines the request body for completing a reset
type PasswordResetConfirmRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// ActionTokenClaims are claims for single-purpose tokens (email
// verification, password reset). Purpose is checked on redemption so a
// reset token cannot verify an email and vice versa.
type ActionTokenClaims struct {
	UserID  uint   `json:"user_id"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}
