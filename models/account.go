package models

import "time"

// Account roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Account is a dashboard user (clinic administrator or staff member).
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Role         string    `bson:"role" json:"role"`
	ClinicName   string    `bson:"clinic_name,omitempty" json:"clinic_name,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
	LastLoginAt  time.Time `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`
}

// RegisterAccountRequest creates a new dashboard account.
type RegisterAccountRequest struct {
	Email      string `json:"email" binding:"required,email"`
	FullName   string `json:"full_name" binding:"required"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role"`
	ClinicName string `json:"clinic_name"`
	Phone      string `json:"phone"`
}

// SignInRequest authenticates a dashboard account.
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful sign-in or registration.
type AuthResponse struct {
	Account Account `json:"account"`
	Token   string  `json:"token"`
}
