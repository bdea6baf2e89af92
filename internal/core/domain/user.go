package domain

import (
	"errors"
	"time"
)

const (
	UserTypeClient   = "client"
	UserTypeSupplier = "supplier"
	UserTypeDriver   = "driver"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an authenticated actor: a client or supplier requesting
// deliveries, or a driver fulfilling them.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"-"`
	UserType     string `json:"user_type"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	// Drivers require manual verification before going online; clients and
	// suppliers are verified on registration.
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsValidUserType reports whether t is one of the known user types.
func IsValidUserType(t string) bool {
	return t == UserTypeClient || t == UserTypeSupplier || t == UserTypeDriver
}
