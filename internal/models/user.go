package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// User is read-only here; registration and password handling live elsewhere.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Admin    bool   `json:"admin"`
}

// JWT claims structure
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
