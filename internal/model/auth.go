package model

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

type AuthResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Email       string    `json:"email"`
	Role        UserRole  `json:"role"`
}

// AuthUser is the request context extracted from a verified bearer token.
type AuthUser struct {
	ID    string
	Email string
	Role  UserRole
}

// Token is the server-side record of an issued JWT. A bearer token is
// only honored while its row exists, which makes deletion a revocation.
type Token struct {
	ID        string
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
