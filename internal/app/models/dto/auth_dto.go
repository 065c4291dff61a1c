package dto

import "github.com/campushub/portal/internal/app/models"

// LoginRequest carries the four-field credential tuple. All four must match
// a users row exactly.
type LoginRequest struct {
	Institution string      `json:"institution" binding:"required"`
	Username    string      `json:"username" binding:"required"`
	Password    string      `json:"password" binding:"required"`
	Role        models.Role `json:"role" binding:"required"`
}

// RegisterRequest carries a new account row.
type RegisterRequest struct {
	Institution string      `json:"institution" binding:"required"`
	Username    string      `json:"username" binding:"required"`
	Password    string      `json:"password" binding:"required"`
	Role        models.Role `json:"role" binding:"required"`
}

// LoginResponse returns the bearer token and the session it encodes.
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresIn int            `json:"expiresIn"`
	Session   models.Session `json:"session"`
}
