package model

import (
	"github.com/google/uuid"
)

// TokenClaims is the decoded identity carried by a validated JWT.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
