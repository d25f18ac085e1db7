package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims carries the application claims embedded in issued JWTs.
// UserID is the canonical identity; Email is informational only and
// must not be used for lookups after authentication.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}
