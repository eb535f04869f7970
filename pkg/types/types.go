package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload attached to authenticated requests.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	Verified bool   `json:"verified"`
	jwt.RegisteredClaims
}
