package types

import "github.com/golang-jwt/jwt/v5"

// Claims carried by admin session tokens.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
