package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload carried by every authenticated request.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
