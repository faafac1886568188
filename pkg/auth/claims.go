package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID int64
	Role   enums.Role
	Email  string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID int64      `json:"id"`
	Role   enums.Role `json:"role"`
	Email  string     `json:"email"`
	jwt.RegisteredClaims
}
