package auth

import "github.com/worldofMayur/Roxiler-assessment/internal/users"

// SignupInput is the payload for account creation.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// LoginInput is the payload for credential exchange.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResultDTO carries the minted token plus the sanitized user.
type LoginResultDTO struct {
	Token string       `json:"token"`
	User  LoginUserDTO `json:"user"`
}

// LoginUserDTO is the sanitized identity returned on login.
type LoginUserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SignupResultDTO is the public shape of a freshly created account.
type SignupResultDTO = users.UserDTO
