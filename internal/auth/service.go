package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/internal/users"
	pkgauth "github.com/worldofMayur/Roxiler-assessment/pkg/auth"
	"github.com/worldofMayur/Roxiler-assessment/pkg/config"
	"github.com/worldofMayur/Roxiler-assessment/pkg/db"
	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/security"
)

const (
	nameMessage       = "Name must be between 20 and 60 characters."
	addressMessage    = "Address must be at most 400 characters."
	emailMessage      = "Email is required."
	passwordMessage   = "Password must be 8-16 chars and include at least one uppercase letter and one special character."
	duplicateMessage  = "Email already in use."
	credentialMessage = "Invalid email or password."
)

const passwordSpecials = "!@#$%^&*"

type usersRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service exposes signup and login.
type Service interface {
	Signup(ctx context.Context, input SignupInput) (*SignupResultDTO, error)
	Login(ctx context.Context, input LoginInput) (*LoginResultDTO, error)
}

type service struct {
	users       usersRepository
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// NewService builds an auth service with the provided users repository.
func NewService(usersRepo usersRepository, jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig) (Service, error) {
	if usersRepo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	return &service{
		users:       usersRepo,
		jwtCfg:      jwtCfg,
		passwordCfg: passwordCfg,
	}, nil
}

// Signup validates the registration fields in order, short-circuiting on the
// first failure, then persists the account with the USER role.
func (s *service) Signup(ctx context.Context, input SignupInput) (*SignupResultDTO, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < 20 || len(name) > 60 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, nameMessage)
	}

	address := strings.TrimSpace(input.Address)
	if len(address) > 400 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, addressMessage)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, emailMessage)
	}

	if !validPassword(input.Password) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, passwordMessage)
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{
		Name:         name,
		Email:        email,
		Address:      address,
		Role:         enums.RoleUser,
		PasswordHash: hash,
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, duplicateMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	return users.FromModel(user), nil
}

// Login exchanges credentials for a signed token. Unknown emails and wrong
// passwords produce the identical message so accounts cannot be enumerated.
func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Email and password are required.")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, credentialMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	ok, err := security.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, credentialMessage)
	}

	token, err := pkgauth.MintAccessToken(s.jwtCfg, time.Now(), pkgauth.AccessTokenPayload{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	return &LoginResultDTO{
		Token: token,
		User: LoginUserDTO{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}

// validPassword enforces 8-16 chars with at least one uppercase letter and
// one of !@#$%^&*.
func validPassword(password string) bool {
	if len(password) < 8 || len(password) > 16 {
		return false
	}
	var hasUpper, hasSpecial bool
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case strings.ContainsRune(passwordSpecials, c):
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}
