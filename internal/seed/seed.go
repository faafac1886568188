package seed

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/internal/users"
	"github.com/worldofMayur/Roxiler-assessment/pkg/config"
	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
	"github.com/worldofMayur/Roxiler-assessment/pkg/logger"
	"github.com/worldofMayur/Roxiler-assessment/pkg/security"
)

type usersRepository interface {
	FindByEmail(ctx context.Context, email string) (*users.UserDTO, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*users.UserDTO, error)
}

// repoAdapter narrows *users.Repository to the DTO surface seeding needs.
type repoAdapter struct {
	repo *users.Repository
}

func (a repoAdapter) FindByEmail(ctx context.Context, email string) (*users.UserDTO, error) {
	user, err := a.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return users.FromModel(user), nil
}

func (a repoAdapter) Create(ctx context.Context, dto users.CreateUserDTO) (*users.UserDTO, error) {
	user, err := a.repo.Create(ctx, dto)
	if err != nil {
		return nil, err
	}
	return users.FromModel(user), nil
}

// Run bootstraps the platform admin and the demo owner. Each account is
// inserted only when its email is absent, so repeated runs are no-ops.
func Run(ctx context.Context, repo *users.Repository, cfg config.SeedConfig, passwordCfg config.PasswordConfig, logg *logger.Logger) error {
	return run(ctx, repoAdapter{repo: repo}, cfg, passwordCfg, logg)
}

func run(ctx context.Context, repo usersRepository, cfg config.SeedConfig, passwordCfg config.PasswordConfig, logg *logger.Logger) error {
	accounts := []struct {
		name     string
		email    string
		address  string
		password string
		role     enums.Role
	}{
		{cfg.AdminName, cfg.AdminEmail, cfg.AdminAddress, cfg.AdminPassword, enums.RoleAdmin},
		{cfg.OwnerName, cfg.OwnerEmail, cfg.OwnerAddress, cfg.OwnerPassword, enums.RoleOwner},
	}

	for _, account := range accounts {
		created, err := ensureAccount(ctx, repo, account.name, account.email, account.address, account.password, account.role, passwordCfg)
		if err != nil {
			return fmt.Errorf("seeding %s: %w", account.role, err)
		}
		if logg != nil {
			fields := map[string]any{"email": account.email, "role": string(account.role), "created": created}
			logg.Info(logg.WithFields(ctx, fields), "seed.account")
		}
	}
	return nil
}

func ensureAccount(ctx context.Context, repo usersRepository, name, email, address, password string, role enums.Role, passwordCfg config.PasswordConfig) (bool, error) {
	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := security.HashPassword(password, passwordCfg)
	if err != nil {
		return false, err
	}

	if _, err := repo.Create(ctx, users.CreateUserDTO{
		Name:         name,
		Email:        email,
		Address:      address,
		Role:         role,
		PasswordHash: hash,
	}); err != nil {
		return false, err
	}
	return true, nil
}
