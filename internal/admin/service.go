package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/internal/ratings"
	"github.com/worldofMayur/Roxiler-assessment/internal/stores"
	"github.com/worldofMayur/Roxiler-assessment/internal/users"
	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
)

const (
	storeNameMessage    = "Store name must be at least 3 characters."
	notAnOwnerMessage   = "Selected user is not a store owner."
	storeMissingMessage = "Store not found."
	userMissingMessage  = "User not found."
	adminDeleteMessage  = "Admin accounts cannot be deleted."
	selfDeleteMessage   = "You cannot delete your own account."
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the admin management surface.
type Service interface {
	Dashboard(ctx context.Context) (*DashboardDTO, error)
	ListUsers(ctx context.Context, filter users.ListFilter) (*UserListDTO, error)
	ListStores(ctx context.Context, filter stores.ListFilter) (*StoreListDTO, error)
	CreateStore(ctx context.Context, input StoreInput) (*stores.StoreDTO, error)
	UpdateStore(ctx context.Context, storeID int64, input StoreInput) (*stores.StoreDTO, error)
	DeleteStore(ctx context.Context, storeID int64) error
	DeleteUser(ctx context.Context, actorID, userID int64) error
}

type service struct {
	tx          txRunner
	usersRepo   *users.Repository
	storesRepo  *stores.Repository
	ratingsRepo *ratings.Repository
}

// NewService builds an admin service over the entity repositories. The tx
// runner serializes the cascade deletes.
func NewService(tx txRunner, usersRepo *users.Repository, storesRepo *stores.Repository, ratingsRepo *ratings.Repository) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if usersRepo == nil || storesRepo == nil || ratingsRepo == nil {
		return nil, fmt.Errorf("all repositories required")
	}
	return &service{
		tx:          tx,
		usersRepo:   usersRepo,
		storesRepo:  storesRepo,
		ratingsRepo: ratingsRepo,
	}, nil
}

func (s *service) Dashboard(ctx context.Context) (*DashboardDTO, error) {
	totalUsers, err := s.usersRepo.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count users")
	}
	totalStores, err := s.storesRepo.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count stores")
	}
	totalRatings, err := s.ratingsRepo.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count ratings")
	}
	return &DashboardDTO{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

func (s *service) ListUsers(ctx context.Context, filter users.ListFilter) (*UserListDTO, error) {
	rows, page, err := s.usersRepo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list users")
	}
	return &UserListDTO{Items: users.FromModels(rows), Page: page}, nil
}

func (s *service) ListStores(ctx context.Context, filter stores.ListFilter) (*StoreListDTO, error) {
	rows, page, err := s.storesRepo.ListWithRatings(ctx, filter, nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stores")
	}
	items := make([]stores.AdminStoreDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, stores.AdminStoreDTO{
			ID:      row.ID,
			Name:    row.Name,
			Email:   row.Email,
			Address: row.Address,
			Rating:  ratings.RoundAverage(row.AverageRating),
		})
	}
	return &StoreListDTO{Items: items, Page: page}, nil
}

func (s *service) CreateStore(ctx context.Context, input StoreInput) (*stores.StoreDTO, error) {
	name, ownerID, err := s.validateStoreInput(ctx, input)
	if err != nil {
		return nil, err
	}

	store, err := s.storesRepo.Create(ctx, stores.CreateStoreDTO{
		Name:    name,
		Email:   strings.TrimSpace(input.Email),
		Address: strings.TrimSpace(input.Address),
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create store")
	}
	return stores.FromModel(store), nil
}

func (s *service) UpdateStore(ctx context.Context, storeID int64, input StoreInput) (*stores.StoreDTO, error) {
	store, err := s.loadStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	name, ownerID, err := s.validateStoreInput(ctx, input)
	if err != nil {
		return nil, err
	}

	store.Name = name
	store.Email = strings.TrimSpace(input.Email)
	store.Address = strings.TrimSpace(input.Address)
	store.OwnerID = ownerID

	if err := s.storesRepo.Update(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update store")
	}
	return stores.FromModel(store), nil
}

// DeleteStore removes the store and its ratings in one transaction so a
// crash cannot leave orphaned rating rows behind.
func (s *service) DeleteStore(ctx context.Context, storeID int64) error {
	if _, err := s.loadStore(ctx, storeID); err != nil {
		return err
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.ratingsRepo.WithTx(tx).DeleteByStore(ctx, storeID); err != nil {
			return err
		}
		return s.storesRepo.WithTx(tx).Delete(ctx, storeID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete store")
	}
	return nil
}

// DeleteUser removes an account along with its ratings and detaches any
// stores it owned. Admin accounts and the acting admin are protected here,
// not just in the client.
func (s *service) DeleteUser(ctx context.Context, actorID, userID int64) error {
	target, err := s.usersRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, userMissingMessage)
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	if target.Role == enums.RoleAdmin {
		return pkgerrors.New(pkgerrors.CodeValidation, adminDeleteMessage)
	}
	if target.ID == actorID {
		return pkgerrors.New(pkgerrors.CodeValidation, selfDeleteMessage)
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.ratingsRepo.WithTx(tx).DeleteByUser(ctx, userID); err != nil {
			return err
		}
		if err := s.storesRepo.WithTx(tx).NullifyOwner(ctx, userID); err != nil {
			return err
		}
		return s.usersRepo.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	return nil
}

func (s *service) loadStore(ctx context.Context, storeID int64) (*models.Store, error) {
	store, err := s.storesRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, storeMissingMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}
	return store, nil
}

// validateStoreInput checks the shared create/update rules and resolves the
// optional owner email to an OWNER account's id.
func (s *service) validateStoreInput(ctx context.Context, input StoreInput) (string, *int64, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < 3 {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, storeNameMessage)
	}

	ownerEmail := strings.TrimSpace(input.OwnerEmail)
	if ownerEmail == "" {
		return name, nil, nil
	}

	owner, err := s.usersRepo.FindByEmail(ctx, ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, pkgerrors.New(pkgerrors.CodeValidation, notAnOwnerMessage)
		}
		return "", nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve owner")
	}
	if owner.Role != enums.RoleOwner {
		return "", nil, pkgerrors.New(pkgerrors.CodeValidation, notAnOwnerMessage)
	}
	return name, &owner.ID, nil
}
