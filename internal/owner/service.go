package owner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/internal/ratings"
	"github.com/worldofMayur/Roxiler-assessment/internal/stores"
	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

const (
	storeNameMessage    = "Store name must be at least 3 characters."
	storeMissingMessage = "Store not found."
	notYoursMessage     = "You do not own this store."
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the owner surface: dashboards, summaries, raters, and
// management of the caller's own stores.
type Service interface {
	Dashboard(ctx context.Context, ownerID int64) (*DashboardDTO, error)
	Stores(ctx context.Context, ownerID int64, params pagination.Params) (*SummaryListDTO, error)
	Raters(ctx context.Context, ownerID, storeID int64) (*RatersDTO, error)
	CreateStore(ctx context.Context, ownerID int64, input StoreInput) (*stores.StoreDTO, error)
	UpdateStore(ctx context.Context, ownerID, storeID int64, input StoreInput) (*stores.StoreDTO, error)
	DeleteStore(ctx context.Context, ownerID, storeID int64) error
}

type service struct {
	tx          txRunner
	storesRepo  *stores.Repository
	ratingsRepo *ratings.Repository
}

// NewService builds an owner service over the entity repositories.
func NewService(tx txRunner, storesRepo *stores.Repository, ratingsRepo *ratings.Repository) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if storesRepo == nil || ratingsRepo == nil {
		return nil, fmt.Errorf("all repositories required")
	}
	return &service{tx: tx, storesRepo: storesRepo, ratingsRepo: ratingsRepo}, nil
}

func (s *service) Dashboard(ctx context.Context, ownerID int64) (*DashboardDTO, error) {
	totalStores, err := s.storesRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count stores")
	}
	totalRatings, avg, err := s.ratingsRepo.OwnerTotals(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "owner totals")
	}
	return &DashboardDTO{
		TotalStores:   totalStores,
		TotalRatings:  totalRatings,
		AverageRating: ratings.RoundAverage(avg),
	}, nil
}

func (s *service) Stores(ctx context.Context, ownerID int64, params pagination.Params) (*SummaryListDTO, error) {
	rows, page, err := s.storesRepo.OwnerSummaries(ctx, ownerID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list owned stores")
	}
	items := make([]stores.OwnerSummaryDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, stores.OwnerSummaryDTO{
			ID:            row.ID,
			Name:          row.Name,
			Address:       row.Address,
			RatingsCount:  row.RatingsCount,
			AverageRating: ratings.RoundAverage(row.AverageRating),
		})
	}
	return &SummaryListDTO{Items: items, Page: page}, nil
}

func (s *service) Raters(ctx context.Context, ownerID, storeID int64) (*RatersDTO, error) {
	store, err := s.loadOwnedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	avg, err := s.ratingsRepo.AverageForStore(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "compute average")
	}
	raters, err := s.ratingsRepo.RatersForStore(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list raters")
	}

	return &RatersDTO{
		Store: StoreRefDTO{
			ID:      store.ID,
			Name:    store.Name,
			Address: store.Address,
		},
		AverageRating: ratings.RoundAverage(avg),
		Raters:        raters,
	}, nil
}

func (s *service) CreateStore(ctx context.Context, ownerID int64, input StoreInput) (*stores.StoreDTO, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < 3 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, storeNameMessage)
	}

	store, err := s.storesRepo.Create(ctx, stores.CreateStoreDTO{
		Name:    name,
		Email:   strings.TrimSpace(input.Email),
		Address: strings.TrimSpace(input.Address),
		OwnerID: &ownerID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create store")
	}
	return stores.FromModel(store), nil
}

func (s *service) UpdateStore(ctx context.Context, ownerID, storeID int64, input StoreInput) (*stores.StoreDTO, error) {
	store, err := s.loadOwnedStore(ctx, ownerID, storeID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if len(name) < 3 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, storeNameMessage)
	}

	store.Name = name
	store.Email = strings.TrimSpace(input.Email)
	store.Address = strings.TrimSpace(input.Address)

	if err := s.storesRepo.Update(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update store")
	}
	return stores.FromModel(store), nil
}

// DeleteStore removes an owned store and its ratings in one transaction.
func (s *service) DeleteStore(ctx context.Context, ownerID, storeID int64) error {
	if _, err := s.loadOwnedStore(ctx, ownerID, storeID); err != nil {
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

// loadOwnedStore distinguishes an unknown store (404) from one owned by
// someone else (403).
func (s *service) loadOwnedStore(ctx context.Context, ownerID, storeID int64) (*models.Store, error) {
	store, err := s.storesRepo.FindByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, storeMissingMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}
	if store.OwnerID == nil || *store.OwnerID != ownerID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, notYoursMessage)
	}
	return store, nil
}
