package ratings

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
)

const invalidRatingMessage = "Rating must be an integer between 1 and 5."

type ratingsRepository interface {
	Upsert(ctx context.Context, userID, storeID int64, rating int) error
	AverageForStore(ctx context.Context, storeID int64) (float64, error)
}

type storeFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Store, error)
}

// Service exposes rating submission.
type Service interface {
	Submit(ctx context.Context, userID, storeID int64, rating *float64) (*SubmitResultDTO, error)
}

type service struct {
	repo   ratingsRepository
	stores storeFinder
}

// NewService builds a ratings service with the provided repositories.
func NewService(repo ratingsRepository, stores storeFinder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("ratings repository required")
	}
	if stores == nil {
		return nil, fmt.Errorf("stores repository required")
	}
	return &service{repo: repo, stores: stores}, nil
}

// Submit validates and upserts one user's score for a store, then returns
// the recomputed overall average.
func (s *service) Submit(ctx context.Context, userID, storeID int64, rating *float64) (*SubmitResultDTO, error) {
	if rating == nil || *rating != float64(int(*rating)) || *rating < 1 || *rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, invalidRatingMessage)
	}
	value := int(*rating)

	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Store not found.")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}

	if err := s.repo.Upsert(ctx, userID, storeID, value); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save rating")
	}

	avg, err := s.repo.AverageForStore(ctx, storeID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "compute average")
	}

	return &SubmitResultDTO{
		Message:       "Rating saved.",
		Rating:        value,
		StoreID:       storeID,
		OverallRating: RoundAverage(avg),
	}, nil
}
