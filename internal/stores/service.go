package stores

import (
	"context"
	"fmt"

	"github.com/worldofMayur/Roxiler-assessment/internal/ratings"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

type storeLister interface {
	ListWithRatings(ctx context.Context, filter ListFilter, viewerID *int64) ([]ratedRow, pagination.Page, error)
}

// ListResultDTO is one page of stores for a browsing user.
type ListResultDTO struct {
	Items []StoreWithRatingDTO `json:"items"`
	pagination.Page
}

// Service exposes the user-facing store listing.
type Service interface {
	ListForUser(ctx context.Context, viewerID int64, filter ListFilter) (*ListResultDTO, error)
}

type service struct {
	repo storeLister
}

// NewService builds a stores service with the provided repository.
func NewService(repo storeLister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stores repository required")
	}
	return &service{repo: repo}, nil
}

// ListForUser returns the filtered store page with each row's overall
// average and the viewer's own rating.
func (s *service) ListForUser(ctx context.Context, viewerID int64, filter ListFilter) (*ListResultDTO, error) {
	rows, page, err := s.repo.ListWithRatings(ctx, filter, &viewerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stores")
	}

	items := make([]StoreWithRatingDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, StoreWithRatingDTO{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			Address:       row.Address,
			OverallRating: ratings.RoundAverage(row.AverageRating),
			UserRating:    row.UserRating,
		})
	}

	return &ListResultDTO{Items: items, Page: page}, nil
}
