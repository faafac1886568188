package stores

import (
	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

// StoreDTO is the plain transport shape for a store row.
type StoreDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID *int64 `json:"ownerId,omitempty"`
}

// StoreWithRatingDTO is a store row as shown to a browsing user: the overall
// average carries a 0 sentinel, the viewer's own rating a null sentinel.
type StoreWithRatingDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	OverallRating float64 `json:"overallRating"`
	UserRating    *int    `json:"userRating"`
}

// AdminStoreDTO is a store row in the admin listing.
type AdminStoreDTO struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address string  `json:"address"`
	Rating  float64 `json:"rating"`
}

// OwnerSummaryDTO is one owned store with its rating aggregates.
type OwnerSummaryDTO struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	RatingsCount  int64   `json:"ratingsCount"`
	AverageRating float64 `json:"averageRating"`
}

// CreateStoreDTO holds the data required to persist a new store.
type CreateStoreDTO struct {
	Name    string
	Email   string
	Address string
	OwnerID *int64
}

// ListFilter carries store listing filters. Free-text fields match as
// case-insensitive substrings.
type ListFilter struct {
	Name    string
	Email   string
	Address string
	SortBy  string
	Order   string
	Page    pagination.Params
}

// ratedRow is the scan target for listing queries with rating subselects.
type ratedRow struct {
	ID            int64
	Name          string
	Email         string
	Address       string
	OwnerID       *int64
	AverageRating float64
	UserRating    *int
	RatingsCount  int64
}

func FromModel(s *models.Store) *StoreDTO {
	if s == nil {
		return nil
	}
	return &StoreDTO{
		ID:      s.ID,
		Name:    s.Name,
		Email:   s.Email,
		Address: s.Address,
		OwnerID: s.OwnerID,
	}
}

func (c CreateStoreDTO) ToModel() *models.Store {
	return &models.Store{
		Name:    c.Name,
		Email:   c.Email,
		Address: c.Address,
		OwnerID: c.OwnerID,
	}
}
