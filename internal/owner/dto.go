package owner

import (
	"github.com/worldofMayur/Roxiler-assessment/internal/ratings"
	"github.com/worldofMayur/Roxiler-assessment/internal/stores"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

// DashboardDTO aggregates the caller's owned-store totals.
type DashboardDTO struct {
	TotalStores   int64   `json:"totalStores"`
	TotalRatings  int64   `json:"totalRatings"`
	AverageRating float64 `json:"averageRating"`
}

// SummaryListDTO is one page of the caller's stores with aggregates.
type SummaryListDTO struct {
	Items []stores.OwnerSummaryDTO `json:"items"`
	pagination.Page
}

// StoreRefDTO is the store header on the raters view.
type StoreRefDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RatersDTO is the full raters view for one owned store.
type RatersDTO struct {
	Store         StoreRefDTO        `json:"store"`
	AverageRating float64            `json:"averageRating"`
	Raters        []ratings.RaterDTO `json:"raters"`
}

// StoreInput captures the owner create/update store payload.
type StoreInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
