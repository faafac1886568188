package admin

import (
	"github.com/worldofMayur/Roxiler-assessment/internal/stores"
	"github.com/worldofMayur/Roxiler-assessment/internal/users"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

// DashboardDTO aggregates the platform-wide counts.
type DashboardDTO struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// UserListDTO is one page of the admin user listing.
type UserListDTO struct {
	Items []users.UserDTO `json:"items"`
	pagination.Page
}

// StoreListDTO is one page of the admin store listing.
type StoreListDTO struct {
	Items []stores.AdminStoreDTO `json:"items"`
	pagination.Page
}

// StoreInput captures the admin create/update store payload. OwnerEmail,
// when present, must resolve to an existing OWNER account.
type StoreInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	OwnerEmail string `json:"ownerEmail"`
}
