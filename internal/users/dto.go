package users

import (
	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

// UserDTO is the transport shape that omits the credential hash.
type UserDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name         string
	Email        string
	Address      string
	Role         enums.Role
	PasswordHash string
}

// ListFilter carries the admin listing filters. Free-text fields match as
// case-insensitive substrings; Role matches exactly (case-insensitive).
type ListFilter struct {
	Name    string
	Email   string
	Address string
	Role    string
	SortBy  string
	Order   string
	Page    pagination.Params
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Role:    string(u.Role),
	}
}

func FromModels(rows []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Name:         c.Name,
		Email:        c.Email,
		Address:      c.Address,
		Role:         c.Role,
		PasswordHash: c.PasswordHash,
	}
}
