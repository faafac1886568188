package models

import "time"

// Store represents a ratable storefront. OwnerID is a weak reference to a
// User with role OWNER; it is validated at assignment time only.
type Store struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Email     string    `gorm:"column:email"`
	Address   string    `gorm:"column:address"`
	OwnerID   *int64    `gorm:"column:owner_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
