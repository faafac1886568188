package models

import "time"

// Rating holds one user's score for one store. The composite unique index is
// what the submission upsert conflicts on, so concurrent submissions for the
// same pair collapse to a single row.
type Rating struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_ratings_user_store"`
	StoreID   int64     `gorm:"column:store_id;not null;uniqueIndex:idx_ratings_user_store"`
	Rating    int       `gorm:"column:rating;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
