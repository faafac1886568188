package ratings

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
)

// Repository exposes rating persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a ratings repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a copy of the repo bound to the supplied transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Upsert writes the user's rating for a store. The conflict target is the
// (user_id, store_id) unique index so a resubmission overwrites the value and
// refreshes updated_at atomically.
func (r *Repository) Upsert(ctx context.Context, userID, storeID int64, rating int) error {
	row := models.Rating{
		UserID:  userID,
		StoreID: storeID,
		Rating:  rating,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"rating":     rating,
			"updated_at": time.Now().UTC(),
		}),
	}).Create(&row).Error
}

// AverageForStore computes the raw average over a store's rating rows. Zero
// rows yield the 0 sentinel, never NULL.
func (r *Repository) AverageForStore(ctx context.Context, storeID int64) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("store_id = ?", storeID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

// UserRatingForStore returns the caller's rating for a store, or nil when
// they have not rated it.
func (r *Repository) UserRatingForStore(ctx context.Context, userID, storeID int64) (*int, error) {
	var row models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.Rating, nil
}

// RatersForStore lists every rating on a store joined with the rater's
// public identity, newest update first.
func (r *Repository) RatersForStore(ctx context.Context, storeID int64) ([]RaterDTO, error) {
	var rows []RaterDTO
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("ratings.user_id AS user_id, users.name AS name, users.email AS email, ratings.rating AS rating, ratings.created_at AS created_at, ratings.updated_at AS updated_at").
		Joins("JOIN users ON users.id = ratings.user_id").
		Where("ratings.store_id = ?", storeID).
		Order("ratings.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the total number of rating rows.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).Count(&total).Error
	return total, err
}

// CountForStore returns the number of ratings on one store.
func (r *Repository) CountForStore(ctx context.Context, storeID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Where("store_id = ?", storeID).
		Count(&total).Error
	return total, err
}

// OwnerTotals aggregates the rating count and raw average across every store
// owned by the given user.
func (r *Repository) OwnerTotals(ctx context.Context, ownerID int64) (int64, float64, error) {
	var out struct {
		Total   int64
		Average float64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COUNT(ratings.id) AS total, COALESCE(AVG(ratings.rating), 0) AS average").
		Joins("JOIN stores ON stores.id = ratings.store_id").
		Where("stores.owner_id = ?", ownerID).
		Scan(&out).Error
	return out.Total, out.Average, err
}

// DeleteByStore removes every rating on a store.
func (r *Repository) DeleteByStore(ctx context.Context, storeID int64) error {
	return r.db.WithContext(ctx).Delete(&models.Rating{}, "store_id = ?", storeID).Error
}

// DeleteByUser removes every rating a user has submitted.
func (r *Repository) DeleteByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Delete(&models.Rating{}, "user_id = ?", userID).Error
}
