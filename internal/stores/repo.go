package stores

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

const (
	avgSubselect   = "(SELECT COALESCE(AVG(r.rating), 0) FROM ratings r WHERE r.store_id = stores.id)"
	countSubselect = "(SELECT COUNT(r.id) FROM ratings r WHERE r.store_id = stores.id)"
)

// sortColumns is the allow-list for store sorting. Unknown fields fall back
// to name. The rating column sorts numerically on the computed average.
var sortColumns = map[string]string{
	"name":    "LOWER(stores.name)",
	"email":   "LOWER(stores.email)",
	"address": "LOWER(stores.address)",
	"rating":  "average_rating",
}

// Repository exposes store persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a stores repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a copy of the repo bound to the supplied transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new store and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateStoreDTO) (*models.Store, error) {
	store := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		return nil, err
	}
	return store, nil
}

// FindByID loads a store by id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Update persists the mutable store fields.
func (r *Repository) Update(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":     store.Name,
			"email":    store.Email,
			"address":  store.Address,
			"owner_id": store.OwnerID,
		}).Error
}

// Delete removes the store row.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Store{}, "id = ?", id).Error
}

// Count returns the total number of stores.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Store{}).Count(&total).Error
	return total, err
}

// CountByOwner returns how many stores a user owns.
func (r *Repository) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error
	return total, err
}

// NullifyOwner detaches every store owned by the given user.
func (r *Repository) NullifyOwner(ctx context.Context, ownerID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("owner_id = ?", ownerID).
		Update("owner_id", nil).Error
}

// ListWithRatings returns one filtered, sorted page of stores with the
// average rating computed per row. When viewerID is set, each row also
// carries that user's own rating (null sentinel).
func (r *Repository) ListWithRatings(ctx context.Context, filter ListFilter, viewerID *int64) ([]ratedRow, pagination.Page, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}

	page := pagination.Resolve(filter.Page, total)

	selects := "stores.id, stores.name, stores.email, stores.address, stores.owner_id, " + avgSubselect + " AS average_rating"
	args := []any{}
	if viewerID != nil {
		selects += ", (SELECT ur.rating FROM ratings ur WHERE ur.store_id = stores.id AND ur.user_id = ?) AS user_rating"
		args = append(args, *viewerID)
	}

	var rows []ratedRow
	err := r.filtered(ctx, filter).
		Select(selects, args...).
		Order(orderClause(filter.SortBy, filter.Order)).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return rows, page, nil
}

// OwnerSummaries returns one page of the user's stores with rating counts
// and averages.
func (r *Repository) OwnerSummaries(ctx context.Context, ownerID int64, params pagination.Params) ([]ratedRow, pagination.Page, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}

	page := pagination.Resolve(params, total)

	var rows []ratedRow
	err := r.db.WithContext(ctx).
		Model(&models.Store{}).
		Where("owner_id = ?", ownerID).
		Select("stores.id, stores.name, stores.address, " + countSubselect + " AS ratings_count, " + avgSubselect + " AS average_rating").
		Order("LOWER(stores.name) ASC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Scan(&rows).Error
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return rows, page, nil
}

func (r *Repository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Store{})
	if v := strings.TrimSpace(filter.Name); v != "" {
		query = query.Where("LOWER(stores.name) LIKE ?", substring(v))
	}
	if v := strings.TrimSpace(filter.Email); v != "" {
		query = query.Where("LOWER(stores.email) LIKE ?", substring(v))
	}
	if v := strings.TrimSpace(filter.Address); v != "" {
		query = query.Where("LOWER(stores.address) LIKE ?", substring(v))
	}
	return query
}

func substring(value string) string {
	return "%" + strings.ToLower(value) + "%"
}

func orderClause(sortBy, order string) string {
	column, ok := sortColumns[strings.ToLower(strings.TrimSpace(sortBy))]
	if !ok {
		column = sortColumns["name"]
	}
	direction := "ASC"
	if strings.EqualFold(strings.TrimSpace(order), "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}
