package users

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

// sortColumns is the allow-list for admin user sorting. Unknown fields fall
// back to name.
var sortColumns = map[string]string{
	"name":    "LOWER(name)",
	"email":   "LOWER(email)",
	"address": "LOWER(address)",
	"role":    "LOWER(role)",
}

// Repository exposes user persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a copy of the repo bound to the supplied transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new user and returns the persisted model. Emails are
// lowercased before the write so the unique index catches duplicates in any
// casing.
func (r *Repository) Create(ctx context.Context, dto CreateUserDTO) (*models.User, error) {
	user := dto.ToModel()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// FindByEmail retrieves the user matching the provided email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("email = ?", normalized).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID loads a user by id.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user row.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

// Count returns the total number of users.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, err
}

// List returns one filtered, sorted page of users plus the resolved page.
func (r *Repository) List(ctx context.Context, filter ListFilter) ([]models.User, pagination.Page, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}

	page := pagination.Resolve(filter.Page, total)

	var rows []models.User
	err := r.filtered(ctx, filter).
		Order(orderClause(filter.SortBy, filter.Order)).
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&rows).Error
	if err != nil {
		return nil, pagination.Page{}, err
	}
	return rows, page, nil
}

func (r *Repository) filtered(ctx context.Context, filter ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.User{})
	if v := strings.TrimSpace(filter.Name); v != "" {
		query = query.Where("LOWER(name) LIKE ?", substring(v))
	}
	if v := strings.TrimSpace(filter.Email); v != "" {
		query = query.Where("LOWER(email) LIKE ?", substring(v))
	}
	if v := strings.TrimSpace(filter.Address); v != "" {
		query = query.Where("LOWER(address) LIKE ?", substring(v))
	}
	if v := strings.TrimSpace(filter.Role); v != "" {
		query = query.Where("LOWER(role) = ?", strings.ToLower(v))
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
