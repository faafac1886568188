package ratings

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{}))
	return conn
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Rater " + email,
		Email:        email,
		Role:         enums.RoleUser,
		PasswordHash: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedStore(t *testing.T, db *gorm.DB, name string, ownerID *int64) *models.Store {
	t.Helper()
	store := &models.Store{Name: name, OwnerID: ownerID}
	require.NoError(t, db.Create(store).Error)
	return store
}

func TestUpsertOverwritesExistingRating(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	user := seedUser(t, db, "rater@example.com")
	store := seedStore(t, db, "Corner Shop", nil)

	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, user.ID, store.ID, 2))

	var first models.Rating
	require.NoError(t, db.First(&first, "user_id = ? AND store_id = ?", user.ID, store.ID).Error)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Upsert(ctx, user.ID, store.ID, 5))

	var count int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "resubmission must not create a second row")

	var second models.Rating
	require.NoError(t, db.First(&second, "user_id = ? AND store_id = ?", user.ID, store.ID).Error)
	assert.Equal(t, 5, second.Rating)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt), "updated_at should advance on resubmission")
}

func TestAverageForStoreZeroSentinel(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	store := seedStore(t, db, "Empty Shop", nil)

	avg, err := repo.AverageForStore(context.Background(), store.ID)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestAverageForStoreComputesMean(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	store := seedStore(t, db, "Busy Shop", nil)
	a := seedUser(t, db, "a@example.com")
	b := seedUser(t, db, "b@example.com")

	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, a.ID, store.ID, 4))
	require.NoError(t, repo.Upsert(ctx, b.ID, store.ID, 5))

	avg, err := repo.AverageForStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)
}

func TestUserRatingForStoreNullSentinel(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	user := seedUser(t, db, "quiet@example.com")
	store := seedStore(t, db, "Unrated Shop", nil)

	value, err := repo.UserRatingForStore(context.Background(), user.ID, store.ID)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestRatersForStoreJoinsUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	user := seedUser(t, db, "joined@example.com")
	store := seedStore(t, db, "Joined Shop", nil)

	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, user.ID, store.ID, 3))

	raters, err := repo.RatersForStore(ctx, store.ID)
	require.NoError(t, err)
	require.Len(t, raters, 1)
	assert.Equal(t, "joined@example.com", raters[0].Email)
	assert.Equal(t, 3, raters[0].Rating)
}

func TestOwnerTotals(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	owner := seedUser(t, db, "owner@example.com")
	mine := seedStore(t, db, "Mine", &owner.ID)
	other := seedStore(t, db, "Other", nil)
	a := seedUser(t, db, "x@example.com")
	b := seedUser(t, db, "y@example.com")

	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, a.ID, mine.ID, 2))
	require.NoError(t, repo.Upsert(ctx, b.ID, mine.ID, 4))
	require.NoError(t, repo.Upsert(ctx, a.ID, other.ID, 5))

	total, avg, err := repo.OwnerTotals(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total, "ratings on other stores must not count")
	assert.Equal(t, float64(3), avg)
}

func TestDeleteByStore(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	user := seedUser(t, db, "del@example.com")
	store := seedStore(t, db, "Doomed Shop", nil)

	ctx := context.Background()
	require.NoError(t, repo.Upsert(ctx, user.ID, store.ID, 1))
	require.NoError(t, repo.DeleteByStore(ctx, store.ID))

	count, err := repo.CountForStore(ctx, store.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
