package users

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func seedUser(t *testing.T, repo *Repository, name, email, address string, role enums.Role) *models.User {
	t.Helper()
	user, err := repo.Create(context.Background(), CreateUserDTO{
		Name:         name,
		Email:        email,
		Address:      address,
		Role:         role,
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func TestCreateLowercasesEmail(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	user := seedUser(t, repo, "Alexandria Hamilton Worthington", "MiXeD@Example.COM", "12 Main St", enums.RoleUser)

	if user.Email != "mixed@example.com" {
		t.Fatalf("expected lowercased email, got %q", user.Email)
	}

	found, err := repo.FindByEmail(context.Background(), "MIXED@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected id %d got %d", user.ID, found.ID)
	}
}

func TestCreateDuplicateEmailFails(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedUser(t, repo, "Alexandria Hamilton Worthington", "dup@example.com", "", enums.RoleUser)

	_, err := repo.Create(context.Background(), CreateUserDTO{
		Name:         "Benjamin Fitzgerald Abernathy",
		Email:        "DUP@example.com",
		Role:         enums.RoleUser,
		PasswordHash: "hash",
	})
	if err == nil {
		t.Fatal("expected unique violation")
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedUser(t, repo, "Alexandria Hamilton Worthington", "alex@example.com", "North Street 1", enums.RoleUser)
	seedUser(t, repo, "Benjamin Fitzgerald Abernathy", "ben@example.com", "South Street 2", enums.RoleOwner)
	seedUser(t, repo, "Christopher Montgomery Blake", "chris@example.com", "North Avenue 3", enums.RoleAdmin)

	rows, page, err := repo.List(context.Background(), ListFilter{
		Address: "NORTH",
		SortBy:  "name",
		Order:   "desc",
		Page:    pagination.Params{Page: 1, PageSize: 10},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("expected total 2 got %d", page.Total)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows got %d", len(rows))
	}
	if rows[0].Name != "Christopher Montgomery Blake" {
		t.Fatalf("expected desc name sort, got %q first", rows[0].Name)
	}
}

func TestListRoleFilterIsExact(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedUser(t, repo, "Alexandria Hamilton Worthington", "alex@example.com", "", enums.RoleUser)
	seedUser(t, repo, "Benjamin Fitzgerald Abernathy", "ben@example.com", "", enums.RoleOwner)

	rows, _, err := repo.List(context.Background(), ListFilter{
		Role: "owner",
		Page: pagination.Params{Page: 1, PageSize: 10},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 || rows[0].Role != enums.RoleOwner {
		t.Fatalf("expected only the owner row, got %d rows", len(rows))
	}
}

func TestListClampsPageOverflow(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	for i := 0; i < 3; i++ {
		seedUser(t, repo, fmt.Sprintf("Alexandria Hamilton Worthing%02d", i), fmt.Sprintf("u%d@example.com", i), "", enums.RoleUser)
	}

	rows, page, err := repo.List(context.Background(), ListFilter{
		Page: pagination.Params{Page: 99, PageSize: 2},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Page != 2 || page.TotalPages != 2 {
		t.Fatalf("expected clamp to last page, got page %d of %d", page.Page, page.TotalPages)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row on last page, got %d", len(rows))
	}
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	user := seedUser(t, repo, "Alexandria Hamilton Worthington", "gone@example.com", "", enums.RoleUser)

	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestUnknownSortFallsBackToName(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	seedUser(t, repo, "Benjamin Fitzgerald Abernathy", "b@example.com", "", enums.RoleUser)
	seedUser(t, repo, "Alexandria Hamilton Worthington", "a@example.com", "", enums.RoleUser)

	rows, _, err := repo.List(context.Background(), ListFilter{
		SortBy: "password_hash",
		Page:   pagination.Params{Page: 1, PageSize: 10},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if rows[0].Name != "Alexandria Hamilton Worthington" {
		t.Fatalf("expected name asc fallback, got %q first", rows[0].Name)
	}
}
