package stores

import (
	"context"
	"errors"
	"testing"

	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

type stubLister struct {
	rows     []ratedRow
	page     pagination.Page
	err      error
	captured *int64
}

func (s *stubLister) ListWithRatings(ctx context.Context, filter ListFilter, viewerID *int64) ([]ratedRow, pagination.Page, error) {
	s.captured = viewerID
	if s.err != nil {
		return nil, pagination.Page{}, s.err
	}
	return s.rows, s.page, nil
}

func TestNewServiceRequiresRepo(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error creating service without repo")
	}
}

func TestListForUserRoundsAveragesAndPassesViewer(t *testing.T) {
	four := 4
	lister := &stubLister{
		rows: []ratedRow{
			{ID: 1, Name: "Shop", AverageRating: 4.666666, UserRating: &four},
			{ID: 2, Name: "Empty", AverageRating: 0},
		},
		page: pagination.Page{Page: 1, PageSize: 10, Total: 2, TotalPages: 1},
	}
	svc, err := NewService(lister)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	result, err := svc.ListForUser(context.Background(), 42, ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if lister.captured == nil || *lister.captured != 42 {
		t.Fatalf("expected viewer id forwarded, got %v", lister.captured)
	}
	if result.Items[0].OverallRating != 4.7 {
		t.Fatalf("expected 4.7, got %f", result.Items[0].OverallRating)
	}
	if result.Items[1].OverallRating != 0 || result.Items[1].UserRating != nil {
		t.Fatalf("expected sentinels on unrated store, got %+v", result.Items[1])
	}
	if result.TotalPages != 1 {
		t.Fatalf("expected page metadata preserved, got %+v", result.Page)
	}
}

func TestListForUserWrapsRepoError(t *testing.T) {
	svc, err := NewService(&stubLister{err: errors.New("boom")})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.ListForUser(context.Background(), 1, ListFilter{})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
}
