package ratings

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/worldofMayur/Roxiler-assessment/pkg/db/models"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
)

type stubRatingsRepo struct {
	upsertErr error
	avg       float64
	upserts   []int
}

func (s *stubRatingsRepo) Upsert(ctx context.Context, userID, storeID int64, rating int) error {
	s.upserts = append(s.upserts, rating)
	return s.upsertErr
}

func (s *stubRatingsRepo) AverageForStore(ctx context.Context, storeID int64) (float64, error) {
	return s.avg, nil
}

type stubStoreFinder struct {
	store *models.Store
	err   error
}

func (s stubStoreFinder) FindByID(ctx context.Context, id int64) (*models.Store, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.store, nil
}

func floatPtr(v float64) *float64 { return &v }

func TestSubmitRejectsMissingRating(t *testing.T) {
	svc, err := NewService(&stubRatingsRepo{}, stubStoreFinder{store: &models.Store{ID: 1}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Submit(context.Background(), 1, 1, nil)
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", gotErr)
	}
}

func TestSubmitRejectsNonIntegerAndOutOfRange(t *testing.T) {
	svc, err := NewService(&stubRatingsRepo{}, stubStoreFinder{store: &models.Store{ID: 1}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	for _, value := range []float64{3.5, 0, 6, -1} {
		_, gotErr := svc.Submit(context.Background(), 1, 1, floatPtr(value))
		typed := pkgerrors.As(gotErr)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("value %f: expected validation error, got %v", value, gotErr)
		}
		if typed.Message() != invalidRatingMessage {
			t.Fatalf("value %f: unexpected message %q", value, typed.Message())
		}
	}
}

func TestSubmitUnknownStore(t *testing.T) {
	svc, err := NewService(&stubRatingsRepo{}, stubStoreFinder{err: gorm.ErrRecordNotFound})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Submit(context.Background(), 1, 99, floatPtr(4))
	typed := pkgerrors.As(gotErr)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
	if typed.Message() != "Store not found." {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestSubmitSuccessReturnsRoundedAverage(t *testing.T) {
	repo := &stubRatingsRepo{avg: 4.3333333}
	svc, err := NewService(repo, stubStoreFinder{store: &models.Store{ID: 7}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	result, gotErr := svc.Submit(context.Background(), 1, 7, floatPtr(5))
	if gotErr != nil {
		t.Fatalf("submit: %v", gotErr)
	}
	if result.Message != "Rating saved." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if result.Rating != 5 || result.StoreID != 7 {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.OverallRating != 4.3 {
		t.Fatalf("expected rounded average 4.3, got %f", result.OverallRating)
	}
	if len(repo.upserts) != 1 || repo.upserts[0] != 5 {
		t.Fatalf("expected one upsert of 5, got %v", repo.upserts)
	}
}
