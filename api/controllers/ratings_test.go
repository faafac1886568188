package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/worldofMayur/Roxiler-assessment/api/middleware"
	"github.com/worldofMayur/Roxiler-assessment/internal/ratings"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
)

type stubRatingsService struct {
	result     *ratings.SubmitResultDTO
	err        error
	gotUserID  int64
	gotStoreID int64
	gotRating  *float64
}

func (s *stubRatingsService) Submit(_ context.Context, userID, storeID int64, rating *float64) (*ratings.SubmitResultDTO, error) {
	s.gotUserID = userID
	s.gotStoreID = storeID
	s.gotRating = rating
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func ratingRequest(t *testing.T, storeID, body string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/ratings/"+storeID, bytes.NewBufferString(body))

	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("storeId", storeID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx)
	ctx = middleware.WithUserID(ctx, 42)

	return req.WithContext(ctx)
}

func TestSubmitRatingSuccess(t *testing.T) {
	svc := &stubRatingsService{result: &ratings.SubmitResultDTO{
		Message:       "Rating saved.",
		Rating:        4,
		StoreID:       9,
		OverallRating: 4.3,
	}}
	handler := SubmitRating(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, ratingRequest(t, "9", `{"rating":4}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotUserID != 42 || svc.gotStoreID != 9 {
		t.Fatalf("expected ids forwarded got user=%d store=%d", svc.gotUserID, svc.gotStoreID)
	}
	if svc.gotRating == nil || *svc.gotRating != 4 {
		t.Fatalf("expected rating 4 forwarded got %v", svc.gotRating)
	}

	var envelope struct {
		Data ratings.SubmitResultDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.OverallRating != 4.3 {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestSubmitRatingMissingField(t *testing.T) {
	svc := &stubRatingsService{err: pkgerrors.New(pkgerrors.CodeValidation, "Rating must be an integer between 1 and 5.")}
	handler := SubmitRating(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, ratingRequest(t, "9", `{}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if svc.gotRating != nil {
		t.Fatalf("expected nil rating forwarded got %v", *svc.gotRating)
	}
}

func TestSubmitRatingBadStoreID(t *testing.T) {
	svc := &stubRatingsService{}
	handler := SubmitRating(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, ratingRequest(t, "abc", `{"rating":4}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "Invalid store id." {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestSubmitRatingUnknownStore(t *testing.T) {
	svc := &stubRatingsService{err: pkgerrors.New(pkgerrors.CodeNotFound, "Store not found.")}
	handler := SubmitRating(svc, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, ratingRequest(t, "404", `{"rating":4}`))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
