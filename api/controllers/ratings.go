package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worldofMayur/Roxiler-assessment/api/middleware"
	"github.com/worldofMayur/Roxiler-assessment/api/responses"
	"github.com/worldofMayur/Roxiler-assessment/api/validators"
	"github.com/worldofMayur/Roxiler-assessment/internal/ratings"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/logger"
)

type submitRatingRequest struct {
	Rating *float64 `json:"rating"`
}

// SubmitRating upserts the caller's score for a store.
func SubmitRating(svc ratings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ratings service unavailable"))
			return
		}

		storeID, err := validators.ParsePathID(chi.URLParam(r, "storeId"), "Invalid store id.")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input submitRatingRequest
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Submit(r.Context(), middleware.UserIDFromContext(r.Context()), storeID, input.Rating)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
