package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worldofMayur/Roxiler-assessment/api/middleware"
	"github.com/worldofMayur/Roxiler-assessment/api/responses"
	"github.com/worldofMayur/Roxiler-assessment/api/validators"
	"github.com/worldofMayur/Roxiler-assessment/internal/owner"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/logger"
)

// OwnerDashboard returns the caller's aggregate store and rating totals.
func OwnerDashboard(svc owner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "owner service unavailable"))
			return
		}

		result, err := svc.Dashboard(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// OwnerStores returns one page of the caller's stores with rating summaries.
func OwnerStores(svc owner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "owner service unavailable"))
			return
		}

		result, err := svc.Stores(r.Context(), middleware.UserIDFromContext(r.Context()), paginationParams(r))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// OwnerRaters returns the users who rated one of the caller's stores.
func OwnerRaters(svc owner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "owner service unavailable"))
			return
		}

		storeID, err := validators.ParsePathID(chi.URLParam(r, "storeId"), "Invalid store id.")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Raters(r.Context(), middleware.UserIDFromContext(r.Context()), storeID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// OwnerCreateStore registers a new store owned by the caller.
func OwnerCreateStore(svc owner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "owner service unavailable"))
			return
		}

		var input owner.StoreInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateStore(r.Context(), middleware.UserIDFromContext(r.Context()), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// OwnerUpdateStore replaces the details of a store the caller owns.
func OwnerUpdateStore(svc owner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "owner service unavailable"))
			return
		}

		storeID, err := validators.ParsePathID(chi.URLParam(r, "storeId"), "Invalid store id.")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input owner.StoreInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateStore(r.Context(), middleware.UserIDFromContext(r.Context()), storeID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// OwnerDeleteStore removes a store the caller owns along with its ratings.
func OwnerDeleteStore(svc owner.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "owner service unavailable"))
			return
		}

		storeID, err := validators.ParsePathID(chi.URLParam(r, "storeId"), "Invalid store id.")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteStore(r.Context(), middleware.UserIDFromContext(r.Context()), storeID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, messageResponse{Message: "Store deleted."})
	}
}
