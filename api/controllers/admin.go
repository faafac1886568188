package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worldofMayur/Roxiler-assessment/api/middleware"
	"github.com/worldofMayur/Roxiler-assessment/api/responses"
	"github.com/worldofMayur/Roxiler-assessment/api/validators"
	"github.com/worldofMayur/Roxiler-assessment/internal/admin"
	"github.com/worldofMayur/Roxiler-assessment/internal/stores"
	"github.com/worldofMayur/Roxiler-assessment/internal/users"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/logger"
	"github.com/worldofMayur/Roxiler-assessment/pkg/pagination"
)

type messageResponse struct {
	Message string `json:"message"`
}

// AdminDashboard returns the platform-wide entity counts.
func AdminDashboard(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		result, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminListUsers returns the filtered, sorted user page.
func AdminListUsers(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		query := r.URL.Query()
		filter := users.ListFilter{
			Name:    query.Get("name"),
			Email:   query.Get("email"),
			Address: query.Get("address"),
			Role:    query.Get("role"),
			SortBy:  query.Get("sortBy"),
			Order:   query.Get("order"),
			Page:    paginationParams(r),
		}

		result, err := svc.ListUsers(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminListStores returns the filtered store page with each row's average.
func AdminListStores(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		query := r.URL.Query()
		filter := stores.ListFilter{
			Name:    query.Get("name"),
			Email:   query.Get("email"),
			Address: query.Get("address"),
			SortBy:  query.Get("sortBy"),
			Order:   query.Get("order"),
			Page:    paginationParams(r),
		}

		result, err := svc.ListStores(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminCreateStore registers a new store, optionally bound to an owner.
func AdminCreateStore(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		var input admin.StoreInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CreateStore(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// AdminUpdateStore replaces a store's details.
func AdminUpdateStore(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		storeID, err := validators.ParsePathID(chi.URLParam(r, "storeId"), "Invalid store id.")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input admin.StoreInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.UpdateStore(r.Context(), storeID, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// AdminDeleteStore removes a store and its ratings.
func AdminDeleteStore(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		storeID, err := validators.ParsePathID(chi.URLParam(r, "storeId"), "Invalid store id.")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteStore(r.Context(), storeID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, messageResponse{Message: "Store deleted."})
	}
}

// AdminDeleteUser removes a non-admin account and everything it owns.
func AdminDeleteUser(svc admin.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "admin service unavailable"))
			return
		}

		userID, err := validators.ParsePathID(chi.URLParam(r, "userId"), "Invalid user id.")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		actorID := middleware.UserIDFromContext(r.Context())
		if err := svc.DeleteUser(r.Context(), actorID, userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, messageResponse{Message: "User deleted."})
	}
}

func paginationParams(r *http.Request) pagination.Params {
	return pagination.Params{
		Page:     validators.ParseQueryIntLenient(r, "page", 1),
		PageSize: validators.ParseQueryIntLenient(r, "pageSize", pagination.DefaultPageSize),
	}
}
