package controllers

import (
	"net/http"

	"github.com/worldofMayur/Roxiler-assessment/api/middleware"
	"github.com/worldofMayur/Roxiler-assessment/api/responses"
	"github.com/worldofMayur/Roxiler-assessment/internal/stores"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/logger"
)

// ListStores returns the filtered store page for a browsing user, with each
// row's overall average and the caller's own rating.
func ListStores(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "stores service unavailable"))
			return
		}

		query := r.URL.Query()
		filter := stores.ListFilter{
			Name:    query.Get("searchName"),
			Address: query.Get("searchAddress"),
			SortBy:  query.Get("sortBy"),
			Order:   query.Get("order"),
			Page:    paginationParams(r),
		}

		result, err := svc.ListForUser(r.Context(), middleware.UserIDFromContext(r.Context()), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
