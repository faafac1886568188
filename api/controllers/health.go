package controllers

import (
	"net/http"

	"github.com/worldofMayur/Roxiler-assessment/api/responses"
	"github.com/worldofMayur/Roxiler-assessment/pkg/config"
	"github.com/worldofMayur/Roxiler-assessment/pkg/db"
	pkgerrors "github.com/worldofMayur/Roxiler-assessment/pkg/errors"
	"github.com/worldofMayur/Roxiler-assessment/pkg/logger"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ratings-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports readiness only when the database answers a ping.
func HealthReady(cfg *config.Config, pinger db.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ratings-Env", cfg.App.Env)

		if pinger != nil {
			if err := pinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
