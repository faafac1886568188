package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/worldofMayur/Roxiler-assessment/api/controllers"
	"github.com/worldofMayur/Roxiler-assessment/api/middleware"
	"github.com/worldofMayur/Roxiler-assessment/internal/admin"
	"github.com/worldofMayur/Roxiler-assessment/internal/auth"
	"github.com/worldofMayur/Roxiler-assessment/internal/owner"
	"github.com/worldofMayur/Roxiler-assessment/internal/ratings"
	"github.com/worldofMayur/Roxiler-assessment/internal/stores"
	"github.com/worldofMayur/Roxiler-assessment/pkg/config"
	"github.com/worldofMayur/Roxiler-assessment/pkg/db"
	"github.com/worldofMayur/Roxiler-assessment/pkg/enums"
	"github.com/worldofMayur/Roxiler-assessment/pkg/logger"
	"github.com/worldofMayur/Roxiler-assessment/pkg/metrics"
	"github.com/worldofMayur/Roxiler-assessment/pkg/redis"
)

// Deps bundles everything the router mounts. Nil optional fields (redis,
// metrics, gatherer) disable the matching middleware or endpoint.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    db.Pinger
	RedisClient *redis.Client
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer

	AuthService    auth.Service
	StoresService  stores.Service
	RatingsService ratings.Service
	AdminService   admin.Service
	OwnerService   owner.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DBPinger, logg))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/auth", func(r chi.Router) {
		if deps.RedisClient != nil {
			r.With(middleware.AuthRateLimit(signupPolicy, deps.RedisClient, logg)).Post("/signup", controllers.Signup(deps.AuthService, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, deps.RedisClient, logg)).Post("/login", controllers.Login(deps.AuthService, logg))
		} else {
			r.Post("/signup", controllers.Signup(deps.AuthService, logg))
			r.Post("/login", controllers.Login(deps.AuthService, logg))
		}
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleUser.String(), logg))
			r.Get("/stores", controllers.ListStores(deps.StoresService, logg))
			r.Post("/ratings/{storeId}", controllers.SubmitRating(deps.RatingsService, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleAdmin.String(), logg))
			r.Get("/dashboard", controllers.AdminDashboard(deps.AdminService, logg))
			r.Get("/users", controllers.AdminListUsers(deps.AdminService, logg))
			r.Delete("/users/{userId}", controllers.AdminDeleteUser(deps.AdminService, logg))
			r.Get("/stores", controllers.AdminListStores(deps.AdminService, logg))
			r.Post("/stores", controllers.AdminCreateStore(deps.AdminService, logg))
			r.Put("/stores/{storeId}", controllers.AdminUpdateStore(deps.AdminService, logg))
			r.Delete("/stores/{storeId}", controllers.AdminDeleteStore(deps.AdminService, logg))
		})

		r.Route("/owner", func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RoleOwner.String(), logg))
			r.Get("/dashboard", controllers.OwnerDashboard(deps.OwnerService, logg))
			r.Get("/stores", controllers.OwnerStores(deps.OwnerService, logg))
			r.Post("/stores", controllers.OwnerCreateStore(deps.OwnerService, logg))
			r.Put("/stores/{storeId}", controllers.OwnerUpdateStore(deps.OwnerService, logg))
			r.Delete("/stores/{storeId}", controllers.OwnerDeleteStore(deps.OwnerService, logg))
			r.Get("/stores/{storeId}/raters", controllers.OwnerRaters(deps.OwnerService, logg))
		})
	})

	return r
}
