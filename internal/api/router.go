package api

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/registry"
)

// Config carries the dependencies of the API router.
type Config struct {
	DB          *sql.DB
	JWTSecret   string
	Assets      *registry.AssetRegistry
	Restaurants *registry.RestaurantRegistry
	// Gatherer backs GET /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(cfg Config) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: cfg.DB, JWTSecret: cfg.JWTSecret}
	usersHandler := &UsersHandler{DB: cfg.DB}
	assetsHandler := &AssetsHandler{DB: cfg.DB, Registry: cfg.Assets}
	restaurantsHandler := &RestaurantsHandler{DB: cfg.DB, Registry: cfg.Restaurants}

	authMW := AuthMiddleware(cfg.JWTSecret, cfg.DB)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Assets: reads are public, writes are gated by ownership in the registry.
	mux.Handle("POST /api/assets", authMW(http.HandlerFunc(assetsHandler.Register)))
	mux.HandleFunc("GET /api/assets/{id}", assetsHandler.Get)
	mux.Handle("PUT /api/assets/{id}", authMW(http.HandlerFunc(assetsHandler.Update)))
	mux.HandleFunc("GET /api/assets/{id}/available", assetsHandler.Available)
	mux.Handle("PUT /api/assets/{id}/image", authMW(http.HandlerFunc(assetsHandler.UploadImage)))
	mux.HandleFunc("GET /api/assets/{id}/image", assetsHandler.GetImage)
	mux.HandleFunc("GET /api/assets/{id}/history", assetsHandler.GetHistory)

	// Restaurants: verification is reserved for the administrator identity.
	mux.Handle("POST /api/restaurants", authMW(http.HandlerFunc(restaurantsHandler.Register)))
	mux.HandleFunc("GET /api/restaurants/{id}", restaurantsHandler.Get)
	mux.Handle("PUT /api/restaurants/{id}/verification", authMW(http.HandlerFunc(restaurantsHandler.Verify)))
	mux.HandleFunc("GET /api/restaurants/{id}/verified", restaurantsHandler.Verified)
	mux.HandleFunc("GET /api/restaurants/{id}/history", restaurantsHandler.GetHistory)

	if cfg.Gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}

	return mux
}
