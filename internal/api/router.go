package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/rummyledger/internal/api/handler"
	"github.com/mcoot/rummyledger/internal/api/middleware"
	"github.com/mcoot/rummyledger/internal/services/ledger"
	"github.com/mcoot/rummyledger/internal/services/registry"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Registry *registry.Service
	Ledger   *ledger.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Registry)
	gameHandler := handler.NewGameHandler(cfg.Ledger)

	// Common middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Player routes
	r.HandleFunc("/users", playerHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/users", playerHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", playerHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}", playerHandler.Update).Methods(http.MethodPut)
	r.HandleFunc("/users/{userId}", playerHandler.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/users/{userId}/games", gameHandler.ListForPlayer).Methods(http.MethodGet)

	// Game routes
	r.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/games/{gameId}", gameHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
