package main

import (
	"context"
	"log/slog"
	"os"

	"listingcrew/internal/catalog"
	"listingcrew/internal/config"
	"listingcrew/internal/logging"
	"listingcrew/internal/request" // The internal package for this service
	"listingcrew/internal/server"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"
)

// main is the entry point for the RequestService.
// It initializes dependencies and starts the HTTP server.
func main() {
	cfg, err := config.Load("8082")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var requestRepo request.Repository
	switch cfg.Store.Type {
	case "firestore":
		client, err := firestore.NewClient(context.Background(), cfg.Store.Firestore.ProjectID)
		if err != nil {
			slog.Error("failed to initialize firestore", "error", err)
			os.Exit(1)
		}
		requestRepo = request.NewFirestoreRepository(client)
		slog.Info("using firestore store", "project", cfg.Store.Firestore.ProjectID)
	default:
		requestRepo = request.NewMemoryRepository()
		slog.Info("using in-memory store (development mode)")
	}
	defer requestRepo.Close()

	// Vendor profiles come from the UserService.
	userClient := request.NewHTTPUserClient(cfg.Services.UserURL)

	requestService := request.NewService(requestRepo, userClient, request.Options{
		UnselectLock: cfg.Requests.UnselectLock.Enabled,
	})
	requestHandler := request.NewHandler(requestService)

	r := newRouter(cfg, requestHandler)

	if err := server.Run("RequestService", cfg.HTTP.Port, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// newRouter mounts the public request routes, the catalog and the internal
// candidate-pool route used by vendor discovery.
func newRouter(cfg config.Config, h *request.Handler) *chi.Mux {
	return server.NewRouter(cfg, "RequestService", func(r chi.Router) {
		h.RegisterRoutes(r)
		h.RegisterInternalRoutes(r)
		catalog.RegisterRoutes(r)
	})
}
