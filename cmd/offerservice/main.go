package main

import (
	"context"
	"log/slog"
	"os"

	"listingcrew/internal/config"
	"listingcrew/internal/logging"
	"listingcrew/internal/offer"
	"listingcrew/internal/server"

	"cloud.google.com/go/firestore"
)

// main is the entry point for the OfferService.
func main() {
	cfg, err := config.Load("8083")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var offerRepo offer.Repository
	switch cfg.Store.Type {
	case "firestore":
		client, err := firestore.NewClient(context.Background(), cfg.Store.Firestore.ProjectID)
		if err != nil {
			slog.Error("failed to initialize firestore", "error", err)
			os.Exit(1)
		}
		offerRepo = offer.NewFirestoreRepository(client)
		slog.Info("using firestore store", "project", cfg.Store.Firestore.ProjectID)
	default:
		offerRepo = offer.NewMemoryRepository()
		slog.Info("using in-memory store (development mode)")
	}
	defer offerRepo.Close()

	// Payout accounts come from the UserService; offer cards are posted to the ChatService.
	userClient := offer.NewHTTPUserClient(cfg.Services.UserURL)
	chatClient := offer.NewHTTPChatClient(cfg.Services.ChatURL)

	offerService := offer.NewService(offerRepo, userClient, chatClient, offer.Options{
		RequirePayoutAccount: cfg.Offers.RequirePayoutAccount,
		Policy: offer.Policy{
			StrictTransitions:   cfg.Offers.StrictTransitions,
			RequireCounterparty: cfg.Offers.RequireCounterparty,
		},
	})
	offerHandler := offer.NewHandler(offerService)

	r := server.NewRouter(cfg, "OfferService", offerHandler.RegisterRoutes)

	if err := server.Run("OfferService", cfg.HTTP.Port, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
