package main

import (
	"context"
	"log/slog"
	"os"

	"listingcrew/internal/chat"
	"listingcrew/internal/config"
	"listingcrew/internal/logging"
	"listingcrew/internal/server"

	"cloud.google.com/go/firestore"
)

// main is the entry point for the ChatService.
func main() {
	cfg, err := config.Load("8081")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var chatRepo chat.Repository
	switch cfg.Store.Type {
	case "firestore":
		client, err := firestore.NewClient(context.Background(), cfg.Store.Firestore.ProjectID)
		if err != nil {
			slog.Error("failed to initialize firestore", "error", err)
			os.Exit(1)
		}
		chatRepo = chat.NewFirestoreRepository(client)
		slog.Info("using firestore store", "project", cfg.Store.Firestore.ProjectID)
	default:
		chatRepo = chat.NewMemoryRepository()
		slog.Info("using in-memory store (development mode)")
	}
	defer chatRepo.Close()

	userClient := chat.NewHTTPUserClient(cfg.Services.UserURL)
	chatService := chat.NewService(chatRepo, userClient, chat.Options{})
	chatHandler := chat.NewHandler(chatService)

	// The websocket route sits in the same group. Browsers pass the token
	// as access_token on the upgrade request.
	r := server.NewRouter(cfg, "ChatService", chatHandler.RegisterRoutes)

	if err := server.Run("ChatService", cfg.HTTP.Port, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
