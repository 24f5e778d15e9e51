package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"listingcrew/internal/config"
	"listingcrew/internal/logging"
	"listingcrew/internal/server"
	"listingcrew/internal/user" // internal package for user logic

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

// main is the entry point for the UserService.
func main() {
	cfg, err := config.Load("8080")
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	// Profiles live in Postgres. Fail fast if it's not configured.
	if cfg.Database.URL == "" {
		slog.Error("DATABASE_URL is not set")
		os.Exit(1)
	}
	if cfg.Auth.JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	db, err := connectDB(cfg.Database.URL)
	if err != nil {
		slog.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close() // Make sure the connection is closed on exit.
	slog.Info("database connected")

	// This is the dependency injection part, done manually.
	// We create each layer and pass it to the next.
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	r := server.NewRouter(cfg, "UserService", userHandler.RegisterRoutes)

	if err := server.Run("UserService", cfg.HTTP.Port, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// connectDB is a helper to open and verify the database connection.
func connectDB(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// PingContext ensures the connection is actually valid.
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
