package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/feedbackd/backend/conf"
	"github.com/feedbackd/backend/fbsrvc"
	"github.com/feedbackd/backend/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg := conf.Load()
	if cfg.APISecret == "" {
		slog.Warn("API_SECRET is not set, authorization is disabled")
	}

	pool, err := pgxpool.New(context.Background(), cfg.PgConnStr)
	if err != nil {
		slog.Error("failed to create postgres pool", "error", err)
		os.Exit(1)
	}

	repo := fbsrvc.NewPgRepo(pool)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		// keep serving; storage errors surface per-request until the
		// database comes back
		slog.Error("failed to initialize database schema", "error", err)
	} else {
		slog.Info("database initialized")
	}

	fbSrvc := fbsrvc.NewFeedbackSrvc(repo)
	httpServer := http.NewHttpServer(fbSrvc, cfg.APISecret)

	address := ":" + cfg.HTTPPort
	log.Printf("Starting server on %s", address)
	err = httpServer.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
