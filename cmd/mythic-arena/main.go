package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericogr/mythic-arena/internal/api"
	"github.com/ericogr/mythic-arena/internal/constants"
	"github.com/ericogr/mythic-arena/internal/logging"
	"github.com/ericogr/mythic-arena/internal/service"
	"github.com/ericogr/mythic-arena/internal/version"
)

func main() {
	defer logging.Sync()

	env := loadEnvOrExit()
	cfg := loadConfigOrExit(env.ConfigPath)
	repo := createRepositoryOrExit(env.DBPath, cfg)

	sessions, err := api.NewSessionVerifier(env.SessionSecret)
	if err != nil {
		logging.Fatal("Failed to initialize session verifier", err, nil)
	}
	if env.SessionSecret == "" {
		logging.Info("SESSION_SECRET not set; using a random in-memory secret", nil)
	}

	battles := service.NewBattleService(repo, newEngine(cfg), newNarrator(env, cfg))
	router := api.NewRouter(api.NewBattleHandler(repo, battles), sessions)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	startHistorySweeper(ctx, repo, cfg.HistoryTTL, time.Hour)

	srv := &http.Server{Addr: cfg.ServerAddress, Handler: router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.ServerAddress, "version": version.Version})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Fatal("Failed to start server", err, nil)
	}
	logging.Info("Server stopped", nil)
}
