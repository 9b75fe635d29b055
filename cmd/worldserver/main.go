// Command worldserver is the reference host for pkg/dominion: it exposes
// the Host-facing API over HTTP/WebSocket so an external host integration
// can create worlds, shape their graphs, and drive ticks without embedding
// Go directly.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ironclad-games/dominion/internal/auth"
	"github.com/ironclad-games/dominion/internal/config"
	"github.com/ironclad-games/dominion/internal/hostapi"
	hostauth "github.com/ironclad-games/dominion/internal/hostapi/auth"
	pgrepo "github.com/ironclad-games/dominion/internal/hostapi/repository/postgres"
	redisrepo "github.com/ironclad-games/dominion/internal/hostapi/repository/redis"
	"github.com/ironclad-games/dominion/internal/hostapi/ws"
	"github.com/ironclad-games/dominion/internal/logger"
	"github.com/ironclad-games/dominion/internal/middleware"
	"github.com/ironclad-games/dominion/internal/repository/postgres"
	coreredis "github.com/ironclad-games/dominion/internal/repository/redis"
)

func main() {
	logger.Init()
	cfg := config.Load()
	log.Info().Str("databaseURL", cfg.DatabaseURL).Msg("Config loaded")

	var logsRepo *pgrepo.LogsRepo
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("Postgres unavailable, decision logs will not be archived past the in-memory ring buffer")
	} else {
		defer db.Close()
		logsRepo = pgrepo.NewLogsRepo(db)
		if err := logsRepo.EnsureSchema(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to ensure decision_logs schema, disabling archival")
			logsRepo = nil
		}
	}

	var publisher *redisrepo.Publisher
	redisClient, err := coreredis.NewClient(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, multi-instance tick fan-out disabled")
	} else {
		defer redisClient.Close()
		publisher = redisrepo.NewPublisher(redisClient.Underlying())
	}

	jwtMgr := auth.NewJWTManager(cfg.JWTSecret)
	hub := ws.NewHub()
	registry := hostapi.NewRegistryWithRetention(cfg.LogRetention)

	srv := hostapi.NewServer(registry, hub, logsRepo, publisher, jwtMgr)
	authHandler := hostauth.NewHandler(jwtMgr)

	mux := http.NewServeMux()
	srv.Routes(mux, authHandler, hostauth.RequireService(jwtMgr))

	root := middleware.Chain(mux, middleware.Logger, middleware.CORS("*"), middleware.JSON)

	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("worldserver listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("worldserver error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down worldserver")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("worldserver shutdown error")
	}
	log.Info().Msg("worldserver stopped")
}
