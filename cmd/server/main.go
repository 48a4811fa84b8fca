package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/kindledapp/kindled/internal/app"
	"github.com/kindledapp/kindled/internal/cache"
	"github.com/kindledapp/kindled/internal/config"
	"github.com/kindledapp/kindled/internal/db"
	"github.com/kindledapp/kindled/internal/logger"
	"github.com/kindledapp/kindled/internal/server"
	"github.com/kindledapp/kindled/internal/service/engage"
	"github.com/kindledapp/kindled/internal/service/swipe"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	if err := cfg.ValidateWeights(); err != nil {
		log.Error("invalid scorer configuration", "err", err)
		return
	}

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	// Inject logger into app context
	appCtx := app.New(database, redisCache, log, cfg)

	registrars := []server.Registrar{
		engage.NewRegistrar(appCtx),
	}

	if cfg.App.Env == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// background sweeper closes sessions abandoned mid-swipe
	swipe.NewTracker(appCtx).StartSweeper(ctx)

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(ctx, cfg, registrars...); err != nil {
		log.Error("gRPC server exited", "err", err)
	}
}
