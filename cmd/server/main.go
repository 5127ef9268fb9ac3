package main

import (
	"context"

	"github.com/kindredapp/kindred/internal/app"
	"github.com/kindredapp/kindred/internal/cache"
	"github.com/kindredapp/kindred/internal/config"
	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/engine/lexicon"
	"github.com/kindredapp/kindred/internal/logger"
	"github.com/kindredapp/kindred/internal/notify"
	"github.com/kindredapp/kindred/internal/server"
	"github.com/kindredapp/kindred/internal/service/discovery"
	"github.com/kindredapp/kindred/internal/service/trust"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L() // slog.Logger pointer

	// a bad engine override should stop the process, not mis-score silently
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
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
	var notifier notify.Notifier
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}
	notifier = notify.NewRedisNotifier(redisCache.Client, log)

	// Inject logger into app context
	appCtx := app.New(database, redisCache, log, notifier, cfg)

	// one immutable lexicon shared by every engine component
	lex := lexicon.Default()

	registrars := []server.Registrar{
		discovery.NewRegistrar(appCtx, lex),
		trust.NewRegistrar(appCtx, lex),
	}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	addr := cfg.GRPC.Host + ":" + cfg.GRPC.Port
	log.Info("starting gRPC server", "addr", addr)

	if err := server.StartGRPCServer(cfg, registrars...); err != nil {
		log.Error("failed to start gRPC server", "err", err)
	}
}
