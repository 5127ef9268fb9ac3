package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/kindredapp/kindred/internal/cache"
	"github.com/kindredapp/kindred/internal/config"
	"github.com/kindredapp/kindred/internal/notify"
)

// AppContext holds shared dependencies (DB, Redis, Logger, etc.)
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Logger     *slog.Logger
	Notifier   notify.Notifier
	Config     *config.Config
}

// New creates a new AppContext
func New(db *gorm.DB, rdb *cache.RedisCache, logger *slog.Logger, notifier notify.Notifier, cfg *config.Config) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Logger:     logger,
		Notifier:   notifier,
		Config:     cfg,
	}
}
