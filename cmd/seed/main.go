// Seeds the database with development fixtures: users, scored profiles, and
// enough decision history to exercise recommendations end to end.
package main

import (
	"os"

	"github.com/kindredapp/kindred/internal/config"
	"github.com/kindredapp/kindred/internal/db"
	"github.com/kindredapp/kindred/internal/logger"
)

func main() {
	cfg := config.New()
	logger.InitFromConfig(cfg)
	log := logger.L()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		os.Exit(1)
	}

	if err := db.SeedTestData(database); err != nil {
		log.Error("failed to seed", "err", err)
		os.Exit(1)
	}

	log.Info("seeding completed")
}
