// @title WealthWise API
// @version 1.0
// @description Personal finance backend with goal auto-tracking.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"github.com/Rndynt/WealthWiseApp-sub001/internal/app"
	"github.com/Rndynt/WealthWiseApp-sub001/internal/config"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/configwatcher"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/database"
	"github.com/Rndynt/WealthWiseApp-sub001/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	migrate := flag.Bool("migrate", false, "force database migration on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	if *migrateOnly {
		if _, err := database.InitDB(&cfg.Database); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Database migration completed, exiting")
		return
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(newCfg interface{}) {
		logger.Log.Info("Configuration reloaded")
	})

	application.Run()
}
