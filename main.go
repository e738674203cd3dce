package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"guid-gatherer/config"
	"guid-gatherer/database"
	"guid-gatherer/idgen"
	"guid-gatherer/migration"
	"guid-gatherer/routes"
	"guid-gatherer/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	idgen.Init(cfg.NodeID)

	var stores routes.Stores
	if cfg.DBDriver == "memory" {
		log.Warn("DB_DRIVER=memory: records are lost on restart")
		stores = routes.MemoryStores()
	} else {
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := migration.Migrate(db); err != nil {
			log.Fatalf("Failed to auto migrate: %v", err)
		}
		stores = routes.GormStores(db)
	}

	handlers := routes.NewHandlers(cfg, stores, services.NewMailer(cfg))

	if err := database.SeedAdmin(context.Background(), cfg, handlers.AuthService); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	app := routes.New(cfg, handlers)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("Shutdown: %v", err)
		}
	}()

	log.Infof("Server running on port %s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
