package main

import (
	"log"

	"github.com/jvalenzano/forestgpt-app/internal/bootstrap"
	"github.com/jvalenzano/forestgpt-app/internal/config"
	"github.com/jvalenzano/forestgpt-app/internal/server"
	"github.com/jvalenzano/forestgpt-app/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (optional, falls back to in-memory storage)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
