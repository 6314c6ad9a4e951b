package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/lin-avraham/Pizza2/config"
	"github.com/lin-avraham/Pizza2/database"
	"github.com/lin-avraham/Pizza2/router"
	"github.com/lin-avraham/Pizza2/utils"
)

func main() {
	utils.InitLogger()
	cfg := config.LoadConfig()
	utils.ConfigureLogger(cfg.LogLevel, cfg.GinMode == "release")

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	if err := database.SeedDefaultUsers(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed default users: %v", err)
	}

	// owner-writable only
	if err := os.MkdirAll(cfg.UploadFolder, 0o755); err != nil {
		utils.ErrorLogger.Fatalf("Failed to create upload folder %s: %v", cfg.UploadFolder, err)
	}

	r := router.SetupRouter(db, cfg)
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		utils.ErrorLogger.Fatalf("Failed to set trusted proxies: %v", err)
	}

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
