// @title           RealTrust HTTP Service API
// @version         1.0
// @description     Lead capture and content management backend for the RealTrust marketing site

// @host      localhost:5000
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/joho/godotenv"

	"realtrust-http-service/internal/app/routes"
	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/domain/services"
	"realtrust-http-service/internal/infrastructure/config"
	"realtrust-http-service/internal/infrastructure/database"
	Logger "realtrust-http-service/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file. A missing file is fine when the environment is
	// already configured another way (Docker, systemd).
	if err := godotenv.Load(); err != nil {
		Logger.Warning("Could not load .env file: %v", err)
	} else {
		Logger.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	if cfg.DBMigrationMode == "drop" {
		log.Println("Warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("Failed to drop and recreate tables: %v", err)
		}
	} else {
		log.Println("Running in standard mode, only new columns and tables will be added")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Auto migration failed: %v", err)
		}
	}

	// Make sure an administrator account exists
	ensureAdminExists(db, cfg)

	redisService := services.NewRedisService(cfg)

	r := routes.SetupRouter(db, cfg, redisService)

	port := cfg.ServerPort

	printSystemInfo(pool)

	// Listen on all interfaces, not just localhost
	Logger.Info("Server starting on: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models (only adds new columns and tables)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Admin{},
		&models.Lead{},
		&models.Project{},
		&models.Client{},
		&models.Subscriber{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops all tables and recreates them
func dropAndRecreateTables(db *gorm.DB) error {
	tables := []string{"admins", "leads", "projects", "clients", "subscribers"}

	for _, table := range tables {
		log.Printf("Dropping table: %s", table)
		if err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)).Error; err != nil {
			log.Printf("Failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists seeds a default administrator when none exists, so the
// dashboard is reachable on a fresh database.
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)

	if count == 0 {
		adminService := services.NewAdminService(db, cfg)
		if _, err := adminService.Register(cfg.DefaultAdminName, cfg.DefaultAdminEmail, cfg.DefaultAdminPassword); err != nil {
			log.Fatalf("Failed to create default administrator: %v", err)
		}
		log.Printf("Created default administrator account: %s", cfg.DefaultAdminEmail)
	}
}

// printSystemInfo logs pool and runtime information at startup
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("Database connection pool status: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("Goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory usage: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
