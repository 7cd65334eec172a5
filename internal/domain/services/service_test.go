package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"realtrust-http-service/internal/domain/models"
	"realtrust-http-service/internal/infrastructure/config"
)

// newTestDB opens an isolated in-memory database with the same GORM settings
// as the production pool, TranslateError included, and migrates all models.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A pooled second connection would see a different :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Lead{},
		&models.Project{},
		&models.Client{},
		&models.Subscriber{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// newTestConfig builds a config without touching the environment.
func newTestConfig() *config.Config {
	return &config.Config{
		EnvType:        "LOCAL",
		ServerPort:     "8080",
		JWTSecretKey:   "test-secret-key",
		JWTExpireHours: 168,
	}
}
