package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"corpsite.backend/internal/config"
	"corpsite.backend/internal/infrastructure/datasources/postgres"
	"corpsite.backend/internal/infrastructure/models"
)

// migrate creates or updates every table the server reads and writes.

var openMigrateDB = func(cfg *config.Config) (*gorm.DB, io.Closer, error) {
	sqlDB, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	db, err := postgres.NewGorm(sqlDB, cfg.Server.Env)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	return db, sqlDB, nil
}

func runMigrate(loadEnv func() error, loadCfg func() *config.Config, out io.Writer) error {
	if err := loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := loadCfg()

	db, closer, err := openMigrateDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect db: %w", err)
	}
	defer closer.Close()

	all := models.All()
	if err := db.AutoMigrate(all...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	_, _ = fmt.Fprintf(out, "Migrated %d tables\n", len(all))
	return nil
}

func main() {
	if err := runMigrate(func() error { return godotenv.Load() }, config.Load, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
