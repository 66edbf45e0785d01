package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var PostgresDB *gorm.DB

// InitPostgres opens the profile database named by POSTGRES_URI. Pool sizes
// come from PG_MAX_OPEN / PG_MAX_IDLE; PG_LOG_LEVEL sets GORM's SQL logging.
func InitPostgres() error {
	uri := os.Getenv("POSTGRES_URI")
	if uri == "" {
		return errors.New("POSTGRES_URI is not set")
	}
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{
		Logger:      logger.Default.LogMode(gormLogLevel(getEnv("PG_LOG_LEVEL", "warn"))),
		PrepareStmt: true,
	})
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(getEnvInt("PG_MAX_OPEN", 20))
	sqlDB.SetMaxIdleConns(getEnvInt("PG_MAX_IDLE", 5))
	sqlDB.SetConnMaxLifetime(getEnvDuration("PG_CONN_LIFETIME", 30*time.Minute))

	PostgresDB = db
	return nil
}

func gormLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	}
	return logger.Warn
}

// ClosePostgres releases the pool.
func ClosePostgres() error {
	if PostgresDB == nil {
		return nil
	}
	sqlDB, err := PostgresDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
