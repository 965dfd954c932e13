// Package infra provides the storage bootstrap shared by the repositories.
package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amirasaad/unitconv/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection opens the snapshot store: postgres when DATABASE_URL is
// set, otherwise a local sqlite file (created on first run).
func NewDBConnection(cfg *config.DB) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	}

	if cfg.Url != "" {
		db, err := gorm.Open(postgres.Open(cfg.Url), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		return db, nil
	}

	path := cfg.Path
	if path == "" {
		path = defaultDBPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(path), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database at %s: %w", path, err)
	}
	return db, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rates.db"
	}
	return filepath.Join(home, ".local", "share", "unitconv", "rates.db")
}
