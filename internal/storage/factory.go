package storage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/genie-archive/scn/internal/config"
	"github.com/genie-archive/scn/internal/database"
	gormstorage "github.com/genie-archive/scn/internal/storage/gorm"
	"github.com/genie-archive/scn/internal/storage/memory"
)

// NewBackend creates a storage backend based on configuration.
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "memory":
		return memory.New(cfg.Memory), nil
	case "sqlite":
		mgr := database.NewManager(log)
		db, err := mgr.GetSqliteDB(cfg.SqlitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite catalog: %w", err)
		}
		return gormstorage.New(db), nil
	case "postgres":
		// Postgres-first with SQLite fallback, so a missing server still
		// yields a usable local catalog.
		mgr := database.NewManager(log)
		mgr.SqliteFilePath = cfg.SqlitePath
		if err := mgr.Connect(); err != nil {
			return nil, fmt.Errorf("connect catalog database: %w", err)
		}
		return gormstorage.New(mgr.DB), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
