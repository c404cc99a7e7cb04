// Package gormstorage implements the storage.Backend interface on top of a
// GORM database handle. It is shared by the SQLite and Postgres paths; the
// driver-specific concerns live in the database manager.
package gormstorage

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/genie-archive/scn/internal/model"
)

// Backend writes catalog records through GORM.
type Backend struct {
	db *gorm.DB
}

// New creates a backend over an open database handle.
func New(db *gorm.DB) *Backend {
	return &Backend{db: db}
}

// Init migrates the catalog tables.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("migrate catalog tables: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SaveScenario persists a scenario record with its slots and unit groups.
func (b *Backend) SaveScenario(rec *model.ScenarioRecord) error {
	if err := b.db.Create(rec).Error; err != nil {
		return fmt.Errorf("save scenario %q: %w", rec.Path, err)
	}
	return nil
}
