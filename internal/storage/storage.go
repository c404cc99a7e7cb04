// Package storage defines the catalog backend seam the indexer writes
// decoded scenarios through.
package storage

import "github.com/genie-archive/scn/internal/model"

// Backend is the interface all catalog storage implementations satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// SaveScenario persists one decoded scenario record.
	SaveScenario(rec *model.ScenarioRecord) error
}

// Exportable is an optional interface for backends that produce a file on
// Close (the JSON export backend does).
type Exportable interface {
	ExportedFilePath() string
}
