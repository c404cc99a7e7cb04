// Package memory stores catalog records in memory and exports them as a
// JSON (optionally gzipped) file on Close.
package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/genie-archive/scn/internal/config"
	"github.com/genie-archive/scn/internal/model"
)

// Export is the root JSON structure written on Close.
type Export struct {
	GeneratedAt time.Time              `json:"generatedAt"`
	Scenarios   []model.ScenarioRecord `json:"scenarios"`
}

// Backend accumulates scenario records and exports JSON.
type Backend struct {
	cfg     config.MemoryConfig
	records []model.ScenarioRecord

	exportedPath string
	mu           sync.Mutex
}

// New creates a new memory backend.
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init creates the output directory.
func (b *Backend) Init() error {
	return os.MkdirAll(b.cfg.OutputDir, 0755)
}

// SaveScenario appends the record to the in-memory catalog.
func (b *Backend) SaveScenario(rec *model.ScenarioRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, *rec)
	return nil
}

// Records returns a copy of everything saved so far.
func (b *Backend) Records() []model.ScenarioRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.ScenarioRecord, len(b.records))
	copy(out, b.records)
	return out
}

// Close writes the export file. An empty catalog still produces a file so
// a run always leaves evidence of having completed.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	export := Export{
		GeneratedAt: time.Now().UTC(),
		Scenarios:   b.records,
	}

	name := fmt.Sprintf("scn_catalog_%s.json", export.GeneratedAt.Format("20060102_150405"))
	if b.cfg.CompressOutput {
		name += ".gz"
	}
	path := filepath.Join(b.cfg.OutputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if b.cfg.CompressOutput {
		gz := gzip.NewWriter(f)
		if err := json.NewEncoder(gz).Encode(export); err != nil {
			gz.Close()
			return fmt.Errorf("encode export: %w", err)
		}
		if err := gz.Close(); err != nil {
			return fmt.Errorf("close gzip writer: %w", err)
		}
	} else {
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(export); err != nil {
			return fmt.Errorf("encode export: %w", err)
		}
	}

	b.exportedPath = path
	return nil
}

// ExportedFilePath returns the path written by Close, or empty before it.
func (b *Backend) ExportedFilePath() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.exportedPath
}
