// Package indexer walks directories of scenario files, decodes each one and
// writes catalog records through the storage backend. A file that fails to
// decode is logged and counted; it never aborts the run.
package indexer

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/metric"

	"github.com/genie-archive/scn/internal/model"
	"github.com/genie-archive/scn/internal/storage"
	"github.com/genie-archive/scn/pkg/scn"
)

// Dependencies holds all dependencies for the indexer service.
type Dependencies struct {
	Logger  *slog.Logger
	Backend storage.Backend
}

// Stats summarizes one indexing run.
type Stats struct {
	Scanned int
	Decoded int
	Failed  int
	Units   int
}

// Service indexes scenario files into the catalog.
type Service struct {
	deps Dependencies

	decoded metric.Int64Counter
	failed  metric.Int64Counter
	units   metric.Int64Counter
}

// NewService creates a new indexer service.
func NewService(deps Dependencies) (*Service, error) {
	s := &Service{deps: deps}

	m := meter()
	var err error
	s.decoded, err = m.Int64Counter(
		"scn.indexer.scenarios_decoded",
		metric.WithDescription("Total scenario files decoded successfully"),
	)
	if err != nil {
		return nil, err
	}
	s.failed, err = m.Int64Counter(
		"scn.indexer.decode_failures",
		metric.WithDescription("Total scenario files that failed to decode"),
	)
	if err != nil {
		return nil, err
	}
	s.units, err = m.Int64Counter(
		"scn.indexer.units_cataloged",
		metric.WithDescription("Total placed units written to the catalog"),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// IsScenarioFile reports whether path looks like a scenario file by
// extension.
func IsScenarioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scn", ".scx":
		return true
	}
	return false
}

// IndexFile decodes one file and saves its catalog record.
func (s *Service) IndexFile(ctx context.Context, path string) error {
	scenario, err := scn.ReadFromFile(path)
	if err != nil {
		s.failed.Add(ctx, 1)
		return err
	}

	rec, err := model.FromScenario(path, scenario)
	if err != nil {
		s.failed.Add(ctx, 1)
		return err
	}
	if err := s.deps.Backend.SaveScenario(&rec); err != nil {
		return err
	}

	s.decoded.Add(ctx, 1)
	s.units.Add(ctx, int64(rec.TotalUnits))
	s.deps.Logger.Debug("Cataloged scenario",
		"path", path,
		"players", rec.PlayerCount,
		"units", rec.TotalUnits)
	return nil
}

// IndexDir walks root and indexes every scenario file under it. Decode
// failures are logged and counted in the returned stats; only walk and
// storage errors abort the run.
func (s *Service) IndexDir(ctx context.Context, root string) (Stats, error) {
	var stats Stats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsScenarioFile(path) {
			return nil
		}
		stats.Scanned++

		scenario, err := scn.ReadFromFile(path)
		if err != nil {
			stats.Failed++
			s.failed.Add(ctx, 1)
			s.deps.Logger.Error("Failed to decode scenario", "path", path, "error", err)
			return nil
		}

		rec, err := model.FromScenario(path, scenario)
		if err != nil {
			stats.Failed++
			s.failed.Add(ctx, 1)
			s.deps.Logger.Error("Failed to convert scenario", "path", path, "error", err)
			return nil
		}

		if err := s.deps.Backend.SaveScenario(&rec); err != nil {
			// Storage failure is not a bad input file; stop the run.
			return err
		}

		stats.Decoded++
		stats.Units += int(rec.TotalUnits)
		s.decoded.Add(ctx, 1)
		s.units.Add(ctx, int64(rec.TotalUnits))
		s.deps.Logger.Debug("Cataloged scenario", "path", path, "units", rec.TotalUnits)
		return nil
	})

	return stats, err
}
