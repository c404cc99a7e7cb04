package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/genie-archive/scn/internal/config"
	"github.com/genie-archive/scn/internal/indexer"
	"github.com/genie-archive/scn/internal/logging"
	"github.com/genie-archive/scn/internal/storage"
	"github.com/genie-archive/scn/pkg/scn"
)

// Version can be set at build time via ldflags.
var Version = "0.0.1"

var logger *slog.Logger

func main() {
	if err := config.Load("."); err != nil {
		// Defaults are seeded before the file is read, so a missing config
		// file is not fatal.
		fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
	}

	logger = setupLogging()
	logger.Info("scn_extractor starting", "version", Version)

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "inspect":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		err = inspect(args[1])
	case "index":
		if len(args) < 2 {
			usage()
			os.Exit(2)
		}
		err = index(args[1:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: scn_extractor inspect <file>")
	fmt.Fprintln(os.Stderr, "       scn_extractor index <dir> [dir...]")
}

func setupLogging() *slog.Logger {
	logsDir := config.GetString("logsDir")
	level := config.GetString("logLevel")

	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v (console only)\n", err)
		return logging.Setup(nil, level)
	}
	f, err := os.Create(logging.LogFilePath(logsDir, time.Now()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v (console only)\n", err)
		return logging.Setup(nil, level)
	}
	return logging.Setup(f, level)
}

// excerpt shortens s to at most n bytes plus an ellipsis, backing off to a
// rune boundary so the cut never splits a multi-byte character.
func excerpt(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// inspect decodes one scenario and prints a summary.
func inspect(path string) error {
	s, err := scn.ReadFromFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("file:          %s\n", path)
	fmt.Printf("version:       %s\n", s.Header.Version)
	fmt.Printf("save type:     %d\n", s.Header.SaveType)
	fmt.Printf("last saved:    %s\n", time.Unix(int64(s.Header.LastSaveTime), 0).UTC().Format(time.RFC3339))
	fmt.Printf("players:       %d (header), %d unit groups (body)\n", s.Header.PlayerCount, s.UnitGroupCount())
	fmt.Printf("map:           %dx%d\n", s.Map.Width, s.Map.Height)

	if s.Header.Instructions != "" {
		fmt.Printf("instructions:  %s\n", excerpt(s.Header.Instructions, 120))
	}

	for _, player := range s.PlayerIDs() {
		units := s.PlayerUnits(player)
		fmt.Printf("player %d:      %d units", player, len(units))
		if player < s.ResourceCount() {
			res := s.PlayerResources(player)
			fmt.Printf(", resources g/w/f/s %d/%d/%d/%d", res.Gold, res.Wood, res.Food, res.Stone)
		}
		fmt.Println()
	}

	return nil
}

// index catalogs every scenario file under the given roots.
func index(roots []string) error {
	dbLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	backend, err := storage.NewBackend(config.Storage(), dbLog)
	if err != nil {
		return err
	}
	if err := backend.Init(); err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("Failed to close storage backend", "error", err)
		}
		if exp, ok := backend.(storage.Exportable); ok && exp.ExportedFilePath() != "" {
			logger.Info("Catalog exported", "path", exp.ExportedFilePath())
		}
	}()

	svc, err := indexer.NewService(indexer.Dependencies{
		Logger:  logger,
		Backend: backend,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	var total indexer.Stats
	for _, root := range roots {
		stats, err := svc.IndexDir(ctx, root)
		if err != nil {
			return fmt.Errorf("index %s: %w", root, err)
		}
		total.Scanned += stats.Scanned
		total.Decoded += stats.Decoded
		total.Failed += stats.Failed
		total.Units += stats.Units
	}

	logger.Info("Indexing finished",
		"scanned", total.Scanned,
		"decoded", total.Decoded,
		"failed", total.Failed,
		"units", total.Units)
	return nil
}
