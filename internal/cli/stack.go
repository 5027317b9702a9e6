package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/library"
	"github.com/llehouerou/reel/internal/metadata"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/suggest"
	"github.com/llehouerou/reel/internal/thumbnail"
)

// stack is every service opened on the reel database.
type stack struct {
	cfg      *config.Config
	state    *state.Manager
	library  *library.Library
	metadata *metadata.Store
	provider *suggest.Provider
	logFile  io.Closer
}

// openStack sets up logging, opens the database and builds the provider.
func openStack(cfg *config.Config) (*stack, error) {
	logFile, err := setupLogging(cfg)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	mgr, err := state.Open(cfg.Database)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	lib := library.New(mgr.DB())
	if err := lib.EnsureFTSIndex(); err != nil {
		log.Printf("ensure search index: %v", err)
	}
	meta := metadata.New(mgr.DB())

	gen, err := thumbnail.NewFFmpegGenerator(cfg.GetThumbnailConfig())
	if err != nil {
		mgr.Close()
		logFile.Close()
		return nil, fmt.Errorf("thumbnail cache: %w", err)
	}
	provider := suggest.New(lib, meta, thumbnail.NewResolver(gen, lib))
	provider.SetDebug(cfg.Debug)

	return &stack{
		cfg:      cfg,
		state:    mgr,
		library:  lib,
		metadata: meta,
		provider: provider,
		logFile:  logFile,
	}, nil
}

func (s *stack) Close() error {
	err := s.state.Close()
	s.logFile.Close()
	return err
}

// setupLogging sends the standard logger to the configured file, or to
// $XDG_STATE_HOME/reel/reel.log. The TUI owns the terminal, so nothing is
// logged to stderr.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	path := cfg.LogFile
	if path == "" {
		var err error
		path, err = xdg.StateFile(filepath.Join("reel", "reel.log"))
		if err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
