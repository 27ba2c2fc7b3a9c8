// Package app wires configuration, the well dataset registry, and the
// REST controller into a running service.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/subsurfaceio/petrolog/internal/controllers/restserver"
	"github.com/subsurfaceio/petrolog/internal/log"
	"github.com/subsurfaceio/petrolog/internal/wellog"
	"github.com/subsurfaceio/petrolog/internal/wellog/las"
	"github.com/subsurfaceio/petrolog/pkg/config"
)

// App represents the main application
type App struct {
	cfg    *config.ConfigData
	logger *zap.SugaredLogger
}

// New creates a new application instance
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) *App {
	return &App{cfg: cfg, logger: logger}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wells, err := LoadWells(a.cfg.Data.LASDir, a.logger)
	if err != nil {
		return err
	}

	ctrl, err := restserver.NewController(ctx, &wg, a.cfg, wells, a.logger)
	if err != nil {
		return err
	}
	if err := ctrl.StartController(); err != nil {
		return err
	}

	log.Info("Application started successfully")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	cancel()

	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}

// LoadWells parses every LAS file in dir into a dataset keyed by well
// name. Files that fail to parse are logged and skipped so one bad file
// cannot take down the service.
func LoadWells(dir string, logger *zap.SugaredLogger) (map[string]*wellog.Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read LAS directory %s: %w", dir, err)
	}

	wells := make(map[string]*wellog.Dataset)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".las") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		ds, err := las.ParseFile(path)
		if err != nil {
			logger.Warnf("skipping %s: %v", path, err)
			continue
		}
		wells[ds.Well] = ds
		logger.Infof("loaded well %s: %d samples, curves %v", ds.Well, len(ds.Axis), ds.CurveNames())
	}

	return wells, nil
}
