// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every module needs: lifecycle coordination,
// logging, metrics, and the route table being served.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/autoxela/navigator/internal/config"
	"github.com/autoxela/navigator/internal/lifecycle"
	"github.com/autoxela/navigator/internal/snapshots"
	"github.com/autoxela/navigator/pkg/logging"
	"github.com/autoxela/navigator/pkg/metrics"
	"github.com/autoxela/navigator/pkg/navigation"
)

// Infrastructure holds the core systems required by all modules.
// Version is the snapshot the table came from, or 0 when it was loaded
// from a routes file.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	Table     *navigation.Table
	Version   int
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, logging.New(&cfg.Logging))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	table, version, err := loadTable(&cfg.App)
	if err != nil {
		return nil, fmt.Errorf("route table init failed: %w", err)
	}

	logger.Info("route table loaded",
		"routes", table.Len(),
		"snapshot", version,
		"routes_file", cfg.App.RoutesFile,
	)

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Metrics:   metrics.New(&cfg.Metrics),
		Table:     table,
		Version:   version,
	}, nil
}

func loadTable(cfg *config.AppConfig) (*navigation.Table, int, error) {
	if cfg.RoutesFile != "" {
		t, err := snapshots.Load(cfg.RoutesFile)
		if err != nil {
			return nil, 0, err
		}
		return t, 0, nil
	}
	t, err := snapshots.Get(cfg.Snapshot)
	if err != nil {
		return nil, 0, err
	}
	return t, cfg.Snapshot, nil
}
