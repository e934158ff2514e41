package infrastructure_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/autoxela/navigator/internal/config"
	"github.com/autoxela/navigator/internal/infrastructure"
	"github.com/autoxela/navigator/internal/snapshots"
)

func finalized(t *testing.T, app config.AppConfig) *config.Config {
	t.Helper()
	cfg := &config.Config{App: app}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func TestNew_Snapshot(t *testing.T) {
	cfg := finalized(t, config.AppConfig{Snapshot: 2})

	infra, err := infrastructure.NewWithLogger(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if infra.Version != 2 || infra.Table.Len() != 8 {
		t.Errorf("Version = %d, Len() = %d, want 2 and 8", infra.Version, infra.Table.Len())
	}
	if infra.Lifecycle == nil {
		t.Error("Lifecycle is nil")
	}
}

func TestNew_UnknownSnapshot(t *testing.T) {
	cfg := finalized(t, config.AppConfig{Snapshot: 12})

	_, err := infrastructure.NewWithLogger(cfg, slog.New(slog.DiscardHandler))
	if !errors.Is(err, snapshots.ErrUnknownVersion) {
		t.Errorf("New() error = %v, want %v", err, snapshots.ErrUnknownVersion)
	}
}

func TestNew_RoutesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.toml")
	content := "[[routes]]\npath = \"/\"\nname = \"home\"\nview = \"HomeView\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write routes file: %v", err)
	}

	cfg := finalized(t, config.AppConfig{RoutesFile: path})

	infra, err := infrastructure.NewWithLogger(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if infra.Version != 0 || infra.Table.Len() != 1 {
		t.Errorf("Version = %d, Len() = %d, want 0 and 1", infra.Version, infra.Table.Len())
	}
}
