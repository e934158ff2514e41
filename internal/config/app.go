package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvAppBasePath   = "APP_BASE_PATH"
	EnvAppSnapshot   = "APP_SNAPSHOT"
	EnvAppRoutesFile = "APP_ROUTES_FILE"
)

// AppConfig selects the route table served by the application.
// RoutesFile, when set, takes precedence over Snapshot.
type AppConfig struct {
	BasePath   string `toml:"base_path"`
	Snapshot   int    `toml:"snapshot"`
	RoutesFile string `toml:"routes_file"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.Snapshot != 0 {
		c.Snapshot = overlay.Snapshot
	}
	if overlay.RoutesFile != "" {
		c.RoutesFile = overlay.RoutesFile
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.Snapshot == 0 {
		c.Snapshot = 3
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppSnapshot); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Snapshot = n
		}
	}
	if v := os.Getenv(EnvAppRoutesFile); v != "" {
		c.RoutesFile = v
	}
}

func (c *AppConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") || strings.Count(c.BasePath, "/") != 1 {
		return fmt.Errorf("base_path must be a single path level such as /app: %q", c.BasePath)
	}
	switch c.BasePath {
	case "/api", "/healthz", "/readyz":
		return fmt.Errorf("base_path %s is reserved", c.BasePath)
	}
	if c.Snapshot < 1 {
		return fmt.Errorf("snapshot must be positive")
	}
	return nil
}
