package metrics

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env names the environment variables that override metrics settings.
type Env struct {
	Enabled   string
	Path      string
	Namespace string
}

// Config controls Prometheus instrumentation and the scrape endpoint.
type Config struct {
	Enabled   bool   `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration, including the enabled flag.
func (c *Config) Merge(overlay *Config) {
	c.Enabled = overlay.Enabled
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
}

func (c *Config) loadDefaults() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.Namespace == "" {
		c.Namespace = "navigator"
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := os.Getenv(env.Enabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(env.Path); v != "" {
		c.Path = v
	}
	if v := os.Getenv(env.Namespace); v != "" {
		c.Namespace = v
	}
}

func (c *Config) validate() error {
	if c.Path == "/" || !strings.HasPrefix(c.Path, "/") || strings.Count(c.Path, "/") != 1 {
		return fmt.Errorf("path must be a single path level such as /metrics: %q", c.Path)
	}
	return nil
}
