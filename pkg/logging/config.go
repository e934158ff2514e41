package logging

import (
	"fmt"
	"os"
)

// Env names the environment variables that override logging settings.
type Env struct {
	Level  string
	Format string
	File   string
}

// Config holds logging configuration settings.
// When File is set, records are also written to a rotating file; MaxSize
// is in megabytes and MaxAge in days.
type Config struct {
	Level      Level  `toml:"level"`
	Format     Format `toml:"format"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
	Compress   bool   `toml:"compress"`
}

// Finalize applies defaults, environment overrides, and validation, in that order.
func (c *Config) Finalize(env *Env) error {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.MaxSize == 0 {
		c.MaxSize = 20
	}
	if c.MaxBackups == 0 {
		c.MaxBackups = 5
	}
	if c.MaxAge == 0 {
		c.MaxAge = 14
	}
	if env != nil {
		if v := os.Getenv(env.Level); v != "" {
			c.Level = Level(v)
		}
		if v := os.Getenv(env.Format); v != "" {
			c.Format = Format(v)
		}
		if v := os.Getenv(env.File); v != "" {
			c.File = v
		}
	}
	if err := c.Level.Validate(); err != nil {
		return err
	}
	if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
		return fmt.Errorf("log rotation limits cannot be negative")
	}
	return c.Format.Validate()
}

// Merge applies non-zero values from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.File != "" {
		c.File = overlay.File
	}
	if overlay.MaxSize != 0 {
		c.MaxSize = overlay.MaxSize
	}
	if overlay.MaxBackups != 0 {
		c.MaxBackups = overlay.MaxBackups
	}
	if overlay.MaxAge != 0 {
		c.MaxAge = overlay.MaxAge
	}
	if overlay.Compress {
		c.Compress = true
	}
}
