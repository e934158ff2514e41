package snapshots

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/autoxela/navigator/pkg/navigation"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type routeFile struct {
	Routes []navigation.Route `toml:"routes" yaml:"routes"`
}

// Load reads a route file and builds a table with the same validation as
// the recorded snapshots. Files ending in .yaml or .yml are decoded as
// YAML; anything else is TOML with [[routes]] entries.
func Load(path string) (*navigation.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routes: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Parse builds a table from TOML route file content.
func Parse(data []byte) (*navigation.Table, error) {
	var f routeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse routes: %w", err)
	}
	return build(f)
}

// ParseYAML builds a table from YAML route file content.
func ParseYAML(data []byte) (*navigation.Table, error) {
	var f routeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse routes: %w", err)
	}
	return build(f)
}

func build(f routeFile) (*navigation.Table, error) {
	t, err := navigation.NewTable(f.Routes...)
	if err != nil {
		return nil, fmt.Errorf("validate routes: %w", err)
	}
	return t, nil
}
