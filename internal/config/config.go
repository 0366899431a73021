package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// RunConfig configures one meshctl run: the part count and topological
// dimension of the simulated mesh, which geometry kernel to snap onto, how
// many ghost layers to plan around the partition boundary, and the admin
// HTTP surface. meshctl run reads only Geometry and CylinderRadius (its demo
// mesh fixes the part count and dimension), meshctl admin reads only
// AdminAddr and CorsOrigins; Parts, Dim, GhostLayers, and LogLevel are
// validated but not read by either command.
type RunConfig struct {
	Parts int `toml:"parts"`
	Dim   int `toml:"dim"`

	Geometry       string  `toml:"geometry"`
	CylinderRadius float64 `toml:"cylinder_radius"`

	GhostLayers int `toml:"ghost_layers"`

	LogLevel    string   `toml:"log_level"`
	AdminAddr   string   `toml:"admin_addr"`
	CorsOrigins []string `toml:"cors_origins"`
}

func LoadRunConfig(path string) (RunConfig, error) {
	var cfg RunConfig
	if err := loadToml(path, &cfg); err != nil {
		return RunConfig{}, err
	}
	applyDefaults(&cfg)
	if err := ValidateRunConfig(cfg); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// DefaultRunConfig returns a RunConfig with every field defaulted, for
// callers that want to run against the built-in demo without a config file.
func DefaultRunConfig() RunConfig {
	var cfg RunConfig
	applyDefaults(&cfg)
	return cfg
}

func applyDefaults(cfg *RunConfig) {
	if cfg.Parts == 0 {
		cfg.Parts = 2
	}
	if cfg.Dim == 0 {
		cfg.Dim = 2
	}
	if cfg.Geometry == "" {
		cfg.Geometry = "planar"
	}
	if cfg.GhostLayers == 0 {
		cfg.GhostLayers = 1
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AdminAddr == "" {
		cfg.AdminAddr = ":9200"
	}
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateRunConfig(cfg RunConfig) error {
	if cfg.Parts < 1 {
		return fmt.Errorf("run config: parts must be >= 1, got %d", cfg.Parts)
	}
	if cfg.Dim < 0 || cfg.Dim > 3 {
		return fmt.Errorf("run config: dim must be 0..3, got %d", cfg.Dim)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Geometry)) {
	case "planar", "cylinder":
	default:
		return fmt.Errorf("run config: unknown geometry %q", cfg.Geometry)
	}
	if cfg.GhostLayers < 0 {
		return fmt.Errorf("run config: ghost_layers must be >= 0, got %d", cfg.GhostLayers)
	}
	if strings.TrimSpace(cfg.AdminAddr) == "" {
		return fmt.Errorf("run config: admin_addr is required")
	}
	return nil
}
