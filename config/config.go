// Package config provides configuration loading and access for the sampler
// tools. Presets live in YAML: embedded defaults first, then an optional user
// file merged over them.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all generation tool parameters.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	Output     OutputConfig     `yaml:"output"`
}

// GenerationConfig holds the parameters of one distribution run.
type GenerationConfig struct {
	Dim      int     `yaml:"dim"`      // Point dimension: 2, 3 or 4
	Radius   float64 `yaml:"radius"`   // Disk radius; absolute unless Relative
	Relative bool    `yaml:"relative"` // Radius is relative to sqrt(2)/2
	Periodic bool    `yaml:"periodic"` // Toroidal domain
	Seed     int64   `yaml:"seed"`     // Base random seed; run i uses Seed+i
	Runs     int     `yaml:"runs"`     // Number of independent runs
}

// OutputConfig holds output settings.
type OutputConfig struct {
	Dir   string `yaml:"dir"`   // CSV output directory (empty = no files)
	Stats bool   `yaml:"stats"` // Print separation statistics per run
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	return cfg, nil
}

// Validate rejects configurations the generator cannot run. Checked up front
// so no run starts from a bad preset.
func (c *Config) Validate() error {
	g := &c.Generation
	if g.Dim < 2 || g.Dim > 4 {
		return fmt.Errorf("config: dim %d not supported (want 2, 3 or 4)", g.Dim)
	}
	if g.Relative {
		if g.Radius <= 0 || g.Radius > 1 {
			return fmt.Errorf("config: relative radius %v outside (0, 1]", g.Radius)
		}
	} else if g.Radius <= 0 || g.Radius > math.Sqrt2/2 {
		return fmt.Errorf("config: radius %v outside (0, %v]", g.Radius, math.Sqrt2/2)
	}
	if g.Runs < 1 {
		return fmt.Errorf("config: runs %d must be positive", g.Runs)
	}
	return nil
}
