// Package config provides configuration loading and management.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/user/readbench/pkg/orchestrator"
	"github.com/user/readbench/pkg/pipeline"
	"github.com/user/readbench/pkg/ports"
	"github.com/user/readbench/pkg/wholefile"
)

// DefaultPath is the file benchmarked when none is given.
const DefaultPath = "read_file.txt"

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the full configuration for readbench.
type Config struct {
	// Input
	Path    string        `yaml:"path"`
	Fixture FixtureConfig `yaml:"fixture"`

	// Measurement
	Strategies []string `yaml:"strategies"` // Empty selects the defaults
	BenchTime  string   `yaml:"benchtime"`  // "1s" or "100x"
	Count      int      `yaml:"count"`
	Verify     bool     `yaml:"verify"`

	// Output
	Output OutputConfig `yaml:"output"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// FixtureConfig controls generation of a missing input file.
type FixtureConfig struct {
	Size int64 `yaml:"size"` // 0 disables generation
	Seed int64 `yaml:"seed"`
	Keep bool  `yaml:"keep"`
}

// OutputConfig controls report files.
type OutputConfig struct {
	Summary     string `yaml:"summary"`
	Chart       string `yaml:"chart"`
	ChartWidth  int    `yaml:"chart_width"`
	ChartHeight int    `yaml:"chart_height"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Path: DefaultPath,
		Fixture: FixtureConfig{
			Seed: 1,
		},
		BenchTime: "1s",
		Count:     1,
		Verify:    true,
		Output: OutputConfig{
			ChartWidth:  640,
			ChartHeight: 360,
		},
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
// Unknown keys are rejected.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := wholefile.Read(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("%w: path is required", ErrInvalidConfig)
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidConfig, c.Count)
	}
	if c.Fixture.Size < 0 {
		return fmt.Errorf("%w: fixture size must not be negative", ErrInvalidConfig)
	}
	if _, err := pipeline.ParseBenchTime(c.BenchTime); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := wholefile.Select(c.Strategies); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Output.Chart != "" && (c.Output.ChartWidth <= 0 || c.Output.ChartHeight <= 0) {
		return fmt.Errorf("%w: chart dimensions must be positive", ErrInvalidConfig)
	}
	return nil
}

// LogLevelValue returns the parsed log level.
func (c Config) LogLevelValue() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// ToOrchestratorConfig validates c and converts it to orchestrator.Config.
func (c Config) ToOrchestratorConfig() (orchestrator.Config, error) {
	if err := c.Validate(); err != nil {
		return orchestrator.Config{}, err
	}

	strategies, _ := wholefile.Select(c.Strategies)
	benchTime, _ := pipeline.ParseBenchTime(c.BenchTime)

	return orchestrator.Config{
		Path:        c.Path,
		CreateSize:  c.Fixture.Size,
		Seed:        c.Fixture.Seed,
		KeepFixture: c.Fixture.Keep,

		Strategies: strategies,
		BenchTime:  benchTime,
		Count:      c.Count,
		Verify:     c.Verify,

		ChartPath:   c.Output.Chart,
		ChartWidth:  c.Output.ChartWidth,
		ChartHeight: c.Output.ChartHeight,
	}, nil
}
