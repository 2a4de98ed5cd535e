// Package orchestrator coordinates the benchmark stages.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/readbench/pkg/pipeline"
	"github.com/user/readbench/pkg/ports"
	"github.com/user/readbench/pkg/wholefile"
)

// Config contains all configuration for a benchmark run.
type Config struct {
	// Input
	Path        string
	CreateSize  int64 // Generate Path with this many bytes if missing; 0 disables
	Seed        int64
	KeepFixture bool // Keep a generated file after the run

	// Measurement
	Strategies []wholefile.Strategy
	BenchTime  pipeline.BenchTime
	Count      int
	Verify     bool

	// Chart
	ChartPath   string // Empty disables the chart
	ChartWidth  int
	ChartHeight int
}

// Orchestrator runs fixture, verify, measure and chart in order.
type Orchestrator struct {
	fixtureStage pipeline.Stage[pipeline.FixtureInput, pipeline.FixtureResult]
	verifyStage  pipeline.Stage[pipeline.VerifyInput, pipeline.VerifyResult]
	measureStage pipeline.Stage[pipeline.MeasureInput, pipeline.MeasureResult]
	chartStage   pipeline.Stage[pipeline.ChartInput, pipeline.ChartResult]
	fs           ports.FileSystem
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	fixtureStage pipeline.Stage[pipeline.FixtureInput, pipeline.FixtureResult],
	verifyStage pipeline.Stage[pipeline.VerifyInput, pipeline.VerifyResult],
	measureStage pipeline.Stage[pipeline.MeasureInput, pipeline.MeasureResult],
	chartStage pipeline.Stage[pipeline.ChartInput, pipeline.ChartResult],
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		fixtureStage: fixtureStage,
		verifyStage:  verifyStage,
		measureStage: measureStage,
		chartStage:   chartStage,
		fs:           fs,
		logger:       logger,
	}
}

// RunResult contains everything needed to build a summary.
type RunResult struct {
	Path           string
	Size           int64
	FixtureCreated bool
	Verified       bool
	Checks         []pipeline.ReadCheck
	Results        []pipeline.StrategyResult
	ChartPNG       []byte
}

// Run executes the complete benchmark.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{Path: config.Path}
	o.logger.Info("Starting benchmark of %s", config.Path)
	o.logger.Info("Strategies: %s", StrategyNames(config.Strategies))

	// 1. Fixture (optional)
	if config.CreateSize > 0 {
		fixture, err := o.fixtureStage.Execute(ctx, pipeline.FixtureInput{
			Path: config.Path,
			Size: config.CreateSize,
			Seed: config.Seed,
		})
		if err != nil {
			o.logger.Error("Failed to prepare fixture: %s", err)
			return result, fmt.Errorf("fixture stage: %w", err)
		}
		result.FixtureCreated = fixture.Created
		if fixture.Created && !config.KeepFixture {
			defer o.removeFixture(config.Path)
		}
	}

	// 2. Reference read and verification
	if config.Verify {
		o.logger.Info("Verifying %d strategies", len(config.Strategies))
	}
	verified, err := o.verifyStage.Execute(ctx, pipeline.VerifyInput{
		Path:       config.Path,
		Strategies: config.Strategies,
		Compare:    config.Verify,
	})
	if err != nil {
		o.logger.Error("Verification failed: %s", err)
		return result, fmt.Errorf("verify stage: %w", err)
	}
	result.Size = verified.Size
	result.Checks = verified.Checks
	result.Verified = config.Verify
	if config.Verify {
		o.logger.Info("Verification passed")
	}
	o.logger.Info("File size: %d bytes", verified.Size)

	// 3. Measure
	o.logger.Info("Measuring %d strategies, %d runs each", len(config.Strategies), config.Count)
	measured, err := o.measureStage.Execute(ctx, pipeline.MeasureInput{
		Path:       config.Path,
		Size:       verified.Size,
		Strategies: config.Strategies,
		BenchTime:  config.BenchTime,
		Count:      config.Count,
	})
	if err != nil {
		o.logger.Error("Measurement failed: %s", err)
		return result, fmt.Errorf("measure stage: %w", err)
	}
	result.Results = measured.Results
	for _, r := range measured.Results {
		o.logger.Info("%s: %.0f ns/op, %.2f MB/s", r.Strategy, r.Stats.Mean, r.Stats.MBPerSec)
	}

	// 4. Chart (optional)
	if config.ChartPath != "" {
		o.logger.Info("Rendering chart")
		chart, err := o.chartStage.Execute(ctx, pipeline.ChartInput{
			Title:   chartTitle(config.Path, verified.Size),
			Results: measured.Results,
			Width:   config.ChartWidth,
			Height:  config.ChartHeight,
			Theme:   pipeline.DefaultChartTheme(),
		})
		if err != nil {
			o.logger.Error("Failed to render chart: %s", err)
			return result, fmt.Errorf("chart stage: %w", err)
		}
		if err := o.fs.WriteFile(config.ChartPath, chart.PNG); err != nil {
			return result, fmt.Errorf("write chart: %w", err)
		}
		result.ChartPNG = chart.PNG
		o.logger.Info("Chart saved to %s", config.ChartPath)
	}

	o.logger.Info("Benchmark completed")
	return result, nil
}

func (o *Orchestrator) removeFixture(path string) {
	if err := o.fs.Remove(path); err != nil {
		o.logger.Warn("Failed to remove fixture %s: %s", path, err)
		return
	}
	o.logger.Debug("Removed generated fixture %s", path)
}

// StrategyNames returns the names of strategies, comma separated.
func StrategyNames(strategies []wholefile.Strategy) string {
	names := make([]string, len(strategies))
	for i, s := range strategies {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

func chartTitle(path string, size int64) string {
	return fmt.Sprintf("%s (%d bytes), mean time per read", path, size)
}
