// Package readbench provides a high-level API for benchmarking whole-file
// read strategies.
package readbench

import (
	"context"

	"github.com/user/readbench/pkg/adapters/ggrenderer"
	"github.com/user/readbench/pkg/adapters/osfilesystem"
	"github.com/user/readbench/pkg/config"
	"github.com/user/readbench/pkg/orchestrator"
	"github.com/user/readbench/pkg/ports"
	"github.com/user/readbench/pkg/stages/chart"
	"github.com/user/readbench/pkg/stages/fixture"
	"github.com/user/readbench/pkg/stages/measure"
	"github.com/user/readbench/pkg/stages/verify"
)

// NewOrchestrator wires the default adapters and stages.
func NewOrchestrator(log ports.Logger) *orchestrator.Orchestrator {
	fs := osfilesystem.New()
	return orchestrator.New(
		fixture.NewStage(fs, log),
		verify.NewStage(log),
		measure.NewStage(measure.RunBenchmark, log),
		chart.NewStage(ggrenderer.New(), log),
		fs,
		log,
	)
}

// Run validates cfg and runs the benchmark with the default adapters.
//
// Example:
//
//	cfg := readbench.NewConfigBuilder().
//	    WithPath("big.bin").
//	    WithStrategies("stdio", "mmap").
//	    WithBenchTime("500ms").
//	    Build()
//	result, err := readbench.Run(ctx, cfg, logger.NewNoop())
func Run(ctx context.Context, cfg config.Config, log ports.Logger) (orchestrator.RunResult, error) {
	oc, err := cfg.ToOrchestratorConfig()
	if err != nil {
		return orchestrator.RunResult{}, err
	}
	return NewOrchestrator(log).Run(ctx, oc)
}
