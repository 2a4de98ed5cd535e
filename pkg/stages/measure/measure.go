// Package measure implements the stage that times each read strategy.
package measure

import (
	"context"
	"fmt"
	"testing"

	"github.com/user/readbench/pkg/pipeline"
	"github.com/user/readbench/pkg/ports"
)

// Stage benchmarks every strategy against the same file.
type Stage struct {
	bench  BenchmarkFunc
	logger ports.Logger
}

// NewStage creates a measure stage. A nil bench uses RunBenchmark.
func NewStage(bench BenchmarkFunc, logger ports.Logger) *Stage {
	if bench == nil {
		bench = RunBenchmark
	}
	return &Stage{
		bench:  bench,
		logger: logger.WithComponent("measure"),
	}
}

// Execute runs input.Count benchmarks per strategy, in input order.
func (s *Stage) Execute(ctx context.Context, input pipeline.MeasureInput) (pipeline.MeasureResult, error) {
	result := pipeline.MeasureResult{}

	if len(input.Strategies) == 0 {
		return result, fmt.Errorf("no strategies to measure")
	}
	count := input.Count
	if count <= 0 {
		count = 1
	}

	for _, strategy := range input.Strategies {
		sr := pipeline.StrategyResult{Strategy: strategy.Name}

		for run := 1; run <= count; run++ {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}

			s.logger.Debug("Measuring %s (run %d/%d)", strategy.Name, run, count)

			var readErr error
			read := strategy.Read
			br, err := s.bench(input.BenchTime, func(b *testing.B) {
				b.SetBytes(input.Size)
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := read(input.Path); err != nil {
						readErr = err
						b.FailNow()
					}
				}
			})
			if err != nil {
				return result, fmt.Errorf("benchmark %s: %w", strategy.Name, err)
			}
			if readErr != nil {
				return result, fmt.Errorf("benchmark %s: %w", strategy.Name, readErr)
			}
			if br.N == 0 {
				return result, fmt.Errorf("benchmark %s: no iterations completed", strategy.Name)
			}

			sr.Runs = append(sr.Runs, sampleFrom(br))
		}

		sr.Stats = Summarize(sr.Runs)
		s.logger.Debug("%s: %.0f ns/op, %.2f MB/s", strategy.Name, sr.Stats.Mean, sr.Stats.MBPerSec)
		result.Results = append(result.Results, sr)
	}

	return result, nil
}
