// Package summarizer builds and formats benchmark summaries.
package summarizer

import (
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/user/readbench/pkg/pipeline"
)

// Summary contains all data collected during a benchmark run.
type Summary struct {
	// Metadata
	RunID       string
	GeneratedAt time.Time

	File     FileInfo
	Settings Settings

	// Checks are the verification reads, in strategy order.
	Checks []Check

	// Results ordered fastest first.
	Results []Result
}

// FileInfo describes the file that was read.
type FileInfo struct {
	Path      string
	Size      int64
	Generated bool // Created by the fixture stage for this run
}

// Settings contains the benchmark configuration and environment.
type Settings struct {
	BenchTime string
	Count     int
	Verified  bool
	GoVersion string
	OS        string
	Arch      string
}

// Check records one verification read.
type Check struct {
	Strategy string
	Bytes    int
	Elapsed  time.Duration
}

// Result holds one strategy's statistics.
type Result struct {
	Strategy    string
	MeanNs      float64
	MedianNs    float64
	MinNs       float64
	MaxNs       float64
	StdDevNs    float64
	MBPerSec    float64
	AllocsPerOp int64
	BytesPerOp  int64
	Relative    float64 // Mean divided by the fastest mean; 1.0 for the fastest
}

// NewSummary creates a Summary with a fresh run ID, the current time and
// the runtime environment filled in.
func NewSummary() *Summary {
	return &Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		Settings: Settings{
			GoVersion: runtime.Version(),
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		},
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithFile sets file information.
func (b *Builder) WithFile(path string, size int64, generated bool) *Builder {
	b.summary.File = FileInfo{
		Path:      path,
		Size:      size,
		Generated: generated,
	}
	return b
}

// WithSettings sets the benchmark settings, keeping the environment fields.
func (b *Builder) WithSettings(benchTime string, count int, verified bool) *Builder {
	b.summary.Settings.BenchTime = benchTime
	b.summary.Settings.Count = count
	b.summary.Settings.Verified = verified
	return b
}

// WithChecks records the verification reads.
func (b *Builder) WithChecks(checks []pipeline.ReadCheck) *Builder {
	out := make([]Check, 0, len(checks))
	for _, c := range checks {
		out = append(out, Check{
			Strategy: c.Strategy,
			Bytes:    c.Bytes,
			Elapsed:  c.Elapsed,
		})
	}
	b.summary.Checks = out
	return b
}

// WithResults converts and ranks strategy results.
func (b *Builder) WithResults(results []pipeline.StrategyResult) *Builder {
	out := make([]Result, 0, len(results))
	for _, r := range results {
		out = append(out, Result{
			Strategy:    r.Strategy,
			MeanNs:      r.Stats.Mean,
			MedianNs:    r.Stats.Median,
			MinNs:       r.Stats.Min,
			MaxNs:       r.Stats.Max,
			StdDevNs:    r.Stats.StdDev,
			MBPerSec:    r.Stats.MBPerSec,
			AllocsPerOp: r.Stats.AllocsPerOp,
			BytesPerOp:  r.Stats.BytesPerOp,
		})
	}

	slices.SortStableFunc(out, func(a, b Result) int {
		switch {
		case a.MeanNs < b.MeanNs:
			return -1
		case a.MeanNs > b.MeanNs:
			return 1
		}
		return 0
	})

	if len(out) > 0 && out[0].MeanNs > 0 {
		fastest := out[0].MeanNs
		for i := range out {
			out[i].Relative = out[i].MeanNs / fastest
		}
	}

	b.summary.Results = out
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
