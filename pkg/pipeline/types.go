package pipeline

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/user/readbench/pkg/wholefile"
)

// =============================================================================
// Fixture Stage Types
// =============================================================================

// FixtureInput describes the file to generate when the target is missing.
type FixtureInput struct {
	Path string
	Size int64 // Bytes to generate
	Seed int64 // Seed for the generated content
}

// FixtureResult reports what the fixture stage did.
type FixtureResult struct {
	Path    string
	Size    int64
	Created bool // False when the file already existed
}

// =============================================================================
// Verify Stage Types
// =============================================================================

// VerifyInput lists the strategies to cross-check against the reference read.
type VerifyInput struct {
	Path       string
	Strategies []wholefile.Strategy
	// Compare enables the cross-strategy comparison. When false only the
	// reference read is performed, which still surfaces open failures and
	// determines the file size.
	Compare bool
}

// VerifyResult contains the reference size and one check per strategy.
type VerifyResult struct {
	Size   int64
	Checks []ReadCheck
}

// ReadCheck records a single verification read.
type ReadCheck struct {
	Strategy string
	Bytes    int
	Elapsed  time.Duration
}

// =============================================================================
// Measure Stage Types
// =============================================================================

// BenchTime mirrors go test's -benchtime: either a duration or a fixed
// iteration count.
type BenchTime struct {
	Duration   time.Duration
	Iterations int // Used instead of Duration when > 0
}

// MeasureInput contains the parameters for benchmarking.
type MeasureInput struct {
	Path       string
	Size       int64
	Strategies []wholefile.Strategy
	BenchTime  BenchTime
	Count      int // Benchmark runs per strategy
}

// MeasureResult contains per-strategy results in input order.
type MeasureResult struct {
	Results []StrategyResult
}

// StrategyResult aggregates all runs of one strategy.
type StrategyResult struct {
	Strategy string
	Runs     []RunSample
	Stats    Stats
}

// RunSample is a single testing.Benchmark run.
type RunSample struct {
	Iterations  int
	NsPerOp     float64
	MBPerSec    float64
	AllocsPerOp int64
	BytesPerOp  int64
}

// Stats summarizes the ns/op of a strategy's runs.
type Stats struct {
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64

	MBPerSec    float64 // Mean throughput
	AllocsPerOp int64   // From the last run
	BytesPerOp  int64   // From the last run
}

// FormatNs formats a nanosecond value with a unit suited to its size.
func FormatNs(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.2f s", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.2f ms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2f µs", ns/1e3)
	default:
		return fmt.Sprintf("%.0f ns", ns)
	}
}

// =============================================================================
// Chart Stage Types
// =============================================================================

// ChartInput contains the results to plot.
type ChartInput struct {
	Title   string
	Results []StrategyResult
	Width   int
	Height  int
	Theme   ChartTheme
}

// ChartTheme holds chart colors.
type ChartTheme struct {
	BackgroundColor color.Color
	BarColor        color.Color
	FastestColor    color.Color
	TextColor       color.Color
	AxisColor       color.Color
}

// DefaultChartTheme returns the default chart colors.
func DefaultChartTheme() ChartTheme {
	return ChartTheme{
		BackgroundColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BarColor:        color.RGBA{R: 96, G: 125, B: 139, A: 255},
		FastestColor:    color.RGBA{R: 74, G: 222, B: 128, A: 255}, // #4ade80
		TextColor:       color.RGBA{R: 33, G: 33, B: 33, A: 255},
		AxisColor:       color.RGBA{R: 180, G: 180, B: 180, A: 255}, // #b4b4b4
	}
}

// ChartResult contains the encoded chart.
type ChartResult struct {
	PNG []byte
}

// String formats the bench time the way go test's -benchtime flag accepts it.
func (b BenchTime) String() string {
	if b.Iterations > 0 {
		return fmt.Sprintf("%dx", b.Iterations)
	}
	return b.Duration.String()
}

// ParseBenchTime parses "1s", "250ms" or "100x".
func ParseBenchTime(s string) (BenchTime, error) {
	s = strings.TrimSpace(s)
	if n, ok := strings.CutSuffix(s, "x"); ok {
		iterations, err := strconv.Atoi(n)
		if err != nil || iterations <= 0 {
			return BenchTime{}, fmt.Errorf("invalid iteration count %q", s)
		}
		return BenchTime{Iterations: iterations}, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return BenchTime{}, fmt.Errorf("invalid bench time %q: %w", s, err)
	}
	if d <= 0 {
		return BenchTime{}, fmt.Errorf("bench time must be positive: %q", s)
	}
	return BenchTime{Duration: d}, nil
}
