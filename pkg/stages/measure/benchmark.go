package measure

import (
	"flag"
	"fmt"
	"sync"
	"testing"

	"github.com/user/readbench/pkg/pipeline"
)

// BenchmarkFunc runs f as a benchmark for the given bench time.
type BenchmarkFunc func(bt pipeline.BenchTime, f func(b *testing.B)) (testing.BenchmarkResult, error)

var (
	benchMu   sync.Mutex
	benchInit sync.Once
)

// RunBenchmark runs f with testing.Benchmark. testing.Benchmark reads its
// duration from the test.benchtime flag, so the flag is registered and set
// before each call; calls are serialized because the flag is global.
func RunBenchmark(bt pipeline.BenchTime, f func(b *testing.B)) (testing.BenchmarkResult, error) {
	benchMu.Lock()
	defer benchMu.Unlock()

	benchInit.Do(testing.Init)
	if err := flag.Set("test.benchtime", bt.String()); err != nil {
		return testing.BenchmarkResult{}, fmt.Errorf("set bench time: %w", err)
	}
	return testing.Benchmark(f), nil
}
