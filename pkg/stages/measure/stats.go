package measure

import (
	"math"
	"slices"
	"testing"

	"github.com/user/readbench/pkg/pipeline"
)

// sampleFrom converts a benchmark result into a run sample.
func sampleFrom(r testing.BenchmarkResult) pipeline.RunSample {
	sample := pipeline.RunSample{
		Iterations:  r.N,
		AllocsPerOp: r.AllocsPerOp(),
		BytesPerOp:  r.AllocedBytesPerOp(),
	}
	if r.N > 0 {
		sample.NsPerOp = float64(r.T.Nanoseconds()) / float64(r.N)
	}
	if r.Bytes > 0 && r.T > 0 {
		sample.MBPerSec = float64(r.Bytes) * float64(r.N) / 1e6 / r.T.Seconds()
	}
	return sample
}

// Summarize computes ns/op statistics over runs. The standard deviation is
// the sample deviation and is zero for fewer than two runs.
func Summarize(runs []pipeline.RunSample) pipeline.Stats {
	if len(runs) == 0 {
		return pipeline.Stats{}
	}

	values := make([]float64, len(runs))
	var sum, throughput float64
	for i, r := range runs {
		values[i] = r.NsPerOp
		sum += r.NsPerOp
		throughput += r.MBPerSec
	}
	slices.Sort(values)

	n := float64(len(values))
	stats := pipeline.Stats{
		Mean:        sum / n,
		Min:         values[0],
		Max:         values[len(values)-1],
		MBPerSec:    throughput / n,
		AllocsPerOp: runs[len(runs)-1].AllocsPerOp,
		BytesPerOp:  runs[len(runs)-1].BytesPerOp,
	}

	mid := len(values) / 2
	if len(values)%2 == 0 {
		stats.Median = (values[mid-1] + values[mid]) / 2
	} else {
		stats.Median = values[mid]
	}

	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := v - stats.Mean
			sq += d * d
		}
		stats.StdDev = math.Sqrt(sq / (n - 1))
	}

	return stats
}
