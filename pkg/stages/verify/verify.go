// Package verify implements the stage that checks every read strategy
// returns exactly the bytes on disk before anything is timed.
package verify

import (
	"context"
	"fmt"
	"time"

	"github.com/user/readbench/pkg/pipeline"
	"github.com/user/readbench/pkg/ports"
	"github.com/user/readbench/pkg/wholefile"
)

// MismatchError reports a strategy whose result differs from the reference read.
type MismatchError struct {
	Strategy string
	WantLen  int
	GotLen   int
	Offset   int // First differing byte, or the shorter length
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("strategy %s: got %d bytes, want %d (first difference at offset %d)",
		e.Strategy, e.GotLen, e.WantLen, e.Offset)
}

// Stage reads the file with wholefile.Read and compares each strategy
// against that reference.
type Stage struct {
	reference wholefile.ReadFunc
	logger    ports.Logger
}

// NewStage creates a new verify stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		reference: wholefile.Read,
		logger:    logger.WithComponent("verify"),
	}
}

// Execute performs the reference read and, if requested, the comparison.
// Open failures are returned wrapped, so callers can still match
// *wholefile.FileOpenError with errors.As.
func (s *Stage) Execute(ctx context.Context, input pipeline.VerifyInput) (pipeline.VerifyResult, error) {
	result := pipeline.VerifyResult{}

	want, err := s.reference(input.Path)
	if err != nil {
		return result, fmt.Errorf("reference read: %w", err)
	}
	result.Size = int64(len(want))

	if !input.Compare {
		return result, nil
	}

	for _, strategy := range input.Strategies {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		start := time.Now()
		got, err := strategy.Read(input.Path)
		elapsed := time.Since(start)
		if err != nil {
			return result, fmt.Errorf("strategy %s: %w", strategy.Name, err)
		}
		if offset, ok := firstDifference(want, got); !ok {
			return result, &MismatchError{
				Strategy: strategy.Name,
				WantLen:  len(want),
				GotLen:   len(got),
				Offset:   offset,
			}
		}

		s.logger.Debug("%s read %d bytes", strategy.Name, len(got))
		result.Checks = append(result.Checks, pipeline.ReadCheck{
			Strategy: strategy.Name,
			Bytes:    len(got),
			Elapsed:  elapsed,
		})
	}

	return result, nil
}

// firstDifference returns the first offset at which a and b differ and
// false, or 0 and true when they are identical.
func firstDifference(a, b []byte) (int, bool) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i, false
		}
	}
	if len(a) != len(b) {
		return n, false
	}
	return 0, true
}
