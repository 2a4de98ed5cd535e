package summarizer

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/user/readbench/pkg/mocks"
	"github.com/user/readbench/pkg/pipeline"
)

func TestNewSummary(t *testing.T) {
	s := NewSummary()

	if _, err := uuid.Parse(s.RunID); err != nil {
		t.Errorf("expected a valid run ID, got %q", s.RunID)
	}
	if s.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
	if s.Settings.GoVersion == "" || s.Settings.OS == "" {
		t.Error("expected runtime environment to be set")
	}
	if NewSummary().RunID == s.RunID {
		t.Error("expected distinct run IDs")
	}
}

func TestBuilder_RanksResults(t *testing.T) {
	summary := NewBuilder().
		WithFile("read_file.txt", 4096, true).
		WithSettings("1s", 3, true).
		WithResults([]pipeline.StrategyResult{
			{Strategy: "stdio", Stats: pipeline.Stats{Mean: 2000}},
			{Strategy: "mmap", Stats: pipeline.Stats{Mean: 1000}},
			{Strategy: "iter", Stats: pipeline.Stats{Mean: 8000, AllocsPerOp: 4}},
		}).
		Build()

	if summary.File.Path != "read_file.txt" || summary.File.Size != 4096 || !summary.File.Generated {
		t.Errorf("unexpected file info %+v", summary.File)
	}
	if summary.Settings.BenchTime != "1s" || summary.Settings.Count != 3 {
		t.Errorf("unexpected settings %+v", summary.Settings)
	}
	if summary.Settings.GoVersion == "" {
		t.Error("expected WithSettings to keep environment fields")
	}

	want := []struct {
		name     string
		relative float64
	}{
		{"mmap", 1},
		{"stdio", 2},
		{"iter", 8},
	}
	if len(summary.Results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(summary.Results))
	}
	for i, w := range want {
		r := summary.Results[i]
		if r.Strategy != w.name {
			t.Errorf("rank %d: expected %s, got %s", i+1, w.name, r.Strategy)
		}
		if math.Abs(r.Relative-w.relative) > 1e-9 {
			t.Errorf("%s: expected relative %v, got %v", r.Strategy, w.relative, r.Relative)
		}
	}
	if summary.Results[2].AllocsPerOp != 4 {
		t.Error("expected allocation figures to be carried over")
	}
}

func TestBuilder_WithChecks(t *testing.T) {
	summary := NewBuilder().
		WithChecks([]pipeline.ReadCheck{
			{Strategy: "stdio", Bytes: 5, Elapsed: 1500 * time.Nanosecond},
			{Strategy: "mmap", Bytes: 5, Elapsed: 2 * time.Microsecond},
		}).
		Build()

	if len(summary.Checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(summary.Checks))
	}
	if summary.Checks[0].Strategy != "stdio" || summary.Checks[1].Strategy != "mmap" {
		t.Errorf("expected input order, got %+v", summary.Checks)
	}
	if summary.Checks[1].Elapsed != 2*time.Microsecond {
		t.Errorf("unexpected elapsed %v", summary.Checks[1].Elapsed)
	}
}

func TestBuilder_EmptyResults(t *testing.T) {
	summary := NewBuilder().WithResults(nil).Build()
	if len(summary.Results) != 0 {
		t.Errorf("expected no results, got %d", len(summary.Results))
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string {
		return "summary of " + s.File.Path
	}), fs)

	summary := NewBuilder().WithFile("a.txt", 5, false).Build()
	if err := w.Write("reports/summary.md", summary); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, ok := fs.GetFile("reports/summary.md")
	if !ok {
		t.Fatal("expected summary to be written")
	}
	if string(data) != "summary of a.txt" {
		t.Errorf("unexpected content %q", data)
	}
}

func TestWriter_WriteError(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.WriteFileFunc = func(path string, data []byte) error {
		return errors.New("read-only")
	}
	w := NewWriter(NewMarkdownFormatter(), fs)

	if err := w.Write("summary.md", NewSummary()); err == nil {
		t.Fatal("expected error")
	}
}
