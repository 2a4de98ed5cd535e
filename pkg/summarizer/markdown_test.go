package summarizer

import (
	"strings"
	"testing"
	"time"
)

func testSummary() *Summary {
	return &Summary{
		RunID:       "6f1c2a7e-1b0d-4c55-9a34-0f6f5e1d2c3b",
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		File: FileInfo{
			Path:      "read_file.txt",
			Size:      1024 * 1024,
			Generated: true,
		},
		Settings: Settings{
			BenchTime: "500ms",
			Count:     5,
			Verified:  true,
			GoVersion: "go1.24.7",
			OS:        "linux",
			Arch:      "amd64",
		},
		Results: []Result{
			{Strategy: "mmap", MeanNs: 150000, MedianNs: 149000, MinNs: 140000, MaxNs: 160000, StdDevNs: 5000, MBPerSec: 6990.51, AllocsPerOp: 2, BytesPerOp: 1048624, Relative: 1},
			{Strategy: "stdio", MeanNs: 300000, MBPerSec: 3495.25, AllocsPerOp: 2, BytesPerOp: 1048600, Relative: 2},
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	formatter := NewMarkdownFormatter()

	result := formatter.Format(testSummary())

	checks := []string{
		"# Benchmark Summary",
		"2024-01-15T10:30:00Z",
		"6f1c2a7e-1b0d-4c55-9a34-0f6f5e1d2c3b",
		"`read_file.txt`",
		"1.00 MB (1048576 bytes)",
		"| Generated Fixture | Yes |",
		"| Bench Time | 500ms |",
		"| Runs per Strategy | 5 |",
		"| Verified | Yes |",
		"linux/amd64",
		"| 1 | mmap | 150.00 µs |",
		"| 2 | stdio | 300.00 µs |",
		"6990.51",
		"2.00x",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q\n%s", check, result)
		}
	}
}

func TestMarkdownFormatter_Verification(t *testing.T) {
	summary := testSummary()
	summary.Checks = []Check{
		{Strategy: "stdio", Bytes: 1048576, Elapsed: 1500 * time.Nanosecond},
		{Strategy: "mmap", Bytes: 1048576, Elapsed: 2 * time.Millisecond},
	}

	result := NewMarkdownFormatter().Format(summary)

	checks := []string{
		"## Verification",
		"| Strategy | Bytes | Read Time |",
		"| stdio | 1048576 | 1.50 µs |",
		"| mmap | 1048576 | 2.00 ms |",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q\n%s", check, result)
		}
	}
	if strings.Index(result, "## Verification") > strings.Index(result, "## Results") {
		t.Error("expected verification before results")
	}
}

func TestMarkdownFormatter_NoChecks(t *testing.T) {
	result := NewMarkdownFormatter().Format(testSummary())

	if strings.Contains(result, "## Verification") {
		t.Errorf("expected no verification section without checks\n%s", result)
	}
}

func TestMarkdownFormatter_NoResults(t *testing.T) {
	s := testSummary()
	s.Results = nil

	result := NewMarkdownFormatter().Format(s)

	if !strings.Contains(result, "No results") {
		t.Error("expected 'No results' placeholder")
	}
	if strings.Contains(result, "| # |") {
		t.Error("expected no results table")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Benchmark Summary": "ベンチマークサマリー",
			"Strategy":          "戦略",
			"Yes":               "はい",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(testSummary())

	for _, want := range []string{"ベンチマークサマリー", "戦略", "はい"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected translated %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(testSummary())

	if !strings.Contains(result, "Generated by readbench v1.2.0") {
		t.Error("expected output to contain version footer")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
