package pipeline

import (
	"testing"
	"time"
)

func TestParseBenchTime(t *testing.T) {
	tests := []struct {
		in      string
		want    BenchTime
		wantErr bool
	}{
		{in: "1s", want: BenchTime{Duration: time.Second}},
		{in: "250ms", want: BenchTime{Duration: 250 * time.Millisecond}},
		{in: "100x", want: BenchTime{Iterations: 100}},
		{in: " 2s ", want: BenchTime{Duration: 2 * time.Second}},
		{in: "0x", wantErr: true},
		{in: "-1s", wantErr: true},
		{in: "fast", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBenchTime(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseBenchTime(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBenchTime_String(t *testing.T) {
	if got := (BenchTime{Iterations: 50}).String(); got != "50x" {
		t.Errorf("expected 50x, got %s", got)
	}
	if got := (BenchTime{Duration: 500 * time.Millisecond}).String(); got != "500ms" {
		t.Errorf("expected 500ms, got %s", got)
	}
}

func TestFormatNs(t *testing.T) {
	tests := []struct {
		ns   float64
		want string
	}{
		{0, "0 ns"},
		{999, "999 ns"},
		{1500, "1.50 µs"},
		{2e6, "2.00 ms"},
		{1.5e9, "1.50 s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNs(tt.ns); got != tt.want {
				t.Errorf("FormatNs(%v) = %q, want %q", tt.ns, got, tt.want)
			}
		})
	}
}
