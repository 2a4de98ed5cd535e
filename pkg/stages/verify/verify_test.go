package verify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/readbench/pkg/adapters/logger"
	"github.com/user/readbench/pkg/pipeline"
	"github.com/user/readbench/pkg/wholefile"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "read_file.txt")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

func TestStage_AllStrategiesAgree(t *testing.T) {
	path := writeFile(t, []byte("the quick brown fox\n"))
	stage := NewStage(logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.VerifyInput{
		Path:       path,
		Strategies: wholefile.Strategies(),
		Compare:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Size != 20 {
		t.Errorf("expected size 20, got %d", result.Size)
	}
	if len(result.Checks) != len(wholefile.Strategies()) {
		t.Errorf("expected %d checks, got %d", len(wholefile.Strategies()), len(result.Checks))
	}
	for _, c := range result.Checks {
		if c.Bytes != 20 {
			t.Errorf("%s: expected 20 bytes, got %d", c.Strategy, c.Bytes)
		}
	}
}

func TestStage_CompareDisabled(t *testing.T) {
	path := writeFile(t, []byte("hello"))
	stage := NewStage(logger.NewNoop())

	result, err := stage.Execute(context.Background(), pipeline.VerifyInput{
		Path:       path,
		Strategies: wholefile.Strategies(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Size != 5 {
		t.Errorf("expected size 5, got %d", result.Size)
	}
	if len(result.Checks) != 0 {
		t.Errorf("expected no checks, got %d", len(result.Checks))
	}
}

func TestStage_MissingFile(t *testing.T) {
	stage := NewStage(logger.NewNoop())

	_, err := stage.Execute(context.Background(), pipeline.VerifyInput{
		Path:    filepath.Join(t.TempDir(), "missing.txt"),
		Compare: true,
	})

	var openErr *wholefile.FileOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("expected *wholefile.FileOpenError, got %v", err)
	}
}

func TestStage_Mismatch(t *testing.T) {
	path := writeFile(t, []byte("hello"))
	stage := NewStage(logger.NewNoop())

	broken := wholefile.Strategy{
		Name: "broken",
		Read: func(path string) ([]byte, error) {
			return []byte("help"), nil
		},
	}

	_, err := stage.Execute(context.Background(), pipeline.VerifyInput{
		Path:       path,
		Strategies: []wholefile.Strategy{broken},
		Compare:    true,
	})

	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *MismatchError, got %v", err)
	}
	if mismatch.Strategy != "broken" || mismatch.Offset != 3 {
		t.Errorf("unexpected mismatch %+v", mismatch)
	}
}

func TestStage_StrategyError(t *testing.T) {
	path := writeFile(t, []byte("hello"))
	stage := NewStage(logger.NewNoop())

	failing := wholefile.Strategy{
		Name: "failing",
		Read: func(path string) ([]byte, error) {
			return nil, errors.New("boom")
		},
	}

	_, err := stage.Execute(context.Background(), pipeline.VerifyInput{
		Path:       path,
		Strategies: []wholefile.Strategy{failing},
		Compare:    true,
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestFirstDifference(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		offset int
		equal  bool
	}{
		{"equal", "abc", "abc", 0, true},
		{"both empty", "", "", 0, true},
		{"differs", "abc", "abd", 2, false},
		{"shorter", "abc", "ab", 2, false},
		{"longer", "ab", "abc", 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, equal := firstDifference([]byte(tt.a), []byte(tt.b))
			if offset != tt.offset || equal != tt.equal {
				t.Errorf("got (%d, %v), want (%d, %v)", offset, equal, tt.offset, tt.equal)
			}
		})
	}
}
