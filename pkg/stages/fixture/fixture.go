// Package fixture implements the stage that creates the benchmark input file.
package fixture

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/user/readbench/pkg/pipeline"
	"github.com/user/readbench/pkg/ports"
)

const lineLength = 80

// Stage generates a deterministic text file when the target does not exist.
// Existing files are never touched.
type Stage struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewStage creates a new fixture stage.
func NewStage(fs ports.FileSystem, logger ports.Logger) *Stage {
	return &Stage{
		fs:     fs,
		logger: logger.WithComponent("fixture"),
	}
}

// Execute ensures input.Path exists.
func (s *Stage) Execute(ctx context.Context, input pipeline.FixtureInput) (pipeline.FixtureResult, error) {
	result := pipeline.FixtureResult{Path: input.Path}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	exists, err := s.fs.Exists(input.Path)
	if err != nil {
		return result, fmt.Errorf("check %s: %w", input.Path, err)
	}
	if exists {
		size, err := s.fs.Size(input.Path)
		if err != nil {
			return result, fmt.Errorf("stat %s: %w", input.Path, err)
		}
		s.logger.Debug("Using existing file %s", input.Path)
		result.Size = size
		return result, nil
	}

	if input.Size < 0 {
		return result, fmt.Errorf("invalid fixture size %d", input.Size)
	}

	s.logger.Debug("Creating fixture %s (%d bytes)", input.Path, input.Size)
	if err := s.fs.WriteFile(input.Path, Generate(input.Size, input.Seed)); err != nil {
		return result, fmt.Errorf("write fixture: %w", err)
	}

	result.Size = input.Size
	result.Created = true
	return result, nil
}

// Generate returns size bytes of lowercase text broken into lines.
// The same size and seed always produce the same content.
func Generate(size, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	data := make([]byte, size)
	for i := range data {
		if (i+1)%(lineLength+1) == 0 {
			data[i] = '\n'
			continue
		}
		data[i] = byte('a' + r.Intn(26))
	}
	return data
}
