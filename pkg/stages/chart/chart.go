// Package chart implements the stage that renders benchmark results as a
// horizontal bar chart.
package chart

import (
	"context"
	"fmt"
	"math"

	"github.com/user/readbench/pkg/pipeline"
	"github.com/user/readbench/pkg/ports"
)

const (
	padding   = 16
	titleRow  = 28
	barGap    = 8
	minBarRow = 14
)

// Stage draws one bar per strategy, proportional to its mean ns/op.
// The fastest strategy is highlighted.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new chart stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("chart"),
	}
}

// Execute renders the chart and returns it PNG-encoded.
func (s *Stage) Execute(ctx context.Context, input pipeline.ChartInput) (pipeline.ChartResult, error) {
	result := pipeline.ChartResult{}

	if len(input.Results) == 0 {
		return result, fmt.Errorf("no results to chart")
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	width, height := input.Width, input.Height
	rows := len(input.Results)
	barRow := (height - 2*padding - titleRow - (rows-1)*barGap) / rows
	if barRow < minBarRow {
		return result, fmt.Errorf("chart height %d too small for %d strategies", height, rows)
	}

	theme := input.Theme
	canvas := s.renderer.CreateCanvas(width, height, theme.BackgroundColor)
	textStyle := ports.TextStyle{Color: theme.TextColor}

	canvas.DrawText(input.Title, width/2, padding+titleRow/2, ports.TextStyle{
		Color: theme.TextColor,
		Align: ports.AlignCenter,
	})

	// Label column fits the longest strategy name.
	labelWidth := 0.0
	slowest, fastest := 0.0, math.MaxFloat64
	fastestIdx := 0
	for i, r := range input.Results {
		w, _ := canvas.MeasureText(r.Strategy)
		labelWidth = max(labelWidth, w)
		slowest = max(slowest, r.Stats.Mean)
		if r.Stats.Mean < fastest {
			fastest = r.Stats.Mean
			fastestIdx = i
		}
	}

	valueWidth, _ := canvas.MeasureText(pipeline.FormatNs(slowest))
	barX := padding + int(labelWidth) + barGap
	maxBar := width - barX - padding - int(valueWidth) - barGap
	if maxBar <= 0 {
		return result, fmt.Errorf("chart width %d too small", width)
	}

	top := padding + titleRow
	canvas.DrawLine(barX, top, barX, height-padding, theme.AxisColor, 1)

	for i, r := range input.Results {
		y := top + i*(barRow+barGap)
		barLen := 0
		if slowest > 0 {
			barLen = int(math.Round(float64(maxBar) * r.Stats.Mean / slowest))
		}
		barLen = max(barLen, 1)

		col := theme.BarColor
		if i == fastestIdx {
			col = theme.FastestColor
		}

		canvas.DrawText(r.Strategy, padding, y+barRow/2, textStyle)
		canvas.DrawRect(barX, y, barLen, barRow, col)
		canvas.DrawText(pipeline.FormatNs(r.Stats.Mean), barX+barLen+barGap, y+barRow/2, textStyle)
	}

	data, err := s.renderer.EncodePNG(canvas.ToImage())
	if err != nil {
		return result, fmt.Errorf("encode chart: %w", err)
	}
	s.logger.Debug("Chart rendered: %d bytes", len(data))

	result.PNG = data
	return result, nil
}
