package ports

import (
	"image"
	"image/color"
)

// Renderer creates drawing canvases and encodes the result.
type Renderer interface {
	// CreateCanvas creates a canvas filled with the background color.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)
}

// Canvas provides the drawing operations needed for charts.
type Canvas interface {
	DrawRect(x, y, w, h int, c color.Color)
	DrawLine(x1, y1, x2, y2 int, c color.Color, width float64)
	DrawText(text string, x, y int, style TextStyle)
	MeasureText(text string) (width, height float64)
	ToImage() image.Image
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	Color color.Color
	Align TextAlign
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)
