package mocks

import (
	"image"
	"image/color"

	"github.com/user/readbench/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	EncodePNGFunc    func(img image.Image) ([]byte, error)

	// Canvases records every canvas created by the default CreateCanvas.
	Canvases []*Canvas
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	c := &Canvas{width: width, height: height}
	m.Canvases = append(m.Canvases, c)
	return c
}

func (m *Renderer) EncodePNG(img image.Image) ([]byte, error) {
	if m.EncodePNGFunc != nil {
		return m.EncodePNGFunc(img)
	}
	return []byte("png"), nil
}

var _ ports.Renderer = (*Renderer)(nil)

// Rect is a rectangle recorded by Canvas.DrawRect.
type Rect struct {
	X, Y, W, H int
	Color      color.Color
}

// Canvas is a mock implementation of ports.Canvas that records draw calls.
type Canvas struct {
	width  int
	height int

	Rects []Rect
	Texts []string
	Lines int
}

func (m *Canvas) DrawRect(x, y, w, h int, c color.Color) {
	m.Rects = append(m.Rects, Rect{X: x, Y: y, W: w, H: h, Color: c})
}

func (m *Canvas) DrawLine(x1, y1, x2, y2 int, c color.Color, width float64) {
	m.Lines++
}

func (m *Canvas) DrawText(text string, x, y int, style ports.TextStyle) {
	m.Texts = append(m.Texts, text)
}

// MeasureText assumes a fixed 7x13 cell per character.
func (m *Canvas) MeasureText(text string) (float64, float64) {
	return float64(7 * len(text)), 13
}

func (m *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.width, m.height))
}

var _ ports.Canvas = (*Canvas)(nil)
