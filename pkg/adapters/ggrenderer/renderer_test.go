package ggrenderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/user/readbench/pkg/ports"
)

func TestRenderer_CreateCanvas(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(100, 80, color.White)
	bounds := canvas.ToImage().Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("expected 100x80, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestCanvas_DrawRect(t *testing.T) {
	r := New()
	canvas := r.CreateCanvas(50, 50, color.White)

	red := color.RGBA{R: 255, A: 255}
	canvas.DrawRect(10, 10, 20, 20, red)

	got := color.RGBAModel.Convert(canvas.ToImage().At(20, 20)).(color.RGBA)
	if got != red {
		t.Errorf("expected %v inside rect, got %v", red, got)
	}
	corner := color.RGBAModel.Convert(canvas.ToImage().At(0, 0)).(color.RGBA)
	if corner != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected white background, got %v", corner)
	}
}

func TestCanvas_MeasureText(t *testing.T) {
	canvas := New().CreateCanvas(200, 50, color.White)

	short, _ := canvas.MeasureText("ab")
	long, _ := canvas.MeasureText("abcdef")

	if short <= 0 || long <= short {
		t.Errorf("expected widths to grow with text, got %v and %v", short, long)
	}

	canvas.DrawText("stdio", 100, 25, ports.TextStyle{Color: color.Black, Align: ports.AlignCenter})
}

func TestRenderer_EncodePNG(t *testing.T) {
	r := New()
	img := image.NewRGBA(image.Rect(0, 0, 30, 20))

	data, err := r.EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Bounds().Dx() != 30 || decoded.Bounds().Dy() != 20 {
		t.Errorf("expected 30x20, got %v", decoded.Bounds())
	}
}
