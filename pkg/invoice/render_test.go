package invoice

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestRenderPNGDimensions(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	doc := BuildDocument(sampleInvoice(), nil, frozenNow)
	data, err := r.RenderPNG(doc)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode rendered png: %v", err)
	}
	if got := img.Bounds().Dx(); got != doc.Width {
		t.Fatalf("png width = %d, want %d", got, doc.Width)
	}
	if got := img.Bounds().Dy(); got != doc.Height {
		t.Fatalf("png height = %d, want %d", got, doc.Height)
	}
}

func TestRenderPNGDeterministic(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	logo := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			logo.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}

	first, err := r.RenderPNG(BuildDocument(sampleInvoice(), logo, frozenNow))
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := r.RenderPNG(BuildDocument(sampleInvoice(), logo, frozenNow))
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("identical inputs produced different bytes (%d vs %d)", len(first), len(second))
	}
}

func TestRenderPNGWordmarkFallback(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	data, err := r.RenderPNG(BuildDocument(sampleInvoice(), nil, frozenNow))
	if err != nil {
		t.Fatalf("render without logo: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// The wordmark tile fills the logo box with the accent color.
	c := color.NRGBAModel.Convert(img.At(Padding+10, Padding+10)).(color.NRGBA)
	if c.R != colorAccent.R || c.G != colorAccent.G || c.B != colorAccent.B {
		t.Fatalf("logo box pixel = %+v, want accent %+v", c, colorAccent)
	}
}
