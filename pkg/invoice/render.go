package invoice

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Renderer rasterizes a Document to PNG bytes. It embeds the Go font family
// so output never depends on host fonts; the same document always encodes to
// the same bytes.
type Renderer struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

// NewRenderer parses the embedded fonts once up front.
func NewRenderer() (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Renderer{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

func (r *Renderer) face(f Font) (font.Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := faceKey{size: f.Size, bold: f.Bold}
	if face, ok := r.faces[key]; ok {
		return face, nil
	}

	src := r.regular
	if f.Bold {
		src = r.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build %.0fpt face: %w", f.Size, err)
	}
	r.faces[key] = face
	return face, nil
}

// RenderPNG replays the document's command list onto a raster context and
// encodes the result as PNG.
func (r *Renderer) RenderPNG(doc *Document) ([]byte, error) {
	dc := gg.NewContext(doc.Width, doc.Height)

	for _, cmd := range doc.Commands {
		if err := r.draw(dc, cmd); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) draw(dc *gg.Context, cmd Command) error {
	switch cmd.Op {
	case OpFill:
		dc.SetRGB255(int(cmd.Color.R), int(cmd.Color.G), int(cmd.Color.B))
		dc.DrawRectangle(cmd.X, cmd.Y, cmd.W, cmd.H)
		dc.Fill()

	case OpRect:
		dc.SetRGB255(int(cmd.Color.R), int(cmd.Color.G), int(cmd.Color.B))
		dc.SetLineWidth(cmd.Stroke)
		dc.DrawRectangle(cmd.X, cmd.Y, cmd.W, cmd.H)
		dc.Stroke()

	case OpLine:
		dc.SetRGB255(int(cmd.Color.R), int(cmd.Color.G), int(cmd.Color.B))
		dc.SetLineWidth(cmd.Stroke)
		dc.DrawLine(cmd.X, cmd.Y, cmd.X+cmd.W, cmd.Y+cmd.H)
		dc.Stroke()

	case OpText:
		face, err := r.face(cmd.Font)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
		dc.SetRGB255(int(cmd.Color.R), int(cmd.Color.G), int(cmd.Color.B))
		var ax float64
		switch cmd.Align {
		case AlignCenter:
			ax = 0.5
		case AlignRight:
			ax = 1
		}
		dc.DrawStringAnchored(cmd.Text, cmd.X, cmd.Y, ax, 0.5)

	case OpImage:
		b := cmd.Img.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			return nil
		}
		dc.Push()
		dc.Translate(cmd.X, cmd.Y)
		dc.Scale(cmd.W/float64(b.Dx()), cmd.H/float64(b.Dy()))
		dc.DrawImage(cmd.Img, 0, 0)
		dc.Pop()

	default:
		return fmt.Errorf("unknown draw op %d", cmd.Op)
	}
	return nil
}
