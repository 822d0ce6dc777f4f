package invoice

import "image"

// The layout pass emits a flat list of positioned draw commands instead of
// touching a drawing surface. This keeps every pixel decision testable and
// lets any raster backend consume the result.

// Op identifies the kind of draw command.
type Op uint8

const (
	OpFill  Op = iota // fill the W×H region at X,Y with Color
	OpRect            // stroke a W×H border at X,Y
	OpLine            // line from X,Y to X+W,Y+H
	OpText            // draw Text anchored at X,Y per Align
	OpImage           // draw Img scaled into the W×H box at X,Y
)

// Align controls the horizontal anchor of a text command.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

var (
	colorWhite  = Color{255, 255, 255}
	colorInk    = Color{33, 33, 33}
	colorMuted  = Color{117, 117, 117}
	colorAccent = Color{121, 85, 72}
	colorBorder = Color{224, 224, 224}
)

// Font selects size and weight for a text command.
type Font struct {
	Size float64
	Bold bool
}

// Command is one positioned draw operation.
type Command struct {
	Op     Op
	X, Y   float64
	W, H   float64
	Text   string
	Align  Align
	Font   Font
	Color  Color
	Stroke float64
	Img    image.Image
}

// Document is the fully measured invoice: a canvas size plus the ordered
// command list that fills it.
type Document struct {
	Width    int
	Height   int
	Commands []Command
}

func (d *Document) fill(x, y, w, h float64, c Color) {
	d.Commands = append(d.Commands, Command{Op: OpFill, X: x, Y: y, W: w, H: h, Color: c})
}

func (d *Document) rect(x, y, w, h, stroke float64, c Color) {
	d.Commands = append(d.Commands, Command{Op: OpRect, X: x, Y: y, W: w, H: h, Stroke: stroke, Color: c})
}

func (d *Document) line(x1, y1, x2, y2, stroke float64, c Color) {
	d.Commands = append(d.Commands, Command{Op: OpLine, X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Stroke: stroke, Color: c})
}

func (d *Document) text(x, y float64, s string, f Font, a Align, c Color) {
	d.Commands = append(d.Commands, Command{Op: OpText, X: x, Y: y, Text: s, Font: f, Align: a, Color: c})
}

func (d *Document) image(x, y, w, h float64, img image.Image) {
	d.Commands = append(d.Commands, Command{Op: OpImage, X: x, Y: y, W: w, H: h, Img: img})
}
