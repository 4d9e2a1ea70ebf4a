package invoicelayout

// RGBColor represents an RGB color value.
type RGBColor struct {
	R, G, B int
}

// FontSpec defines font properties for text rendering.
type FontSpec struct {
	Family string
	Style  string  // "", "B"
	Size   float64 // in points
}

// Horizontal alignment values for text instructions.
const (
	AlignLeft   = "L"
	AlignCenter = "C"
	AlignRight  = "R"
)

// Page is one fixed-size output page. Width and Height are in points so a
// renderer needs no extra context to reproduce the page.
type Page struct {
	Number       int // 1-based
	Width        float64
	Height       float64
	Instructions []Instruction
}

// Instruction is a single positioned draw primitive. Renderers switch on
// the concrete type; the set is closed.
type Instruction interface {
	instruction()
}

// TextInstruction places a text block. MaxWidth bounds wrapping; Y is the
// top edge of the block.
type TextInstruction struct {
	Text       string
	X, Y       float64
	Font       FontSpec
	Align      string // AlignLeft, AlignCenter, AlignRight
	MaxWidth   float64
	LineHeight float64
	Color      RGBColor
}

func (TextInstruction) instruction() {}

// RectInstruction draws a rectangle, optionally filled.
type RectInstruction struct {
	X, Y, Width, Height float64
	Stroke              *RGBColor
	StrokeWidth         float64
	Fill                *RGBColor
}

func (RectInstruction) instruction() {}

// LineInstruction draws a straight rule.
type LineInstruction struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          RGBColor
}

func (LineInstruction) instruction() {}

// ImageInstruction reserves a box for an image. The engine only positions
// the box; decoding and scaling happen in the renderer.
type ImageInstruction struct {
	Path                string
	X, Y, Width, Height float64
}

func (ImageInstruction) instruction() {}

// BarcodeInstruction reserves a square box for a machine-readable code.
// Format is one of the Barcode* constants.
type BarcodeInstruction struct {
	Data   string
	Format string
	X, Y   float64
	Size   float64
}

func (BarcodeInstruction) instruction() {}
