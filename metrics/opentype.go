package metrics

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	invoicelayout "github.com/lvillar/invoicelayout"
)

// OpenTypeMetrics measures text with embedded Go fonts through the
// x/image shaping stack. The regular face serves all non-bold styles and
// the bold face serves any style containing "B"; the layout engine only
// distinguishes those two weights.
//
// Faces are cached per (weight, size). The cache is an internal detail:
// Height stays deterministic and is safe for concurrent use.
type OpenTypeMetrics struct {
	mu      sync.Mutex
	regular *sfnt.Font
	bold    *sfnt.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	bold bool
	size float64
}

// NewOpenType parses the embedded fonts and returns a ready metrics
// implementation.
func NewOpenType() (*OpenTypeMetrics, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("metrics: parsing regular font: %w", err)
	}
	b, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("metrics: parsing bold font: %w", err)
	}
	return &OpenTypeMetrics{
		regular: reg,
		bold:    b,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

// Height implements TextMetrics. Unmeasurable input (empty text, width <= 0,
// face construction failure) measures as 0.
func (m *OpenTypeMetrics) Height(text string, fs invoicelayout.FontSpec, width float64) float64 {
	if text == "" || width <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	face := m.face(fs)
	if face == nil {
		return 0
	}
	lineH := toPoints(face.Metrics().Height)
	if lineH <= 0 {
		lineH = fs.Size * 1.2
	}
	lines := 0
	for _, ln := range strings.Split(text, "\n") {
		lines += wrapMeasured(face, ln, width)
	}
	return float64(lines) * lineH
}

// face returns a cached face for the requested font, or nil when one
// cannot be built.
func (m *OpenTypeMetrics) face(fs invoicelayout.FontSpec) font.Face {
	size := fs.Size
	if size <= 0 {
		size = 12
	}
	key := faceKey{bold: strings.Contains(fs.Style, "B"), size: size}
	if f, ok := m.faces[key]; ok {
		return f
	}
	src := m.regular
	if key.bold {
		src = m.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 1 px == 1 pt
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	m.faces[key] = f
	return f
}

// wrapMeasured counts the wrapped lines of one paragraph using real string
// widths. Words wider than the column spill rune by rune across lines.
func wrapMeasured(face font.Face, line string, width float64) int {
	words := strings.Fields(line)
	if len(words) == 0 {
		return 1
	}
	space := toPoints(font.MeasureString(face, " "))
	lines, cur := 1, 0.0
	for _, w := range words {
		ww := toPoints(font.MeasureString(face, w))
		if cur > 0 {
			if cur+space+ww <= width {
				cur += space + ww
				continue
			}
			lines++
			cur = 0
		}
		if ww <= width {
			cur = ww
			continue
		}
		cw := 0.0
		for _, r := range w {
			rw := toPoints(font.MeasureString(face, string(r)))
			if cw > 0 && cw+rw > width {
				lines++
				cw = 0
			}
			cw += rw
		}
		cur = cw
	}
	return lines
}

func toPoints(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
