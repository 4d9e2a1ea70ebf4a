package metrics

import (
	"strings"
	"unicode/utf8"

	invoicelayout "github.com/lvillar/invoicelayout"
)

// FixedMetrics is a deterministic TextMetrics with a constant advance per
// rune, independent of font. It exists for hosts without a font stack and
// for tests that need exact, predictable wrap points.
type FixedMetrics struct {
	CharWidth  float64 // advance per rune in points
	LineHeight float64 // height of one wrapped line in points
}

// NewFixed returns a FixedMetrics with the given per-rune advance and line
// height. Non-positive values fall back to 6pt / 14pt.
func NewFixed(charWidth, lineHeight float64) FixedMetrics {
	if charWidth <= 0 {
		charWidth = 6
	}
	if lineHeight <= 0 {
		lineHeight = 14
	}
	return FixedMetrics{CharWidth: charWidth, LineHeight: lineHeight}
}

// Height implements TextMetrics.
func (m FixedMetrics) Height(text string, _ invoicelayout.FontSpec, width float64) float64 {
	if text == "" || width <= 0 || m.CharWidth <= 0 {
		return 0
	}
	perLine := int(width / m.CharWidth)
	if perLine < 1 {
		perLine = 1
	}
	lines := 0
	for _, ln := range strings.Split(text, "\n") {
		lines += wrapCount(ln, perLine)
	}
	return float64(lines) * m.LineHeight
}

// wrapCount is a greedy word wrap over rune counts. A word longer than a
// full line spills across as many lines as it needs.
func wrapCount(line string, perLine int) int {
	words := strings.Fields(line)
	if len(words) == 0 {
		return 1
	}
	lines, cur := 1, 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if cur > 0 {
			if cur+1+n <= perLine {
				cur += 1 + n
				continue
			}
			lines++
			cur = 0
		}
		for n > perLine {
			n -= perLine
			lines++
		}
		cur = n
	}
	return lines
}
