// Package textsplit breaks a text block at a word boundary so that the
// kept prefix fits a height budget. It is the primitive the page-flow loop
// uses to carry long item descriptions across page breaks.
package textsplit

import (
	"unicode"

	invoicelayout "github.com/lvillar/invoicelayout"
	"github.com/lvillar/invoicelayout/metrics"
)

// Split returns the longest prefix of text whose wrapped height fits
// maxHeight, and the remainder still to be placed. An empty remainder
// means the whole text fit.
//
// The cut point is found by binary search over rune positions (wrapped
// height is non-decreasing in prefix length) and then snapped backward to
// the nearest preceding whitespace so no word is broken. The boundary
// whitespace character belongs to neither fragment: joining fitting and
// remainder with a single space reconstructs the original text.
//
// When even the first word overflows the budget the splitter still
// consumes at least one rune. That cuts a word mid-way, but it guarantees
// the surrounding pagination loop terminates.
func Split(m metrics.TextMetrics, text string, font invoicelayout.FontSpec, width, maxHeight float64) (fitting, remainder string) {
	if text == "" {
		return "", ""
	}
	if m.Height(text, font, width) <= maxHeight {
		return text, ""
	}

	runes := []rune(text)

	// Largest cut with height(text[:cut]) <= maxHeight. The empty prefix
	// always fits, so the invariant below holds from the start.
	lo, hi := 0, len(runes)
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if m.Height(string(runes[:mid]), font, width) <= maxHeight {
			lo = mid
		} else {
			hi = mid
		}
	}
	cut := lo // cut < len(runes): the full text did not fit

	// The cut may already sit on a word boundary; otherwise snap back to
	// the whitespace preceding it so the break never lands inside a word.
	// Exactly one boundary whitespace character is elided either way.
	if unicode.IsSpace(runes[cut]) {
		return string(runes[:cut]), string(runes[cut+1:])
	}
	if cut > 0 && unicode.IsSpace(runes[cut-1]) {
		return string(runes[:cut-1]), string(runes[cut:])
	}
	snap := -1
	for i := cut - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			snap = i
			break
		}
	}
	if snap <= 0 {
		// First word alone exceeds the budget: forced minimal progress.
		if cut < 1 {
			cut = 1
		}
		return string(runes[:cut]), string(runes[cut:])
	}
	return string(runes[:snap]), string(runes[snap+1:])
}
