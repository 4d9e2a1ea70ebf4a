// Package metrics supplies the text-measurement capability the layout
// engine depends on. The engine only ever asks one question: how tall is
// this text when word-wrapped into a given width. Implementations must be
// deterministic for identical inputs and safe for concurrent use.
package metrics

import (
	invoicelayout "github.com/lvillar/invoicelayout"
)

// TextMetrics measures the wrapped height of a text block. Height reports
// 0 for empty text, non-positive widths, or text that cannot be measured;
// callers treat a zero height as "draws nothing" and still make forward
// progress.
type TextMetrics interface {
	Height(text string, font invoicelayout.FontSpec, width float64) float64
}
