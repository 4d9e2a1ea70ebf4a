package compose

import (
	"fmt"
	"time"

	invoicelayout "github.com/lvillar/invoicelayout"
)

// Layout holds the fixed geometry and type constants for one render:
// page size, margins, the item-table columns, and the small font palette.
// All lengths are in points. A Layout is data only; it never changes while
// a Compose call is running.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	// ReservedBottom is the strip above the bottom margin kept free of
	// flowing content; the footer and page numbers live there.
	ReservedBottom float64

	// Item table columns.
	IndexX      float64
	IndexWidth  float64
	DescX       float64
	DescWidth   float64
	AmountX     float64
	AmountWidth float64

	HeadingFont invoicelayout.FontSpec
	TitleFont   invoicelayout.FontSpec
	BodyFont    invoicelayout.FontSpec
	MetaFont    invoicelayout.FontSpec

	// LineFactor converts a font size into a line height (default 1.4).
	LineFactor float64
	BlockGap   float64 // vertical gap between document blocks
	RowGap     float64 // vertical gap between item rows
	LogoSize   float64 // header logo box edge
	QRSize     float64 // payment barcode box edge

	// ShortTitleLimit is the rune count at or below which a lone
	// description is promoted to the title line.
	ShortTitleLimit int

	TextColor  invoicelayout.RGBColor
	MutedColor invoicelayout.RGBColor
	RuleColor  invoicelayout.RGBColor
	FillColor  invoicelayout.RGBColor // notes box background
}

// DefaultLayout returns the A4 portrait layout used by the CLI.
func DefaultLayout() Layout {
	const (
		pageW  = 595.28
		pageH  = 841.89
		margin = 54
	)
	return Layout{
		PageWidth:      pageW,
		PageHeight:     pageH,
		Margin:         margin,
		ReservedBottom: 36,

		IndexX:      margin,
		IndexWidth:  24,
		DescX:       margin + 30,
		DescWidth:   330,
		AmountX:     pageW - margin - 90,
		AmountWidth: 90,

		HeadingFont: invoicelayout.FontSpec{Family: "Helvetica", Style: "B", Size: 16},
		TitleFont:   invoicelayout.FontSpec{Family: "Helvetica", Style: "B", Size: 10.5},
		BodyFont:    invoicelayout.FontSpec{Family: "Helvetica", Size: 10},
		MetaFont:    invoicelayout.FontSpec{Family: "Helvetica", Size: 8.5},

		LineFactor: 1.4,
		BlockGap:   14,
		RowGap:     6,
		LogoSize:   48,
		QRSize:     72,

		ShortTitleLimit: 32,

		TextColor:  invoicelayout.RGBColor{R: 30, G: 30, B: 30},
		MutedColor: invoicelayout.RGBColor{R: 120, G: 120, B: 120},
		RuleColor:  invoicelayout.RGBColor{R: 180, G: 180, B: 180},
		FillColor:  invoicelayout.RGBColor{R: 245, G: 245, B: 245},
	}
}

// lineHeight converts a font size to a line height.
func (l Layout) lineHeight(f invoicelayout.FontSpec) float64 {
	factor := l.LineFactor
	if factor <= 0 {
		factor = 1.4
	}
	return f.Size * factor
}

// contentBottom is the lowest y at which flowing content may still begin.
func (l Layout) contentBottom() float64 {
	return l.PageHeight - l.Margin - l.ReservedBottom
}

// contentWidth is the printable width between the side margins.
func (l Layout) contentWidth() float64 {
	return l.PageWidth - 2*l.Margin
}

// Option configures a Composer.
type Option func(*Composer)

// WithLayout replaces the default layout constants.
func WithLayout(l Layout) Option {
	return func(c *Composer) {
		c.layout = l
	}
}

// WithAmountFormatter injects the currency formatting collaborator. The
// default prints "CUR 12.34"; locale-aware formatting belongs to the host.
func WithAmountFormatter(f func(value float64, currency string) string) Option {
	return func(c *Composer) {
		if f != nil {
			c.amount = f
		}
	}
}

// WithDateFormatter injects the date formatting collaborator. The default
// prints ISO dates (2006-01-02).
func WithDateFormatter(f func(t time.Time) string) Option {
	return func(c *Composer) {
		if f != nil {
			c.date = f
		}
	}
}

func defaultAmountFormatter(v float64, currency string) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%s %.2f", currency, v)
}

func defaultDateFormatter(t time.Time) string {
	return t.Format("2006-01-02")
}
