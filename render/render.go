// Package render encodes a laid-out page list into a PDF file. It is the
// only package that touches the PDF library: the layout engine hands it
// positioned draw instructions and render walks them page by page.
//
// Optional extras: a letterhead PDF imported as an underlay behind the
// content, logo images (aspect-fit, downsampled when oversized), and
// QR / PDF417 payment barcodes.
package render

import (
	"io"
	"os"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"

	invoicelayout "github.com/lvillar/invoicelayout"
)

// Renderer writes page lists as PDF documents. The zero options render
// plain pages; see WithLetterhead.
type Renderer struct {
	letterhead    string
	letterheadAll bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLetterhead underlays page 1 of the given PDF file behind the first
// invoice page, the usual pre-printed stationery setup.
func WithLetterhead(path string) Option {
	return func(r *Renderer) {
		r.letterhead = path
	}
}

// WithLetterheadAllPages underlays the stationery behind every page
// instead of only the first.
func WithLetterheadAllPages(path string) Option {
	return func(r *Renderer) {
		r.letterhead = path
		r.letterheadAll = true
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the pages as a PDF to w.
func (r *Renderer) Render(w io.Writer, pages []invoicelayout.Page) error {
	if len(pages) == 0 {
		return newRenderError("Render", ErrNoPages)
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pages[0].Width, Ht: pages[0].Height},
	})
	pdf.SetAutoPageBreak(false, 0)

	var imp *gofpdi.Importer
	letterheadTpl := 0
	if r.letterhead != "" {
		imp = gofpdi.NewImporter()
	}

	logos := make(map[string]logoImage)
	barcodeSeq := 0

	for i, p := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: p.Width, Ht: p.Height})

		if imp != nil && (i == 0 || r.letterheadAll) {
			if letterheadTpl == 0 {
				letterheadTpl = imp.ImportPage(pdf, r.letterhead, 1, "/MediaBox")
				if pdf.Err() {
					return newRenderError("Render", wrapSentinel(ErrBadLetterhead, pdf.Error()))
				}
			}
			imp.UseImportedTemplate(pdf, letterheadTpl, 0, 0, p.Width, p.Height)
		}

		for _, in := range p.Instructions {
			var err error
			switch v := in.(type) {
			case invoicelayout.TextInstruction:
				drawText(pdf, v)
			case invoicelayout.LineInstruction:
				drawLine(pdf, v)
			case invoicelayout.RectInstruction:
				drawRect(pdf, v)
			case invoicelayout.ImageInstruction:
				err = embedLogo(pdf, logos, v)
			case invoicelayout.BarcodeInstruction:
				err = embedBarcode(pdf, &barcodeSeq, v)
			}
			if err != nil {
				return err
			}
		}
	}

	if pdf.Err() {
		return newRenderError("Render", pdf.Error())
	}
	return pdf.Output(w)
}

// RenderFile writes the pages as a PDF to the named file.
func (r *Renderer) RenderFile(path string, pages []invoicelayout.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return newRenderError("RenderFile", err)
	}
	defer f.Close()
	return r.Render(f, pages)
}

func drawText(pdf *fpdf.Fpdf, in invoicelayout.TextInstruction) {
	pdf.SetFont(in.Font.Family, in.Font.Style, in.Font.Size)
	pdf.SetTextColor(in.Color.R, in.Color.G, in.Color.B)

	lineH := in.LineHeight
	if lineH <= 0 {
		lineH = in.Font.Size * 1.4
	}
	align := in.Align
	if align == "" {
		align = invoicelayout.AlignLeft
	}

	pdf.SetXY(in.X, in.Y)
	// The instruction's position and vertical slot were computed against
	// the caller's metrics, whose glyph widths can differ slightly from the
	// PDF core fonts. A line that only exceeds MaxWidth within that
	// tolerance stays on one line; re-wrapping it here would push text
	// below the slot the layout reserved for it.
	if strings.Contains(in.Text, "\n") || pdf.GetStringWidth(in.Text) > in.MaxWidth*wrapSlack {
		pdf.MultiCell(in.MaxWidth, lineH, in.Text, "", align, false)
	} else {
		pdf.CellFormat(in.MaxWidth, lineH, in.Text, "", 0, align, false, 0, "")
	}
}

// wrapSlack absorbs width differences between the layout metrics and the
// renderer's font tables before a single measured line is re-wrapped.
const wrapSlack = 1.05

func drawLine(pdf *fpdf.Fpdf, in invoicelayout.LineInstruction) {
	w := in.Width
	if w <= 0 {
		w = 0.5
	}
	pdf.SetLineWidth(w)
	pdf.SetDrawColor(in.Color.R, in.Color.G, in.Color.B)
	pdf.Line(in.X1, in.Y1, in.X2, in.Y2)
}

func drawRect(pdf *fpdf.Fpdf, in invoicelayout.RectInstruction) {
	style := ""
	if in.Fill != nil {
		pdf.SetFillColor(in.Fill.R, in.Fill.G, in.Fill.B)
		style = "F"
	}
	if in.Stroke != nil {
		pdf.SetDrawColor(in.Stroke.R, in.Stroke.G, in.Stroke.B)
		if in.StrokeWidth > 0 {
			pdf.SetLineWidth(in.StrokeWidth)
		}
		if style == "F" {
			style = "FD"
		} else {
			style = "D"
		}
	}
	if style == "" {
		style = "D"
	}
	pdf.Rect(in.X, in.Y, in.Width, in.Height, style)
}
