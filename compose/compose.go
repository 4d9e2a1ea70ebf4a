// Package compose lays out an invoice snapshot into pages of draw
// instructions. It owns the fixed block order (header, bill-to, items,
// totals, payment, notes, footer), delegates text measurement to an
// injected metrics capability, and breaks item text across pages on word
// boundaries only.
package compose

import (
	"fmt"
	"strings"
	"time"

	invoicelayout "github.com/lvillar/invoicelayout"
	"github.com/lvillar/invoicelayout/metrics"
	"github.com/lvillar/invoicelayout/textsplit"
)

// Composer turns snapshots into page lists. A Composer is immutable after
// New and safe for concurrent Compose calls; all per-render state lives in
// a cursor created inside Compose.
type Composer struct {
	metrics metrics.TextMetrics
	layout  Layout
	amount  func(value float64, currency string) string
	date    func(t time.Time) string
}

// New creates a Composer measuring text through m.
func New(m metrics.TextMetrics, opts ...Option) *Composer {
	c := &Composer{
		metrics: m,
		layout:  DefaultLayout(),
		amount:  defaultAmountFormatter,
		date:    defaultDateFormatter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose lays out one snapshot. It never fails: malformed input produces
// a malformed document, and unmeasurable text occupies zero height; the
// returned page list is always complete and identical for identical input.
func (c *Composer) Compose(snap *invoicelayout.InvoiceSnapshot) []invoicelayout.Page {
	if snap == nil {
		snap = &invoicelayout.InvoiceSnapshot{}
	}
	cur := newCursor(c.layout)

	c.header(cur, snap)
	c.billTo(cur, snap)
	c.items(cur, snap)
	c.totals(cur, snap)
	c.payment(cur, snap)
	c.notes(cur, snap)
	c.footer(cur, snap)

	return cur.pages()
}

// header draws the fixed-height identity block: business name and details
// on the left, logo box and invoice number/dates on the right. It is laid
// out on page 1 only and never split.
func (c *Composer) header(cur *cursor, snap *invoicelayout.InvoiceSnapshot) {
	l := c.layout
	top := cur.y

	leftW := l.contentWidth() - 200
	name := snap.Business.Name
	if name == "" {
		name = "Invoice"
	}
	ly := top
	cur.emit(invoicelayout.TextInstruction{
		Text: name, X: l.Margin, Y: ly,
		Font: l.HeadingFont, Align: invoicelayout.AlignLeft,
		MaxWidth: leftW, LineHeight: l.lineHeight(l.HeadingFont),
		Color: l.TextColor,
	})
	ly += l.lineHeight(l.HeadingFont)
	for _, d := range snap.Business.Details {
		cur.emit(c.metaLine(d, l.Margin, ly, leftW, invoicelayout.AlignLeft))
		ly += l.lineHeight(l.MetaFont)
	}

	ry := top
	if snap.Business.LogoPath != "" {
		cur.emit(invoicelayout.ImageInstruction{
			Path:   snap.Business.LogoPath,
			X:      l.PageWidth - l.Margin - l.LogoSize,
			Y:      ry,
			Width:  l.LogoSize,
			Height: l.LogoSize,
		})
		ry += l.LogoSize + l.RowGap
	}
	const metaW = 190.0
	rx := l.PageWidth - l.Margin - metaW
	if snap.Number != "" {
		cur.emit(invoicelayout.TextInstruction{
			Text: "Invoice " + snap.Number, X: rx, Y: ry,
			Font: l.TitleFont, Align: invoicelayout.AlignRight,
			MaxWidth: metaW, LineHeight: l.lineHeight(l.TitleFont),
			Color: l.TextColor,
		})
		ry += l.lineHeight(l.TitleFont)
	}
	if snap.IssuedAt != nil {
		cur.emit(c.metaLine("Issued: "+c.date(*snap.IssuedAt), rx, ry, metaW, invoicelayout.AlignRight))
		ry += l.lineHeight(l.MetaFont)
	}
	if snap.DueDate != nil {
		cur.emit(c.metaLine("Due: "+c.date(*snap.DueDate), rx, ry, metaW, invoicelayout.AlignRight))
		ry += l.lineHeight(l.MetaFont)
	}

	cur.y = maxf(ly, ry) + l.BlockGap
}

// billTo draws the fixed-height client block. No client, no block.
func (c *Composer) billTo(cur *cursor, snap *invoicelayout.InvoiceSnapshot) {
	client := snap.Client
	if client == nil || (client.Name == "" && len(client.Details) == 0) {
		return
	}
	l := c.layout
	metaLH := l.lineHeight(l.MetaFont)
	height := metaLH + l.lineHeight(l.TitleFont) + float64(len(client.Details))*metaLH
	cur.ensureSpace(height)

	y := cur.y
	cur.emit(c.mutedLine("BILL TO", l.Margin, y, l.contentWidth(), invoicelayout.AlignLeft))
	y += metaLH
	cur.emit(invoicelayout.TextInstruction{
		Text: client.Name, X: l.Margin, Y: y,
		Font: l.TitleFont, Align: invoicelayout.AlignLeft,
		MaxWidth: l.contentWidth(), LineHeight: l.lineHeight(l.TitleFont),
		Color: l.TextColor,
	})
	y += l.lineHeight(l.TitleFont)
	for _, d := range client.Details {
		cur.emit(c.metaLine(d, l.Margin, y, l.contentWidth(), invoicelayout.AlignLeft))
		y += metaLH
	}
	cur.y = y + l.BlockGap
}

// items draws the table of line items in snapshot order. While the table
// is open, every page break repeats the column header with a continuation
// label.
func (c *Composer) items(cur *cursor, snap *invoicelayout.InvoiceSnapshot) {
	if len(snap.Items) == 0 {
		return
	}
	l := c.layout

	// Keep the header and at least one row together.
	cur.ensureSpace(c.itemsHeaderHeight() + l.lineHeight(l.TitleFont))
	c.itemsHeader(cur, false)
	cur.tableHeader = func(cc *cursor) { c.itemsHeader(cc, true) }
	defer func() { cur.tableHeader = nil }()

	for i, it := range snap.Items {
		c.item(cur, i+1, it, snap.Currency)
	}
}

func (c *Composer) itemsHeaderHeight() float64 {
	l := c.layout
	return l.lineHeight(l.TitleFont) + l.lineHeight(l.MetaFont) + l.RowGap
}

func (c *Composer) itemsHeader(cur *cursor, continued bool) {
	l := c.layout
	label := "Items"
	if continued {
		label = "Items (continued)"
	}
	y := cur.y
	cur.emit(invoicelayout.TextInstruction{
		Text: label, X: l.Margin, Y: y,
		Font: l.TitleFont, Align: invoicelayout.AlignLeft,
		MaxWidth: l.contentWidth(), LineHeight: l.lineHeight(l.TitleFont),
		Color: l.TextColor,
	})
	y += l.lineHeight(l.TitleFont)

	cur.emit(c.mutedLine("#", l.IndexX, y, l.IndexWidth, invoicelayout.AlignLeft))
	cur.emit(c.mutedLine("Description", l.DescX, y, l.DescWidth, invoicelayout.AlignLeft))
	cur.emit(c.mutedLine("Amount", l.AmountX, y, l.AmountWidth, invoicelayout.AlignRight))
	y += l.lineHeight(l.MetaFont)

	cur.emit(invoicelayout.LineInstruction{
		X1: l.Margin, Y1: y, X2: l.PageWidth - l.Margin, Y2: y,
		Width: 0.5, Color: l.RuleColor,
	})
	cur.y = y + l.RowGap
}

// item places one line item: title line, body text (split across pages as
// needed), then the quantity annotation. The index number and amount are
// drawn on the first segment only.
func (c *Composer) item(cur *cursor, idx int, it invoicelayout.LineItemSnapshot, currency string) {
	l := c.layout
	title, body := ResolveItemText(it.Title, it.Description, l.ShortTitleLimit)

	first := true
	sides := func() {
		cur.emit(invoicelayout.TextInstruction{
			Text: fmt.Sprintf("%d", idx), X: l.IndexX, Y: cur.y,
			Font: l.BodyFont, Align: invoicelayout.AlignLeft,
			MaxWidth: l.IndexWidth, LineHeight: l.lineHeight(l.BodyFont),
			Color: l.TextColor,
		})
		cur.emit(invoicelayout.TextInstruction{
			Text: c.amount(it.Amount, currency), X: l.AmountX, Y: cur.y,
			Font: l.BodyFont, Align: invoicelayout.AlignRight,
			MaxWidth: l.AmountWidth, LineHeight: l.lineHeight(l.BodyFont),
			Color: l.TextColor,
		})
		first = false
	}

	if title != "" || body == "" {
		titleLH := l.lineHeight(l.TitleFont)
		cur.ensureSpace(titleLH)
		sides()
		if title != "" {
			cur.emit(invoicelayout.TextInstruction{
				Text: title, X: l.DescX, Y: cur.y,
				Font: l.TitleFont, Align: invoicelayout.AlignLeft,
				MaxWidth: l.DescWidth, LineHeight: titleLH,
				Color: l.TextColor,
			})
		}
		cur.advance(titleLH)
	}

	// One line of body text as measured, not as configured: the page-flow
	// guard and the splitter must agree on what fits.
	oneLine := c.metrics.Height("x", l.BodyFont, l.DescWidth)
	if oneLine <= 0 {
		oneLine = l.lineHeight(l.BodyFont)
	}
	rest := body
	for rest != "" {
		if cur.avail() < oneLine {
			cur.startNewPage()
		}
		fit, rem := textsplit.Split(c.metrics, rest, l.BodyFont, l.DescWidth, cur.avail())
		if first {
			sides()
		}
		if fit != "" {
			cur.emit(invoicelayout.TextInstruction{
				Text: fit, X: l.DescX, Y: cur.y,
				Font: l.BodyFont, Align: invoicelayout.AlignLeft,
				MaxWidth: l.DescWidth, LineHeight: l.lineHeight(l.BodyFont),
				Color: l.TextColor,
			})
		}
		cur.advance(c.metrics.Height(fit, l.BodyFont, l.DescWidth))
		rest = rem
	}

	// Quantity annotation comes only after the description has fully
	// rendered, never interleaved with body segments.
	if it.Quantity > 1 {
		metaLH := l.lineHeight(l.MetaFont)
		cur.ensureSpace(metaLH)
		cur.emit(c.mutedLine(
			fmt.Sprintf("%d x %s each", it.Quantity, c.amount(it.UnitPrice, currency)),
			l.DescX, cur.y, l.DescWidth, invoicelayout.AlignLeft,
		))
		cur.advance(metaLH)
	}

	cur.y += l.RowGap
}

// totals draws subtotal, the tax row when tax is non-zero, and the total
// under an emphasized divider. The block never splits: if it would
// overflow, the page break comes first.
func (c *Composer) totals(cur *cursor, snap *invoicelayout.InvoiceSnapshot) {
	l := c.layout
	bodyLH := l.lineHeight(l.BodyFont)
	titleLH := l.lineHeight(l.TitleFont)
	bodyRows := 1.0
	if snap.Tax != 0 {
		bodyRows = 2
	}
	// The Total row is set in the title face; reserving it at the body
	// line height would let it cross the content bottom.
	cur.ensureSpace(bodyRows*bodyLH + l.RowGap + titleLH)

	const labelW = 100.0
	labelX := l.AmountX - 8 - labelW
	y := cur.y

	row := func(label, value string, font invoicelayout.FontSpec) {
		cur.emit(invoicelayout.TextInstruction{
			Text: label, X: labelX, Y: y,
			Font: font, Align: invoicelayout.AlignRight,
			MaxWidth: labelW, LineHeight: l.lineHeight(font),
			Color: l.TextColor,
		})
		cur.emit(invoicelayout.TextInstruction{
			Text: value, X: l.AmountX, Y: y,
			Font: font, Align: invoicelayout.AlignRight,
			MaxWidth: l.AmountWidth, LineHeight: l.lineHeight(font),
			Color: l.TextColor,
		})
		y += l.lineHeight(font)
	}

	row("Subtotal", c.amount(snap.Subtotal, snap.Currency), l.BodyFont)
	if snap.Tax != 0 {
		row("Tax", c.amount(snap.Tax, snap.Currency), l.BodyFont)
	}
	cur.emit(invoicelayout.LineInstruction{
		X1: labelX, Y1: y + 2, X2: l.AmountX + l.AmountWidth, Y2: y + 2,
		Width: 1, Color: l.TextColor,
	})
	y += l.RowGap
	row("Total", c.amount(snap.Total, snap.Currency), l.TitleFont)

	cur.y = y + l.BlockGap
}

// payment draws the optional payment block: free-text instructions and,
// when machine-readable data is present, a barcode box on the right.
func (c *Composer) payment(cur *cursor, snap *invoicelayout.InvoiceSnapshot) {
	p := snap.Payment
	if p == nil || (p.Instructions == "" && p.QRData == "") {
		return
	}
	l := c.layout
	titleLH := l.lineHeight(l.TitleFont)

	textW := l.contentWidth()
	codeH := 0.0
	if p.QRData != "" {
		textW -= l.QRSize + l.BlockGap
		codeH = l.QRSize
	}
	textH := 0.0
	if p.Instructions != "" {
		textH = c.metrics.Height(p.Instructions, l.BodyFont, textW)
	}
	cur.ensureSpace(titleLH + maxf(textH, codeH))

	y := cur.y
	cur.emit(invoicelayout.TextInstruction{
		Text: "Payment details", X: l.Margin, Y: y,
		Font: l.TitleFont, Align: invoicelayout.AlignLeft,
		MaxWidth: l.contentWidth(), LineHeight: titleLH,
		Color: l.TextColor,
	})
	y += titleLH

	if p.QRData != "" {
		format := p.Format
		if format == "" {
			format = invoicelayout.BarcodeQR
		}
		cur.emit(invoicelayout.BarcodeInstruction{
			Data:   p.QRData,
			Format: format,
			X:      l.PageWidth - l.Margin - l.QRSize,
			Y:      y,
			Size:   l.QRSize,
		})
	}
	if p.Instructions != "" {
		cur.emit(invoicelayout.TextInstruction{
			Text: p.Instructions, X: l.Margin, Y: y,
			Font: l.BodyFont, Align: invoicelayout.AlignLeft,
			MaxWidth: textW, LineHeight: l.lineHeight(l.BodyFont),
			Color: l.TextColor,
		})
	}
	cur.y = y + maxf(textH, codeH) + l.BlockGap
}

// notes draws the boxed notes block, or nothing at all when notes are
// blank.
func (c *Composer) notes(cur *cursor, snap *invoicelayout.InvoiceSnapshot) {
	text := strings.TrimSpace(snap.Notes)
	if text == "" {
		return
	}
	l := c.layout
	const pad = 8.0
	titleLH := l.lineHeight(l.TitleFont)
	textW := l.contentWidth() - 2*pad
	textH := c.metrics.Height(text, l.BodyFont, textW)
	if textH <= 0 {
		textH = l.lineHeight(l.BodyFont)
	}
	boxH := textH + 2*pad
	cur.ensureSpace(titleLH + boxH)

	y := cur.y
	cur.emit(invoicelayout.TextInstruction{
		Text: "Notes", X: l.Margin, Y: y,
		Font: l.TitleFont, Align: invoicelayout.AlignLeft,
		MaxWidth: l.contentWidth(), LineHeight: titleLH,
		Color: l.TextColor,
	})
	y += titleLH
	fill := l.FillColor
	stroke := l.RuleColor
	cur.emit(invoicelayout.RectInstruction{
		X: l.Margin, Y: y, Width: l.contentWidth(), Height: boxH,
		Stroke: &stroke, StrokeWidth: 0.5, Fill: &fill,
	})
	cur.emit(invoicelayout.TextInstruction{
		Text: text, X: l.Margin + pad, Y: y + pad,
		Font: l.BodyFont, Align: invoicelayout.AlignLeft,
		MaxWidth: textW, LineHeight: l.lineHeight(l.BodyFont),
		Color: l.TextColor,
	})
	cur.y = y + boxH + l.BlockGap
}

// footer pins the footer line to the content end or the page bottom,
// whichever is lower, and stamps page numbers into the reserved strip of
// every page.
func (c *Composer) footer(cur *cursor, snap *invoicelayout.InvoiceSnapshot) {
	l := c.layout
	metaLH := l.lineHeight(l.MetaFont)
	slot := l.PageHeight - l.Margin - metaLH

	if snap.Footer != "" {
		// Pinned one line above the page-number strip so the two never
		// share a baseline.
		y := maxf(cur.y+l.BlockGap, slot-metaLH)
		cur.emit(invoicelayout.TextInstruction{
			Text: snap.Footer, X: l.Margin, Y: y,
			Font: l.MetaFont, Align: invoicelayout.AlignCenter,
			MaxWidth: l.contentWidth(), LineHeight: metaLH,
			Color: l.MutedColor,
		})
	}

	total := len(cur.drafts)
	for _, d := range cur.drafts {
		d.instrs = append(d.instrs, invoicelayout.TextInstruction{
			Text: fmt.Sprintf("Page %d of %d", d.number, total),
			X:    l.Margin, Y: slot,
			Font: l.MetaFont, Align: invoicelayout.AlignRight,
			MaxWidth: l.contentWidth(), LineHeight: metaLH,
			Color: l.MutedColor,
		})
	}
}

func (c *Composer) metaLine(text string, x, y, w float64, align string) invoicelayout.TextInstruction {
	l := c.layout
	return invoicelayout.TextInstruction{
		Text: text, X: x, Y: y,
		Font: l.MetaFont, Align: align,
		MaxWidth: w, LineHeight: l.lineHeight(l.MetaFont),
		Color: l.TextColor,
	}
}

func (c *Composer) mutedLine(text string, x, y, w float64, align string) invoicelayout.TextInstruction {
	in := c.metaLine(text, x, y, w, align)
	in.Color = c.layout.MutedColor
	return in
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
