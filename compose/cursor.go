package compose

import (
	invoicelayout "github.com/lvillar/invoicelayout"
)

// pageDraft accumulates instructions for one page while layout proceeds.
type pageDraft struct {
	number int
	instrs []invoicelayout.Instruction
}

// cursor tracks the current vertical write position and owns page breaks.
// One cursor lives for exactly one Compose call; nothing survives it.
type cursor struct {
	layout Layout
	drafts []*pageDraft
	y      float64

	// tableHeader, when non-nil, is invoked at the top of every page
	// started mid-item-table so the continuation page repeats the column
	// header. The callback emits directly and moves y; it must not
	// trigger another page break.
	tableHeader func(*cursor)
}

func newCursor(l Layout) *cursor {
	c := &cursor{layout: l}
	c.drafts = []*pageDraft{{number: 1}}
	c.y = l.Margin
	return c
}

func (c *cursor) page() *pageDraft {
	return c.drafts[len(c.drafts)-1]
}

func (c *cursor) emit(in invoicelayout.Instruction) {
	p := c.page()
	p.instrs = append(p.instrs, in)
}

// avail is the vertical room left before the reserved bottom strip.
func (c *cursor) avail() float64 {
	return c.layout.contentBottom() - c.y
}

// ensureSpace starts a new page when the next element of the given height
// would cross the content bottom; otherwise it is a no-op.
func (c *cursor) ensureSpace(needed float64) {
	if c.y+needed <= c.layout.contentBottom() {
		return
	}
	c.startNewPage()
}

// startNewPage appends a fresh page, resets the write position to the top
// margin and, mid-item-table, redraws the column header.
func (c *cursor) startNewPage() {
	c.drafts = append(c.drafts, &pageDraft{number: len(c.drafts) + 1})
	c.y = c.layout.Margin
	if c.tableHeader != nil {
		c.tableHeader(c)
	}
}

// advance moves the write position down by the consumed height, but always
// by at least one meta line so degenerate zero-height content cannot stall
// the flow loop.
func (c *cursor) advance(consumed float64) {
	if min := c.layout.lineHeight(c.layout.MetaFont); consumed < min {
		consumed = min
	}
	c.y += consumed
}

// pages materializes the final page list.
func (c *cursor) pages() []invoicelayout.Page {
	out := make([]invoicelayout.Page, len(c.drafts))
	for i, d := range c.drafts {
		out[i] = invoicelayout.Page{
			Number:       d.number,
			Width:        c.layout.PageWidth,
			Height:       c.layout.PageHeight,
			Instructions: d.instrs,
		}
	}
	return out
}
