// Package invoicelayout lays out invoice documents as a deterministic
// sequence of fixed-size pages of draw instructions.
//
// The engine consumes an immutable InvoiceSnapshot plus a set of layout
// constants, measures text through an injected metrics capability, and
// produces pages of positioned instructions (text, rules, rects, logo and
// barcode boxes). It never draws anything itself: final encoding into a
// concrete file format is the job of a renderer that consumes the
// instruction list, such as the bundled render package.
//
// Layout is computed by the compose package. Text is broken across pages
// on word boundaries only (see textsplit), line items render in snapshot
// order, and a page break in the middle of the item table repeats the
// column header on the continuation page.
//
// A typical pipeline:
//
//	m, err := metrics.NewOpenType()
//	if err != nil { ... }
//	pages := compose.New(m).Compose(&snapshot)
//	err = render.New().RenderFile("invoice.pdf", pages)
//
// Composition is pure: the same snapshot and layout constants always yield
// the same pages, and concurrent Compose calls on different snapshots are
// independent.
package invoicelayout
