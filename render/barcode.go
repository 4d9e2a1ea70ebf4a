package render

import (
	"bytes"
	"fmt"
	"image/png"

	"codeberg.org/go-pdf/fpdf"
	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/pdf417"
	"github.com/boombuler/barcode/qr"

	invoicelayout "github.com/lvillar/invoicelayout"
)

// pdf417SecurityLevel is the error-correction level applied to PDF417
// payment codes.
const pdf417SecurityLevel = 4

// embedBarcode encodes the payment data, rasterizes it at 4x the box size
// for crisp printing, and places it at the instruction position. QR codes
// fill the square box; PDF417 keeps its wide aspect within it.
func embedBarcode(pdf *fpdf.Fpdf, seq *int, in invoicelayout.BarcodeInstruction) error {
	var (
		code barcode.Barcode
		err  error
		w, h float64
	)
	switch in.Format {
	case invoicelayout.BarcodePDF417:
		code, err = pdf417.Encode(in.Data, pdf417SecurityLevel)
		w, h = in.Size, in.Size/3
	default:
		code, err = qr.Encode(in.Data, qr.M, qr.Auto)
		w, h = in.Size, in.Size
	}
	if err != nil {
		return newRenderError("embedBarcode", wrapSentinel(ErrBadBarcode, err))
	}

	pxW, pxH := int(w*4), int(h*4)
	if pxW < 64 {
		pxW = 64
	}
	if pxH < 24 {
		pxH = 24
	}
	code, err = barcode.Scale(code, pxW, pxH)
	if err != nil {
		return newRenderError("embedBarcode", wrapSentinel(ErrBadBarcode, err))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return newRenderError("embedBarcode", err)
	}

	name := fmt.Sprintf("barcode:%d", *seq)
	*seq++
	pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
	if pdf.Err() {
		return newRenderError("embedBarcode", pdf.Error())
	}

	// Bottom-align the flat PDF417 strip within the square box.
	y := in.Y + (in.Size - h)
	pdf.ImageOptions(name, in.X, y, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}
