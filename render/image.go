package render

import (
	"bytes"
	"image"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	"codeberg.org/go-pdf/fpdf"
	xdraw "golang.org/x/image/draw"

	invoicelayout "github.com/lvillar/invoicelayout"
)

// logoImage caches a decoded and registered logo per source path.
type logoImage struct {
	name string
	w, h int // pixel dimensions after any downsampling
}

// embedLogo decodes the logo file, downsamples it when it is much larger
// than its box, registers it with the PDF once per path, and places it
// aspect-fit inside the instruction box.
func embedLogo(pdf *fpdf.Fpdf, cache map[string]logoImage, in invoicelayout.ImageInstruction) error {
	logo, ok := cache[in.Path]
	if !ok {
		img, err := loadImage(in.Path)
		if err != nil {
			return newRenderError("embedLogo", wrapSentinel(ErrBadImage, err))
		}
		img = downsample(img, in.Width, in.Height)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return newRenderError("embedLogo", err)
		}
		name := "logo:" + in.Path
		pdf.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, &buf)
		if pdf.Err() {
			return newRenderError("embedLogo", pdf.Error())
		}
		b := img.Bounds()
		logo = logoImage{name: name, w: b.Dx(), h: b.Dy()}
		cache[in.Path] = logo
	}

	// Aspect-fit inside the box, anchored to its top-right corner so the
	// logo hugs the page margin.
	w, h := in.Width, in.Height
	if logo.w > 0 && logo.h > 0 {
		scale := in.Width / float64(logo.w)
		if s := in.Height / float64(logo.h); s < scale {
			scale = s
		}
		w = float64(logo.w) * scale
		h = float64(logo.h) * scale
	}
	x := in.X + (in.Width - w)

	pdf.ImageOptions(logo.name, x, in.Y, w, h, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// downsample shrinks images that are more than twice their target box,
// keeping the embedded PDF small. Smaller images pass through untouched.
func downsample(img image.Image, boxW, boxH float64) image.Image {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw <= 0 || ih <= 0 || (iw <= 2*boxW && ih <= 2*boxH) {
		return img
	}
	scale := 2 * boxW / iw
	if s := 2 * boxH / ih; s < scale {
		scale = s
	}
	dw, dh := int(iw*scale), int(ih*scale)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
