package render

import (
	"errors"
	"fmt"
)

// Sentinel errors for common rendering failure conditions.
var (
	ErrNoPages       = errors.New("render: layout has no pages")
	ErrBadBarcode    = errors.New("render: barcode data cannot be encoded")
	ErrBadImage      = errors.New("render: image cannot be decoded")
	ErrBadLetterhead = errors.New("render: letterhead page cannot be imported")
)

// RenderError wraps an underlying error with the name of the rendering
// operation that failed.
type RenderError struct {
	Op  string // operation name, e.g. "Render", "embedLogo"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("render.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func newRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err}
}

// wrapSentinel attaches a cause to one of the package sentinels so callers
// can still match with errors.Is.
func wrapSentinel(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %v", sentinel, cause)
}
