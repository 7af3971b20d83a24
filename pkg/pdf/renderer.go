package pdf

import (
	"context"
	"time"
)

// RenderRequest carries the parameters for one HTML-to-PDF conversion.
type RenderRequest struct {
	// HTML is the fully substituted document markup.
	HTML string
	// PaperSize defines the output paper dimensions.
	PaperSize PaperSize
	// Orientation selects portrait or landscape.
	Orientation Orientation
	// Margins in millimeters.
	Margins Margins
	// Title for the PDF document metadata.
	Title string
	// Timeout overrides the renderer's default per-conversion timeout.
	Timeout time.Duration
}

// RenderResult is the output of a conversion.
type RenderResult struct {
	// PDFData is the raw PDF file content.
	PDFData []byte
	// RenderDuration is how long the conversion took.
	RenderDuration time.Duration
}

// Renderer converts HTML markup into PDF bytes. Implementations own any
// browser or subprocess resources and release them in Close.
type Renderer interface {
	Name() string
	Render(ctx context.Context, req *RenderRequest) (*RenderResult, error)
	Close() error
}

// RenderError reports a conversion the rendering collaborator rejected or
// could not complete.
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Error codes for conversion failures.
const (
	ErrCodeRenderTimeout    = "RENDER_TIMEOUT"
	ErrCodeRenderFailed     = "RENDER_FAILED"
	ErrCodeInvalidHTML      = "INVALID_HTML"
	ErrCodeInvalidPaperSize = "INVALID_PAPER_SIZE"
)

// NewRenderError creates a RenderError.
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
