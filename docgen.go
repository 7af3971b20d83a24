package docgen

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/generator"
	"github.com/goliatone/go-docgen/pkg/pdf"
	"github.com/goliatone/go-docgen/pkg/record"
)

// Request mirrors the generator request contract; alias exported via the root
// package for convenience.
type Request = generator.Request

// Estimate aliases the record type so casual callers need a single import.
type Estimate = record.Estimate

// LineItem aliases the line-item row type.
type LineItem = record.LineItem

// NewGenerator exposes the generator constructor from the top-level module.
func NewGenerator(options ...generator.Option) *generator.Generator {
	return generator.New(options...)
}

// GenerateFile loads a record JSON file, renders it against the default
// template, and writes the PDF to outputPath. It is the simplest entry point
// for callers that just want one document.
func GenerateFile(ctx context.Context, recordPath, outputPath string, options ...generator.Option) error {
	gen := generator.New(options...)
	defer gen.Close()

	return gen.Generate(ctx, generator.Request{
		Source:     record.SourceFromFile(recordPath),
		OutputPath: outputPath,
	})
}

// GenerateBytes runs the same pipeline as GenerateFile but returns the PDF
// bytes instead of persisting them.
func GenerateBytes(ctx context.Context, recordPath string, options ...generator.Option) ([]byte, error) {
	gen := generator.New(options...)
	defer gen.Close()

	return gen.GenerateBytes(ctx, generator.Request{
		Source: record.SourceFromFile(recordPath),
	})
}

// WithPaper forwards paper configuration so callers can configure the
// one-call helpers without importing pkg/generator.
func WithPaper(size pdf.PaperSize, orientation pdf.Orientation) generator.Option {
	return generator.WithPaper(size, orientation)
}

// WithTitle forwards the default document heading option.
func WithTitle(title string) generator.Option {
	return generator.WithTitle(title)
}
