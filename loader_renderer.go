package docgen

import (
	internalLoader "github.com/goliatone/go-docgen/internal/record/loader"
	"github.com/goliatone/go-docgen/pkg/pdf"
	"github.com/goliatone/go-docgen/pkg/record"
)

// NewLoader constructs a record loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...record.LoaderOption) record.Loader {
	cfg := record.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewChromedpRenderer constructs the default headless-Chrome PDF renderer.
func NewChromedpRenderer(config *pdf.ChromedpConfig) (pdf.Renderer, error) {
	return pdf.NewChromedpRenderer(config)
}
