package generator

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-docgen/pkg/pdf"
	"github.com/goliatone/go-docgen/pkg/record"
	"github.com/goliatone/go-docgen/pkg/template"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom record loader.
func WithLoader(loader record.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithEngine injects a substitution engine.
func WithEngine(engine *template.Engine) Option {
	return func(g *Generator) {
		g.engine = engine
	}
}

// WithTemplateStore injects a template store. Use template.WithStoreDir to
// point it at an on-disk template directory.
func WithTemplateStore(store *template.Store) Option {
	return func(g *Generator) {
		g.store = store
	}
}

// WithRegistry injects a renderer registry. When the registry already holds
// renderers the generator will not create its default chromedp instance.
func WithRegistry(registry *pdf.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		if name != "" {
			g.defaultRenderer = name
		}
	}
}

// WithPaper configures paper size and orientation for rendered documents.
func WithPaper(size pdf.PaperSize, orientation pdf.Orientation) Option {
	return func(g *Generator) {
		g.paperSize = size
		g.orientation = orientation
	}
}

// WithMargins overrides the default 10mm page margins.
func WithMargins(margins pdf.Margins) Option {
	return func(g *Generator) {
		g.margins = margins
	}
}

// WithTitle sets the default document heading used when requests omit one.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithLogger injects a zap logger; the default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}
