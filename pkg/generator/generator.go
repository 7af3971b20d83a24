package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	recordloader "github.com/goliatone/go-docgen/internal/record/loader"
	"github.com/goliatone/go-docgen/pkg/document"
	"github.com/goliatone/go-docgen/pkg/pdf"
	"github.com/goliatone/go-docgen/pkg/record"
	"github.com/goliatone/go-docgen/pkg/template"
)

// Generator coordinates the full pipeline from record document to rendered
// PDF on disk. It applies sensible defaults (embedded templates, chromedp
// renderer) while remaining open to dependency injection for advanced
// callers. A Generator carries no per-document state and can be reused
// across documents and batches.
type Generator struct {
	loader          record.Loader
	engine          *template.Engine
	store           *template.Store
	registry        *pdf.Registry
	defaultRenderer string
	paperSize       pdf.PaperSize
	orientation     pdf.Orientation
	margins         pdf.Margins
	title           string
	logger          *zap.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: "chromedp",
		margins:         pdf.UniformMargins(10),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}
	g.defaultsApplied = true

	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.loader == nil {
		g.loader = recordloader.New(record.LoaderOptions{})
	}
	if g.engine == nil {
		g.engine = template.NewEngine()
	}
	if g.store == nil {
		g.store = template.NewStore()
	}
	if g.registry == nil {
		g.registry = pdf.NewRegistry()
	}
	if len(g.registry.List()) == 0 {
		renderer, err := pdf.NewChromedpRenderer(&pdf.ChromedpConfig{Logger: g.logger})
		if err != nil {
			g.initialiseErr = fmt.Errorf("generator: init default renderer: %w", err)
			return
		}
		if err := g.registry.Register(renderer); err != nil {
			g.initialiseErr = fmt.Errorf("generator: register default renderer: %w", err)
		}
	}
}

// Request describes the inputs required to produce one document.
type Request struct {
	// Source identifies where the record JSON lives. Optional when Record is
	// supplied.
	Source record.Source

	// Record allows callers to bypass the loader when they already hold a
	// validated record.
	Record *record.Estimate

	// Template names a template in the store. Empty selects the default
	// template. Ignored when TemplateContent is set.
	Template string

	// TemplateContent supplies raw template markup, bypassing the store.
	TemplateContent string

	// Title overrides the document heading placeholder.
	Title string

	// Renderer names the PDF renderer to use. Empty falls back to the
	// configured default.
	Renderer string

	// OutputPath is where the PDF lands. Required by Generate, unused by
	// GenerateBytes.
	OutputPath string
}

// Generate executes loader → mapping → substitution → renderer and writes the
// PDF to req.OutputPath. The output file appears only on success: bytes are
// staged in a temp file next to the target and renamed into place, so a
// failing pipeline never leaves partial output.
func (g *Generator) Generate(ctx context.Context, req Request) error {
	if req.OutputPath == "" {
		return errors.New("generator: output path is required")
	}
	data, err := g.GenerateBytes(ctx, req)
	if err != nil {
		return err
	}
	return writeFileAtomic(req.OutputPath, data)
}

// GenerateBytes runs the same pipeline as Generate but returns the PDF bytes
// instead of persisting them.
func (g *Generator) GenerateBytes(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if g.initialiseErr != nil {
		return nil, g.initialiseErr
	}

	est, err := g.resolveRecord(ctx, req)
	if err != nil {
		return nil, err
	}

	content, err := g.resolveTemplate(req)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = g.title
	}

	mapping := document.Placeholders(est, title)

	html, err := g.engine.Substitute(content, mapping)
	if err != nil {
		return nil, err
	}

	rendererName := req.Renderer
	if rendererName == "" {
		rendererName = g.defaultRenderer
	}
	renderer, err := g.registry.Get(rendererName)
	if err != nil {
		return nil, err
	}

	result, err := renderer.Render(ctx, &pdf.RenderRequest{
		HTML:        html,
		PaperSize:   g.paperSize,
		Orientation: g.orientation,
		Margins:     g.margins,
		Title:       est.DocNumber,
	})
	if err != nil {
		return nil, err
	}

	g.logger.Debug("document generated",
		zap.String("doc_number", est.DocNumber),
		zap.Int("items", len(est.Items)),
		zap.Int("bytes", len(result.PDFData)))

	return result.PDFData, nil
}

// Close releases renderer resources.
func (g *Generator) Close() error {
	if g.registry == nil {
		return nil
	}
	return g.registry.Close()
}

func (g *Generator) resolveRecord(ctx context.Context, req Request) (record.Estimate, error) {
	if req.Record != nil {
		est := *req.Record
		if err := record.Validate(est, ""); err != nil {
			return record.Estimate{}, err
		}
		return est, nil
	}
	if req.Source == nil {
		return record.Estimate{}, errors.New("generator: request needs a Source or a Record")
	}
	return g.loader.Load(ctx, req.Source)
}

func (g *Generator) resolveTemplate(req Request) (string, error) {
	if req.TemplateContent != "" {
		return req.TemplateContent, nil
	}
	name := req.Template
	if name == "" {
		name = template.DefaultTemplateName
	}
	return g.store.Load(name)
}

// writeFileAtomic stages data in a temp file beside path and renames it into
// place, creating parent directories first.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("generator: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("generator: stage output: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("generator: write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("generator: close output: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("generator: finalise output: %w", err)
	}
	return nil
}
