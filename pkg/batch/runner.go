package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	recordloader "github.com/goliatone/go-docgen/internal/record/loader"
	"github.com/goliatone/go-docgen/pkg/generator"
	"github.com/goliatone/go-docgen/pkg/record"
)

const recordExt = ".json"

// Runner drives the generator over every record file in a directory. Files
// are processed one at a time in lexicographic order; a failing file is
// reported and skipped without aborting the rest of the batch.
type Runner struct {
	gen      *generator.Generator
	loader   record.Loader
	logger   *zap.Logger
	progress bool
	template string
	title    string
	renderer string
	suffix   string
}

// Option customises the runner.
type Option func(*Runner)

// WithLoader injects the loader used to read record files.
func WithLoader(loader record.Loader) Option {
	return func(r *Runner) {
		r.loader = loader
	}
}

// WithLogger injects a zap logger; the default is a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithProgress enables a terminal progress bar across the batch.
func WithProgress(enabled bool) Option {
	return func(r *Runner) {
		r.progress = enabled
	}
}

// WithTemplate selects the template used for every document in the batch.
func WithTemplate(name string) Option {
	return func(r *Runner) {
		r.template = name
	}
}

// WithTitle sets the document heading for every document in the batch.
func WithTitle(title string) Option {
	return func(r *Runner) {
		r.title = title
	}
}

// WithRenderer selects the PDF renderer for every document in the batch.
func WithRenderer(name string) Option {
	return func(r *Runner) {
		r.renderer = name
	}
}

// WithOutputSuffix appends a suffix to each output file's base name, keeping
// runs over the same inputs with different templates from colliding.
func WithOutputSuffix(suffix string) Option {
	return func(r *Runner) {
		r.suffix = suffix
	}
}

// NewRunner constructs a Runner around an existing generator.
func NewRunner(gen *generator.Generator, options ...Option) *Runner {
	r := &Runner{
		gen: gen,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.loader == nil {
		r.loader = recordloader.New(record.LoaderOptions{})
	}
	return r
}

// Result records the outcome for one input file.
type Result struct {
	Input     string
	Output    string
	DocNumber string
	Err       error
}

// Summary aggregates the per-file results of one batch run.
type Summary struct {
	Results []Result
}

// Succeeded counts the files that produced output.
func (s Summary) Succeeded() int {
	count := 0
	for _, res := range s.Results {
		if res.Err == nil {
			count++
		}
	}
	return count
}

// Failed counts the files that did not produce output.
func (s Summary) Failed() int {
	return len(s.Results) - s.Succeeded()
}

// Run processes every record file in inputDir, writing one PDF per record
// into outputDir. The output directory is created before the batch begins;
// failure to create it aborts the run since no file could succeed. The
// context is checked between files so an interrupt stops the batch at the
// next boundary.
func (r *Runner) Run(ctx context.Context, inputDir, outputDir string) (Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	files, err := listRecordFiles(inputDir)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("batch: create output dir: %w", err)
	}

	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Rendering documents"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	summary := Summary{Results: make([]Result, 0, len(files))}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := r.processFile(ctx, file, outputDir)
		summary.Results = append(summary.Results, result)

		if result.Err != nil {
			r.logger.Warn("document failed",
				zap.String("input", result.Input),
				zap.Error(result.Err))
		} else {
			r.logger.Info("document generated",
				zap.String("input", result.Input),
				zap.String("output", result.Output))
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	return summary, nil
}

func (r *Runner) processFile(ctx context.Context, inputPath, outputDir string) Result {
	result := Result{
		Input:  inputPath,
		Output: outputPath(inputPath, outputDir, r.suffix),
	}

	est, err := r.loader.Load(ctx, record.SourceFromFile(inputPath))
	if err != nil {
		result.Err = err
		return result
	}
	result.DocNumber = est.DocNumber

	result.Err = r.gen.Generate(ctx, generator.Request{
		Record:     &est,
		Template:   r.template,
		Title:      r.title,
		Renderer:   r.renderer,
		OutputPath: result.Output,
	})
	return result
}

// OutputPath derives the PDF path for a record file: same base name, .pdf
// extension, placed in outputDir.
func OutputPath(inputPath, outputDir string) string {
	return outputPath(inputPath, outputDir, "")
}

func outputPath(inputPath, outputDir, suffix string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+suffix+".pdf")
}

// listRecordFiles returns the record files directly inside dir, sorted by
// name so batch output order is reproducible.
func listRecordFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read input dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), recordExt) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
