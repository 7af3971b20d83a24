package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/goliatone/go-docgen/pkg/batch"
	"github.com/goliatone/go-docgen/pkg/config"
	"github.com/goliatone/go-docgen/pkg/document"
	"github.com/goliatone/go-docgen/pkg/generator"
	"github.com/goliatone/go-docgen/pkg/pdf"
	"github.com/goliatone/go-docgen/pkg/prompt"
	"github.com/goliatone/go-docgen/pkg/record"
	"github.com/goliatone/go-docgen/pkg/template"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "YAML config file")
	inputDir := flag.String("input", "", "input directory with record JSON files")
	outputDir := flag.String("output", "", "output directory for generated PDFs")
	singleFile := flag.String("file", "", "render a single record file instead of a batch")
	singleOut := flag.String("out", "", "output path for -file mode (default: <stem>.pdf in the output directory)")
	templateDir := flag.String("templates", "", "template directory (default: embedded templates)")
	templateName := flag.String("template", "", "template name to render with")
	selectTemplate := flag.Bool("select", false, "pick the template interactively")
	title := flag.String("title", "", "document heading (\"statement\" switches to the transaction statement heading)")
	paper := flag.String("paper", "", "paper size: A4, A5, Letter")
	landscape := flag.Bool("landscape", false, "landscape orientation")
	reportPath := flag.String("report", "", "write an xlsx batch summary to this path")
	progress := flag.Bool("progress", false, "show a progress bar during batch runs")
	verbose := flag.Bool("verbose", false, "verbose logging")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	explicitConfig := *configPath != config.DefaultPath
	cfg, err := config.Load(*configPath, explicitConfig)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applyFlagOverrides(&cfg, *inputDir, *outputDir, *templateDir, *templateName, *title, *paper, *landscape)

	logger := zap.NewNop()
	if *verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to init logger: %v", err)
		}
		defer logger.Sync()
	}

	store := newStore(cfg)

	if *selectTemplate {
		names, err := store.Names()
		if err != nil {
			log.Fatalf("Failed to list templates: %v", err)
		}
		choice, err := prompt.NewPicker().PickTemplate(ctx, names)
		if err != nil {
			log.Fatalf("Template selection failed: %v", err)
		}
		cfg.Template = choice
	}

	gen := newGenerator(cfg, store, logger)
	defer gen.Close()

	if *singleFile != "" {
		runSingle(ctx, gen, cfg, *singleFile, *singleOut)
		return
	}
	runBatch(ctx, gen, store, cfg, logger, *progress, *reportPath)
}

func applyFlagOverrides(cfg *config.Config, inputDir, outputDir, templateDir, templateName, title, paper string, landscape bool) {
	if inputDir != "" {
		cfg.InputDir = inputDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	if templateDir != "" {
		cfg.TemplateDir = templateDir
	}
	if templateName != "" {
		cfg.Template = templateName
	}
	if title != "" {
		cfg.Title = title
	}
	if paper != "" {
		cfg.Paper = paper
	}
	if landscape {
		cfg.Landscape = true
	}
}

func newStore(cfg config.Config) *template.Store {
	if cfg.TemplateDir != "" {
		return template.NewStore(template.WithStoreDir(cfg.TemplateDir))
	}
	return template.NewStore()
}

func newGenerator(cfg config.Config, store *template.Store, logger *zap.Logger) *generator.Generator {
	orientation := pdf.OrientationPortrait
	if cfg.Landscape {
		orientation = pdf.OrientationLandscape
	}

	registry := pdf.NewRegistry()
	renderer, err := pdf.NewChromedpRenderer(&pdf.ChromedpConfig{
		RemoteURL: cfg.ChromeURL,
		NoSandbox: cfg.NoSandbox,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to init PDF renderer: %v", err)
	}
	registry.MustRegister(renderer)

	return generator.New(
		generator.WithTemplateStore(store),
		generator.WithRegistry(registry),
		generator.WithPaper(pdf.PaperSize(cfg.Paper), orientation),
		generator.WithTitle(resolveTitle(cfg.Title)),
		generator.WithLogger(logger),
	)
}

// resolveTitle maps the shorthand document types onto their headings; any
// other value is used verbatim.
func resolveTitle(title string) string {
	switch title {
	case "", "estimate":
		return document.DefaultTitle
	case "statement":
		return document.TitleTransactionStatement
	default:
		return title
	}
}

func runSingle(ctx context.Context, gen *generator.Generator, cfg config.Config, inputPath, outputPath string) {
	if outputPath == "" {
		outputPath = batch.OutputPath(inputPath, cfg.OutputDir)
	}

	err := gen.Generate(ctx, generator.Request{
		Source:     record.SourceFromFile(inputPath),
		Template:   templateOrDefault(cfg.Template),
		OutputPath: outputPath,
	})
	if err != nil {
		fmt.Printf("✗ %s: %v\n", inputPath, err)
		os.Exit(1)
	}
	fmt.Printf("✓ %s -> %s\n", inputPath, outputPath)
}

func runBatch(ctx context.Context, gen *generator.Generator, store *template.Store, cfg config.Config, logger *zap.Logger, progress bool, reportPath string) {
	templates := []string{templateOrDefault(cfg.Template)}
	withSuffix := false

	if cfg.Template == prompt.AllTemplates {
		names, err := store.Names()
		if err != nil {
			log.Fatalf("Failed to list templates: %v", err)
		}
		if len(names) == 0 {
			log.Fatalf("No templates found")
		}
		templates = names
		withSuffix = true
	}

	var combined batch.Summary

	for _, name := range templates {
		options := []batch.Option{
			batch.WithLogger(logger),
			batch.WithProgress(progress),
			batch.WithTemplate(name),
		}
		if withSuffix {
			options = append(options, batch.WithOutputSuffix("_"+name))
		}

		runner := batch.NewRunner(gen, options...)
		summary, err := runner.Run(ctx, cfg.InputDir, cfg.OutputDir)
		if err != nil {
			log.Fatalf("Batch aborted: %v", err)
		}
		combined.Results = append(combined.Results, summary.Results...)
	}

	for _, res := range combined.Results {
		if res.Err != nil {
			fmt.Printf("✗ %s: %v\n", res.Input, res.Err)
		} else {
			fmt.Printf("✓ %s -> %s\n", res.Input, res.Output)
		}
	}
	fmt.Printf("%d succeeded, %d failed\n", combined.Succeeded(), combined.Failed())

	if reportPath != "" {
		if err := batch.WriteReport(reportPath, combined); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		fmt.Printf("Report written to %s\n", reportPath)
	}

	if combined.Failed() > 0 {
		os.Exit(1)
	}
}

func templateOrDefault(name string) string {
	if name == "" || name == prompt.AllTemplates {
		return template.DefaultTemplateName
	}
	return name
}
