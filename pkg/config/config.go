// Package config loads the optional docgen YAML configuration file. Flags
// take precedence over file values; the file exists so recurring batch setups
// do not need a wall of flags. There is no environment variable lookup.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks when no -config flag is given.
const DefaultPath = "docgen.yaml"

// Config mirrors the YAML file shape.
type Config struct {
	// InputDir holds the record JSON files.
	InputDir string `yaml:"input_dir"`
	// OutputDir receives the generated PDFs.
	OutputDir string `yaml:"output_dir"`
	// TemplateDir holds HTML templates; empty uses the embedded set.
	TemplateDir string `yaml:"template_dir"`
	// Template names the template to render with.
	Template string `yaml:"template"`
	// Title overrides the document heading.
	Title string `yaml:"title"`
	// Paper selects the page size (A4, A5, Letter).
	Paper string `yaml:"paper"`
	// Landscape flips the page orientation.
	Landscape bool `yaml:"landscape"`
	// Renderer names the PDF renderer.
	Renderer string `yaml:"renderer"`
	// ChromeURL points at a remote Chrome instance for rendering.
	ChromeURL string `yaml:"chrome_url"`
	// NoSandbox runs Chrome without its sandbox.
	NoSandbox bool `yaml:"no_sandbox"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		InputDir:  "data",
		OutputDir: "output",
		Paper:     "A4",
	}
}

// Load reads a YAML config file, layering it over Default. A missing file at
// the default path is not an error; a missing file at an explicit path is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.InputDir = strings.TrimSpace(cfg.InputDir)
	cfg.OutputDir = strings.TrimSpace(cfg.OutputDir)
	if cfg.InputDir == "" {
		cfg.InputDir = Default().InputDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = Default().OutputDir
	}
	return cfg, nil
}
