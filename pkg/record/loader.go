package record

import (
	"context"
	"io/fs"
)

// Loader resolves a Source into a validated Estimate.
type Loader interface {
	Load(ctx context.Context, src Source) (Estimate, error)
}

// LoaderOptions carries pre-resolved loader configuration.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions during construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem supplies the fs.FS used for SourceKindFS sources.
func WithFileSystem(fsys fs.FS) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileSystem = fsys
	}
}

// NewLoaderOptions folds options into a LoaderOptions value.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var cfg LoaderOptions
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
