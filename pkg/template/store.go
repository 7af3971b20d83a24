package template

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const templateExt = ".html"

// Store resolves template names against a template directory (or fs.FS) and
// caches file contents so a batch run reads each template once. Names are the
// file stem: "estimate" resolves estimate.html.
type Store struct {
	mu    sync.RWMutex
	dir   string
	fsys  fs.FS
	cache map[string]string
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithStoreDir loads templates from a directory on disk.
func WithStoreDir(dir string) StoreOption {
	return func(s *Store) {
		s.dir = strings.TrimSpace(dir)
	}
}

// WithStoreFS loads templates from an fs.FS.
func WithStoreFS(fsys fs.FS) StoreOption {
	return func(s *Store) {
		s.fsys = fsys
	}
}

// NewStore constructs a Store. Without options it serves the embedded
// default templates.
func NewStore(options ...StoreOption) *Store {
	s := &Store{
		cache: make(map[string]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.dir == "" && s.fsys == nil {
		s.fsys = EmbeddedFS()
	}
	return s
}

// Names lists the available template names, sorted.
func (s *Store) Names() ([]string, error) {
	var entries []string

	if s.dir != "" {
		dirEntries, err := os.ReadDir(s.dir)
		if err != nil {
			return nil, fmt.Errorf("template: read template dir: %w", err)
		}
		for _, entry := range dirEntries {
			entries = append(entries, entry.Name())
		}
	} else {
		fsEntries, err := fs.ReadDir(s.fsys, ".")
		if err != nil {
			return nil, fmt.Errorf("template: read template fs: %w", err)
		}
		for _, entry := range fsEntries {
			entries = append(entries, entry.Name())
		}
	}

	var names []string
	for _, name := range entries {
		if strings.HasSuffix(name, templateExt) {
			names = append(names, strings.TrimSuffix(name, templateExt))
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load returns the template content for a name, reading it at most once.
func (s *Store) Load(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("template: template name is required")
	}

	s.mu.RLock()
	if content, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return content, nil
	}
	s.mu.RUnlock()

	var (
		data []byte
		err  error
	)
	if s.dir != "" {
		data, err = os.ReadFile(filepath.Join(s.dir, name+templateExt))
	} else {
		data, err = fs.ReadFile(s.fsys, name+templateExt)
	}
	if err != nil {
		return "", fmt.Errorf("template: load template %q: %w", name, err)
	}

	content := string(data)

	s.mu.Lock()
	s.cache[name] = content
	s.mu.Unlock()

	return content, nil
}
