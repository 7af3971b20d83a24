package template

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine performs placeholder substitution over HTML templates using a
// pongo2 template set. Parsed templates are cached by content so rendering
// the same template for every record in a batch parses it once.
type Engine struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	cache       map[string]*pongo2.Template
}

// NewEngine constructs an Engine with an isolated template set.
func NewEngine() *Engine {
	return &Engine{
		templateSet: pongo2.NewSet("docgen", nil),
		cache:       make(map[string]*pongo2.Template),
	}
}

// Substitute replaces every placeholder token in content with its mapping
// value and returns the substituted document. A token whose name is absent
// from the mapping is an error; mapping keys the template never references
// are not.
func (e *Engine) Substitute(content string, mapping map[string]string) (string, error) {
	if e == nil || e.templateSet == nil {
		return "", errors.New("template: engine is nil")
	}

	if err := ValidatePlaceholders(content, mapping); err != nil {
		return "", err
	}

	tmpl, err := e.getTemplate(content)
	if err != nil {
		return "", fmt.Errorf("template: parse: %w", err)
	}

	ctx := make(pongo2.Context, len(mapping))
	for key, value := range mapping {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		// Pre-rendered fragments and display strings must land in the
		// document verbatim, so every value is marked safe for pongo2's
		// autoescaping.
		ctx[key] = pongo2.AsSafeValue(value)
	}

	var buf bytes.Buffer

	e.mu.RLock()
	err = tmpl.ExecuteWriter(ctx, &buf)
	e.mu.RUnlock()

	if err != nil {
		return "", fmt.Errorf("template: execute: %w", err)
	}
	return buf.String(), nil
}

func (e *Engine) getTemplate(content string) (*pongo2.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[content]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[content]; ok {
		return tmpl, nil
	}

	tmpl, err := e.templateSet.FromString(content)
	if err != nil {
		return nil, err
	}

	e.cache[content] = tmpl
	return tmpl, nil
}
