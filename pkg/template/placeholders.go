package template

import (
	"fmt"
	"regexp"
)

// placeholderPattern matches the flat substitution tokens the generator
// supports: {{ name }} with insignificant whitespace around the name.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// TemplateError reports a template referencing a placeholder the mapping does
// not define.
type TemplateError struct {
	Placeholder string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template: undefined placeholder %q", e.Placeholder)
}

// Placeholders returns the distinct placeholder names referenced by content,
// in first-appearance order.
func Placeholders(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// ValidatePlaceholders verifies every placeholder in content has a mapping
// value, returning a TemplateError naming the first undefined one.
func ValidatePlaceholders(content string, mapping map[string]string) error {
	for _, name := range Placeholders(content) {
		if _, ok := mapping[name]; !ok {
			return &TemplateError{Placeholder: name}
		}
	}
	return nil
}
