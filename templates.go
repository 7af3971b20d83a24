package docgen

import (
	"io/fs"

	"github.com/goliatone/go-docgen/pkg/template"
)

// EmbeddedTemplates exposes the built-in document templates so callers can
// reuse or extend them without importing the template package directly.
func EmbeddedTemplates() fs.FS {
	return template.EmbeddedFS()
}
