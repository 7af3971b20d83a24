package template

import (
	"embed"
	"io/fs"
)

//go:embed embedded/*.html
var embeddedTemplates embed.FS

// DefaultTemplateName is the template used when callers do not pick one.
const DefaultTemplateName = "estimate"

// EmbeddedFS returns the bundled document templates so the generator works
// out of the box without a template directory.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "embedded")
	if err != nil {
		panic(err)
	}
	return sub
}
