package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded default template bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
