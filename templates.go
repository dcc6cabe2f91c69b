package uidom

import (
	"io/fs"

	"github.com/goliatone/go-uidom/pkg/preview"
)

// PreviewTemplates exposes the built-in HTML preview template so callers can
// reuse or extend it without importing the preview package directly.
func PreviewTemplates() fs.FS {
	return preview.TemplatesFS()
}
