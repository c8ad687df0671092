package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"

	"driving-theory-web/internal/i18n"

	"github.com/yuin/goldmark"
)

// Legal document identifiers.
const (
	LegalTerms   = "terms"
	LegalPrivacy = "privacy"
)

// renderLegal converts an embedded per-locale Markdown document
// (web/content/<doc>.<locale>.md) into HTML.
func renderLegal(contentFS fs.FS, doc string, locale i18n.Locale) (template.HTML, error) {
	path := fmt.Sprintf("content/%s.%s.md", doc, locale)
	source, err := fs.ReadFile(contentFS, path)
	if err != nil {
		return "", fmt.Errorf("failed to read legal document %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to render legal document %s: %w", path, err)
	}
	// Goldmark output over our own embedded documents is trusted.
	return template.HTML(buf.String()), nil
}
