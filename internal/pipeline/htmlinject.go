package pipeline

import (
	"context"
	"errors"
	"strings"
)

// Page template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplateNoContent indicates a page template without a content slot.
var ErrTemplateNoContent = errors.New("page template has no " + ContentPlaceholder + " placeholder")

// PageTemplate fills the title and content placeholders of a page.
type PageTemplate struct {
	raw string
}

// NewPageTemplate validates raw and returns a reusable template.
// A missing title placeholder is allowed.
func NewPageTemplate(raw string) (*PageTemplate, error) {
	if !strings.Contains(raw, ContentPlaceholder) {
		return nil, ErrTemplateNoContent
	}
	return &PageTemplate{raw: raw}, nil
}

// Render substitutes every placeholder occurrence in one pass, so a title or
// content that itself contains a placeholder is left as written.
func (p *PageTemplate) Render(title, content string) string {
	return strings.NewReplacer(
		TitlePlaceholder, title,
		ContentPlaceholder, content,
	).Replace(p.raw)
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so the stylesheet cannot close its <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
