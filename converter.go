package mdsite

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.NormalizingPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.NativeConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ AssetLoader                   = (*assetLoaderAdapter)(nil)
)

// Converter orchestrates the Markdown to page pipeline.
// Create with NewConverter and use Convert for each page. A Converter holds
// no per-call state and may be shared between goroutines.
type Converter struct {
	cfg               converterConfig
	assetLoader       AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	cssInjector       pipeline.CSSInjector
	template          *pipeline.PageTemplate
	style             string
	basePath          string
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithEngine, WithStyle, WithBasePath).
// Returns error if an option value is invalid or an asset cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:        EngineNative,
			templateInput: DefaultTemplate,
			styleInput:    DefaultStyle,
			basePath:      "/",
			timeout:       defaultTimeout,
		},
		preprocessor: &pipeline.NormalizingPreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.htmlConverter == nil {
		conv, err := newHTMLConverter(c.cfg.engine)
		if err != nil {
			return nil, err
		}
		c.htmlConverter = conv
	}

	if err := config.ValidateBasePath(c.cfg.basePath); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBasePath, c.cfg.basePath)
	}
	c.basePath = pipeline.NormalizeBasePath(c.cfg.basePath)

	switch {
	case c.publicAssetLoader != nil:
		c.assetLoader = c.publicAssetLoader
	default:
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.assetLoader = loader
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}
	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	return c, nil
}

// newHTMLConverter returns the fragment converter for engine.
func newHTMLConverter(engine Engine) (pipeline.HTMLConverter, error) {
	switch engine {
	case EngineNative:
		return &pipeline.NativeConverter{}, nil
	case EngineGoldmark:
		return pipeline.NewGoldmarkConverter(), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be one of %v)", ErrInvalidEngine, engine, Engines)
	}
}

// Convert runs the full pipeline and returns the page and its parts.
// The context is used for cancellation; the converter timeout applies on top.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	content, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title, err := pipeline.ExtractTitle(mdContent)
	if err != nil {
		return nil, err
	}

	page := c.template.Render(title, content)

	// Converter style first, per-call CSS last so it can override.
	cssContent := c.style
	if input.CSS != "" {
		if cssContent != "" {
			cssContent += "\n"
		}
		cssContent += input.CSS
	}
	page = c.cssInjector.InjectCSS(ctx, page, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	page, err = pipeline.RewriteBasePath(page, c.basePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}

	return &ConvertResult{
		HTML:    []byte(page),
		Content: content,
		Title:   title,
	}, nil
}

// resolveStyle resolves the style input (CSS content, path, or name) to CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.style = input
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.style = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.style = css
	return nil
}

// resolveTemplate resolves the template input (HTML content, path, or name)
// and checks it has a content placeholder.
func (c *Converter) resolveTemplate() error {
	input := c.cfg.templateInput
	if input == "" {
		input = DefaultTemplate
	}

	var raw string
	switch {
	case fileutil.IsHTML(input):
		raw = input
	case fileutil.IsFilePath(input):
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading template file %q: %w", input, err)
		}
		raw = string(content)
	default:
		content, err := c.assetLoader.LoadTemplate(input)
		if err != nil {
			return fmt.Errorf("loading template %q: %w", input, err)
		}
		raw = content
	}

	tmpl, err := pipeline.NewPageTemplate(raw)
	if err != nil {
		return fmt.Errorf("template %q: %w", templateLabel(input), err)
	}
	c.template = tmpl
	return nil
}

// templateLabel shortens inline markup for error messages.
func templateLabel(input string) string {
	if fileutil.IsHTML(input) {
		return "inline"
	}
	return input
}
