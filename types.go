package mdsite

import (
	"slices"
	"time"
)

// Engine selects the Markdown to HTML implementation.
type Engine string

// Available engines.
const (
	// EngineNative builds the document tree of the constrained dialect.
	EngineNative Engine = "native"

	// EngineGoldmark renders GFM through goldmark, with chroma highlighting.
	EngineGoldmark Engine = "goldmark"
)

// Engines lists the valid engines.
var Engines = []Engine{EngineNative, EngineGoldmark}

// IsValid reports whether e names a known engine.
func (e Engine) IsValid() bool {
	return slices.Contains(Engines, e)
}

// Input contains conversion parameters.
type Input struct {
	Markdown string // Markdown content
	CSS      string // Extra CSS appended after the converter style (optional)
}

// ConvertResult contains the output of a conversion.
type ConvertResult struct {
	HTML    []byte // Complete page
	Content string // HTML fragment produced by the engine, before templating
	Title   string // Text of the first level 1 heading
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine        Engine
	templateInput string // name, file path, or inline HTML
	styleInput    string // name, file path, or inline CSS; empty = no style
	basePath      string
	assetPath     string
	timeout       time.Duration
}

// defaultTimeout bounds a single conversion.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdsite: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the Markdown engine. Default is EngineNative.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithTemplate selects the page template.
// Accepts a template name ("default"), a file path ("./page.html"),
// or inline HTML containing "<".
// The template must contain {{ Content }}; {{ Title }} is optional.
func WithTemplate(input string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = input
	}
}

// WithStyle sets the CSS style for conversions.
// Accepts a style name ("default", "dark"), a file path ("./custom.css"),
// or inline CSS containing "{". An empty string disables the style.
func WithStyle(input string) Option {
	return func(c *Converter) {
		c.cfg.styleInput = input
	}
}

// WithBasePath sets the prefix for site-absolute links, e.g. "/blog/".
// A missing trailing slash is added. "/" leaves links unchanged.
func WithBasePath(base string) Option {
	return func(c *Converter) {
		c.cfg.basePath = base
	}
}

// WithAssetPath loads styles and templates from a directory, falling back
// to the built-in assets when a name is not found there.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}
