package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
	ErrUnsafeOutputDir = errors.New("unsafe output directory")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // PATH_MAX on Linux
	MaxAssetLength    = 1 << 16
	MaxBasePathLength = 2048 // Browser URL limit
	MaxWorkers        = 64
)

// Engine names accepted by markdown.engine.
const (
	EngineNative   = "native"
	EngineGoldmark = "goldmark"
)

// Engines lists the valid markdown.engine values.
var Engines = []string{EngineNative, EngineGoldmark}

// Config holds all configuration for a site build.
type Config struct {
	Content  ContentConfig  `yaml:"content"`
	Output   OutputConfig   `yaml:"output"`
	Static   StaticConfig   `yaml:"static"`
	Template TemplateConfig `yaml:"template"`
	Style    StyleConfig    `yaml:"style"`
	Assets   AssetsConfig   `yaml:"assets"`
	Site     SiteConfig     `yaml:"site"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Build    BuildConfig    `yaml:"build"`
}

// ContentConfig defines where Markdown sources live.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// OutputConfig defines the generated site directory. It is emptied before
// every build.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig defines the directory copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Empty = no static files
}

// TemplateConfig selects the page template: a name, a file path, or inline HTML.
type TemplateConfig struct {
	Name string `yaml:"name"`
}

// StyleConfig selects the stylesheet: a name, a file path, or inline CSS.
type StyleConfig struct {
	Name string `yaml:"name"` // Empty = no CSS injected
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// SiteConfig defines site-wide URL options.
type SiteConfig struct {
	BasePath string `yaml:"basePath"` // Prefix for site-absolute links, e.g. "/blog/"
}

// MarkdownConfig selects the conversion engine.
type MarkdownConfig struct {
	Engine string `yaml:"engine"` // "native" (default) or "goldmark"
}

// BuildConfig defines build concurrency.
type BuildConfig struct {
	Workers int `yaml:"workers"` // 0 = auto
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content:  ContentConfig{Dir: "content"},
		Output:   OutputConfig{Dir: "docs"},
		Static:   StaticConfig{Dir: "static"},
		Template: TemplateConfig{Name: "default"},
		Style:    StyleConfig{Name: "default"},
		Site:     SiteConfig{BasePath: "/"},
		Markdown: MarkdownConfig{Engine: EngineNative},
		Build:    BuildConfig{Workers: 0},
	}
}

// Validate checks field lengths and values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"static.dir", c.Static.Dir, MaxPathLength},
		{"template.name", c.Template.Name, MaxAssetLength},
		{"style.name", c.Style.Name, MaxAssetLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"site.basePath", c.Site.BasePath, MaxBasePathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Markdown.Engine != "" && !slices.Contains(Engines, c.Markdown.Engine) {
		return fmt.Errorf("%w: markdown.engine %q (must be one of %s)",
			ErrInvalidValue, c.Markdown.Engine, strings.Join(Engines, ", "))
	}
	if err := ValidateBasePath(c.Site.BasePath); err != nil {
		return err
	}
	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d",
			ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}

	return c.validateOutputDir()
}

// ValidateBasePath accepts "", a path starting with "/", or an http(s) URL.
func ValidateBasePath(base string) error {
	if base == "" || (strings.HasPrefix(base, "/") && !strings.HasPrefix(base, "//")) {
		return nil
	}
	if fileutil.IsURL(base) {
		return nil
	}
	return fmt.Errorf("%w: site.basePath %q must start with / or http(s)://", ErrInvalidValue, base)
}

// validateOutputDir refuses output directories whose reset would delete
// sources: the working directory, a filesystem root, or a directory that
// contains the content or static directory.
func (c *Config) validateOutputDir() error {
	if c.Output.Dir == "" {
		return nil
	}
	out, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeOutputDir, err)
	}
	if cwd, err := os.Getwd(); err == nil && out == cwd {
		return fmt.Errorf("%w: %s is the working directory", ErrUnsafeOutputDir, c.Output.Dir)
	}
	if filepath.Dir(out) == out {
		return fmt.Errorf("%w: %s is a filesystem root", ErrUnsafeOutputDir, c.Output.Dir)
	}

	for _, src := range []struct{ field, dir string }{
		{"content.dir", c.Content.Dir},
		{"static.dir", c.Static.Dir},
	} {
		if src.dir == "" {
			continue
		}
		abs, err := filepath.Abs(src.dir)
		if err != nil {
			continue
		}
		if isWithin(abs, out) {
			return fmt.Errorf("%w: %s would delete %s (%s)", ErrUnsafeOutputDir, c.Output.Dir, src.field, src.dir)
		}
	}
	return nil
}

// isWithin reports whether path equals dir or lies below it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeFile(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, $XDG_CONFIG_HOME/go-mdsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdsite", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// YAML encodes the configuration in the file format LoadConfig reads.
func (c *Config) YAML() ([]byte, error) {
	return yamlutil.Marshal(c)
}
