package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/config"
)

// envPrefix marks the variables read by the CLI.
const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG: config file name or path
	ContentDir string // MDSITE_CONTENT_DIR
	OutputDir  string // MDSITE_OUTPUT_DIR
	StaticDir  string // MDSITE_STATIC_DIR
	Template   string // MDSITE_TEMPLATE: name, path, or inline HTML
	Style      string // MDSITE_STYLE: name, path, or inline CSS
	BasePath   string // MDSITE_BASE_PATH: link prefix
	Engine     string // MDSITE_ENGINE: native, goldmark
	Workers    int    // MDSITE_WORKERS: parallel workers, 0 = unset
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_TEMPLATE":    true,
	"MDSITE_STYLE":       true,
	"MDSITE_BASE_PATH":   true,
	"MDSITE_ENGINE":      true,
	"MDSITE_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDSITE_CONFIG"),
		ContentDir: os.Getenv("MDSITE_CONTENT_DIR"),
		OutputDir:  os.Getenv("MDSITE_OUTPUT_DIR"),
		StaticDir:  os.Getenv("MDSITE_STATIC_DIR"),
		Template:   os.Getenv("MDSITE_TEMPLATE"),
		Style:      os.Getenv("MDSITE_STYLE"),
		BasePath:   os.Getenv("MDSITE_BASE_PATH"),
		Engine:     os.Getenv("MDSITE_ENGINE"),
	}

	// Invalid or non-positive values are ignored
	if workers := os.Getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDSITE_* variables.
// Helps catch typos like MDSITE_OUTPUT instead of MDSITE_OUTPUT_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config values with the environment variables
// that are set. Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.StaticDir != "" {
		cfg.Static.Dir = env.StaticDir
	}
	if env.Template != "" {
		cfg.Template.Name = env.Template
	}
	if env.Style != "" {
		cfg.Style.Name = env.Style
	}
	if env.BasePath != "" {
		cfg.Site.BasePath = env.BasePath
	}
	if env.Engine != "" {
		cfg.Markdown.Engine = env.Engine
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
