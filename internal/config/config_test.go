package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Notes:
// - validateOutputDir compares against the working directory; tests that
//   change it use t.Chdir and therefore do not run in parallel.

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	checks := []struct {
		field string
		got   string
		want  string
	}{
		{"content.dir", cfg.Content.Dir, "content"},
		{"output.dir", cfg.Output.Dir, "docs"},
		{"static.dir", cfg.Static.Dir, "static"},
		{"template.name", cfg.Template.Name, "default"},
		{"style.name", cfg.Style.Name, "default"},
		{"site.basePath", cfg.Site.BasePath, "/"},
		{"markdown.engine", cfg.Markdown.Engine, EngineNative},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.field, c.got, c.want)
		}
	}
	if cfg.Build.Workers != 0 {
		t.Errorf("build.workers = %d, want 0", cfg.Build.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Field and value checks
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults in a temp tree",
			mutate: func(*Config) {},
		},
		{
			name:   "goldmark engine",
			mutate: func(c *Config) { c.Markdown.Engine = EngineGoldmark },
		},
		{
			name:   "absolute url base path",
			mutate: func(c *Config) { c.Site.BasePath = "https://example.com/site/" },
		},
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Markdown.Engine = "pandoc" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "relative base path",
			mutate:  func(c *Config) { c.Site.BasePath = "blog/" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "protocol-relative base path",
			mutate:  func(c *Config) { c.Site.BasePath = "//cdn.example.com/" },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Build.Workers = -1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "too many workers",
			mutate:  func(c *Config) { c.Build.Workers = MaxWorkers + 1 },
			wantErr: ErrInvalidValue,
		},
		{
			name:    "base path too long",
			mutate:  func(c *Config) { c.Site.BasePath = "/" + strings.Repeat("a", MaxBasePathLength) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "output contains content",
			mutate:  func(c *Config) { c.Output.Dir = root },
			wantErr: ErrUnsafeOutputDir,
		},
		{
			name:    "output equals static",
			mutate:  func(c *Config) { c.Output.Dir = c.Static.Dir },
			wantErr: ErrUnsafeOutputDir,
		},
		{
			name:    "filesystem root",
			mutate:  func(c *Config) { c.Output.Dir = string(filepath.Separator) },
			wantErr: ErrUnsafeOutputDir,
		},
		{
			name:   "sibling named like content",
			mutate: func(c *Config) { c.Output.Dir = filepath.Join(root, "content-out") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			cfg.Content.Dir = filepath.Join(root, "content")
			cfg.Static.Dir = filepath.Join(root, "static")
			cfg.Output.Dir = filepath.Join(root, "docs")
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_OutputIsWorkingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg := DefaultConfig()
	cfg.Output.Dir = "."
	if err := cfg.Validate(); !errors.Is(err, ErrUnsafeOutputDir) {
		t.Errorf("Validate() error = %v, want ErrUnsafeOutputDir", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	t.Parallel()

	if err := validateFieldLength("f", "1234567890", 10); err != nil {
		t.Errorf("value at limit: unexpected error %v", err)
	}
	err := validateFieldLength("test.field", "12345678901", 10)
	if !errors.Is(err, ErrFieldTooLong) {
		t.Fatalf("error = %v, want ErrFieldTooLong", err)
	}
	if !strings.Contains(err.Error(), "test.field") {
		t.Errorf("error %q should name the field", err)
	}
}

func TestIsWithin(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator), "srv", "site")
	tests := []struct {
		path string
		want bool
	}{
		{base, true},
		{filepath.Join(base, "content"), true},
		{filepath.Join(base, "a", "b"), true},
		{filepath.Join(string(filepath.Separator), "srv"), false},
		{base + "-old", false},
		{filepath.Join(string(filepath.Separator), "srv", "..site"), false},
	}

	for _, tt := range tests {
		if got := isWithin(tt.path, base); got != tt.want {
			t.Errorf("isWithin(%q, %q) = %v, want %v", tt.path, base, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - File loading and lookup
// ---------------------------------------------------------------------------

func writeConfig(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoadConfig_FilePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr error
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "partial file keeps defaults",
			content: `site:
  basePath: /blog/
markdown:
  engine: goldmark
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Site.BasePath != "/blog/" {
					t.Errorf("site.basePath = %q, want /blog/", cfg.Site.BasePath)
				}
				if cfg.Markdown.Engine != EngineGoldmark {
					t.Errorf("markdown.engine = %q, want goldmark", cfg.Markdown.Engine)
				}
				if cfg.Template.Name != "default" {
					t.Errorf("template.name = %q, want default kept", cfg.Template.Name)
				}
			},
		},
		{
			name:    "unknown key",
			content: "theme: dark\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "invalid value",
			content: "build:\n  workers: 1000\n",
			wantErr: ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(dir, tt.name, "site.yaml")
			writeConfig(t, path, tt.content)

			cfg, err := LoadConfig(path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig(missing) error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_ByName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)

	t.Run("local yml", func(t *testing.T) {
		writeConfig(t, filepath.Join(dir, "blog.yml"), "output:\n  dir: public\n")

		cfg, err := LoadConfig("blog")
		if err != nil {
			t.Fatalf("LoadConfig() unexpected error: %v", err)
		}
		if cfg.Output.Dir != "public" {
			t.Errorf("output.dir = %q, want public", cfg.Output.Dir)
		}
	})

	t.Run("not found lists tried paths", func(t *testing.T) {
		_, err := LoadConfig("nothing")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "nothing.yaml") || !strings.Contains(err.Error(), "nothing.yml") {
			t.Errorf("error %q should list tried paths", err)
		}
	})
}

func TestConfigYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Site.BasePath = "/blog/"
	cfg.Build.Workers = 3

	data, err := cfg.YAML()
	if err != nil {
		t.Fatalf("YAML() unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(encoded) unexpected error: %v\n%s", err, data)
	}
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
