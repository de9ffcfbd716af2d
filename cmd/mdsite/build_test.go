package main

// Notes:
// - runMain end to end: every case builds a site below t.TempDir() with
//   explicit --output and --static so the package directory is never touched.
// - Refused builds (unsafe output, unknown style) must leave existing files
//   in place: the output is only reset once configuration and assets resolve.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-mdsite/internal/config"
)

// siteFixture is a content tree with static files and an output directory.
type siteFixture struct {
	content string
	static  string
	out     string
}

func newSiteFixture(t *testing.T) siteFixture {
	t.Helper()
	root := t.TempDir()
	f := siteFixture{
		content: filepath.Join(root, "content"),
		static:  filepath.Join(root, "static"),
		out:     filepath.Join(root, "docs"),
	}
	writeFile(t, f.content, "index.md", "# Home\n\nRead [about](/about.html)\n")
	writeFile(t, f.content, "blog/post.md", "# Post\n\nSome **bold** text\n")
	writeFile(t, f.static, "css/site.css", "body{}")
	writeFile(t, f.out, "stale.html", "old")
	return f
}

func (f siteFixture) args(extra ...string) []string {
	return append([]string{"mdsite", "build", f.content, "-o", f.out, "--static", f.static}, extra...)
}

func readPage(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// ---------------------------------------------------------------------------
// TestRunBuild - Site builds through runMain
// ---------------------------------------------------------------------------

func TestRunBuild_Site(t *testing.T) {
	t.Parallel()

	f := newSiteFixture(t)
	env, stdout, stderr := testEnv()

	code := runMain(f.args("--base-path", "/blog/", "-w", "2"), env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want 0 (stderr: %s)", code, stderr)
	}

	index := readPage(t, filepath.Join(f.out, "index.html"))
	for _, want := range []string{"<title>Home</title>", `href="/blog/about.html"`, "<style>", "<h1>Home</h1>"} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html should contain %q:\n%s", want, index)
		}
	}
	post := readPage(t, filepath.Join(f.out, "blog", "post.html"))
	if !strings.Contains(post, "<b>bold</b>") {
		t.Errorf("post.html should contain bold text:\n%s", post)
	}
	if got := readPage(t, filepath.Join(f.out, "css", "site.css")); got != "body{}" {
		t.Errorf("static css = %q, want copied verbatim", got)
	}
	if _, err := os.Stat(filepath.Join(f.out, "stale.html")); !os.IsNotExist(err) {
		t.Errorf("stale output should be removed, stat error = %v", err)
	}
	if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout = %q, want summary", stdout.String())
	}
}

func TestRunBuild_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		extra   []string
		check   func(t *testing.T, page string)
		implied bool // run without the "build" command
	}{
		{
			name:  "no style",
			extra: []string{"--no-style"},
			check: func(t *testing.T, page string) {
				if strings.Contains(page, "<style>") {
					t.Errorf("page should have no style block:\n%s", page)
				}
			},
		},
		{
			name:  "inline template",
			extra: []string{"--template", "<main>{{ Content }}</main>", "--no-style"},
			check: func(t *testing.T, page string) {
				if !strings.HasPrefix(page, "<main><div><h1>Home</h1>") {
					t.Errorf("page = %q, want inline template", page)
				}
			},
		},
		{
			name:  "goldmark engine",
			extra: []string{"--engine", "goldmark"},
			check: func(t *testing.T, page string) {
				if !strings.Contains(page, "<h1") || !strings.Contains(page, "Home</h1>") {
					t.Errorf("page should contain a goldmark heading:\n%s", page)
				}
			},
		},
		{
			name:    "implicit build",
			implied: true,
			check: func(t *testing.T, page string) {
				if !strings.Contains(page, "<title>Home</title>") {
					t.Errorf("page should use the default template:\n%s", page)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newSiteFixture(t)
			args := f.args(tt.extra...)
			if tt.implied {
				args = append(args[:1], args[2:]...)
			}

			env, _, stderr := testEnv()
			if code := runMain(args, env); code != ExitSuccess {
				t.Fatalf("runMain() = %d, want 0 (stderr: %s)", code, stderr)
			}
			tt.check(t, readPage(t, filepath.Join(f.out, "index.html")))
		})
	}
}

func TestRunBuild_ConfigFile(t *testing.T) {
	t.Parallel()

	f := newSiteFixture(t)
	cfgPath := filepath.Join(t.TempDir(), "site.yaml")
	cfgYAML := "content:\n  dir: " + f.content + "\noutput:\n  dir: " + f.out +
		"\nstatic:\n  dir: " + f.static + "\nsite:\n  basePath: /docs/\n"
	if err := os.WriteFile(cfgPath, []byte(cfgYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	env, _, stderr := testEnv()
	if code := runMain([]string{"mdsite", "build", "-c", cfgPath, "-q"}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d, want 0 (stderr: %s)", code, stderr)
	}

	index := readPage(t, filepath.Join(f.out, "index.html"))
	if !strings.Contains(index, `href="/docs/about.html"`) {
		t.Errorf("config basePath not applied:\n%s", index)
	}
}

func TestRunBuild_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		page         string // replaces index.md when set
		extra        []string
		outIsContent bool
		wantCode     int
		wantInStderr []string
		keepsOutput  bool
	}{
		{
			name:         "unmatched delimiter",
			page:         "# Home\n\nan *open\n",
			wantCode:     ExitUsage,
			wantInStderr: []string{"FAILED", "unmatched * delimiter", "hint: close *", "1 of 2 page(s) failed"},
		},
		{
			name:         "missing title",
			page:         "no heading here\n",
			wantCode:     ExitUsage,
			wantInStderr: []string{"no heading level 1 found", `hint: start the page with a "# Title" line`},
		},
		{
			name:         "unknown style",
			extra:        []string{"--style", "nonexistent-xyz"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"style not found", "hint: available:"},
			keepsOutput:  true,
		},
		{
			name:         "invalid engine",
			extra:        []string{"--engine", "pandoc"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"markdown.engine"},
			keepsOutput:  true,
		},
		{
			name:         "output contains content",
			outIsContent: true,
			wantCode:     ExitUsage,
			wantInStderr: []string{"unsafe output directory", "hint:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newSiteFixture(t)
			if tt.page != "" {
				writeFile(t, f.content, "index.md", tt.page)
			}
			if tt.outIsContent {
				f.out = f.content
			}

			env, _, stderr := testEnv()
			code := runMain(f.args(tt.extra...), env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d (stderr: %s)", code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
			if tt.keepsOutput {
				if _, err := os.Stat(filepath.Join(f.out, "stale.html")); err != nil {
					t.Errorf("refused build should keep existing output: %v", err)
				}
			}
			if _, err := os.Stat(filepath.Join(f.content, "index.md")); err != nil {
				t.Errorf("content must never be deleted: %v", err)
			}
		})
	}
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Build.Workers = 8
	cfg.Style.Name = "dark"

	flags := &buildFlags{
		site:   siteFlags{output: "public", workers: 0, workersSet: true},
		assets: assetFlags{template: "page.html", noStyle: true},
	}
	mergeFlags(flags, []string{"pages"}, cfg)

	if cfg.Content.Dir != "pages" || cfg.Output.Dir != "public" {
		t.Errorf("dirs = %q, %q; want pages, public", cfg.Content.Dir, cfg.Output.Dir)
	}
	if cfg.Build.Workers != 0 {
		t.Errorf("Workers = %d, want explicit 0", cfg.Build.Workers)
	}
	if cfg.Style.Name != "" {
		t.Errorf("Style = %q, want empty with --no-style", cfg.Style.Name)
	}
	if cfg.Template.Name != "page.html" {
		t.Errorf("Template = %q, want page.html", cfg.Template.Name)
	}
	if cfg.Static.Dir != "static" {
		t.Errorf("Static = %q, unset flag should keep default", cfg.Static.Dir)
	}
}
