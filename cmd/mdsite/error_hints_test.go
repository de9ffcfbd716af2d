package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string // substring; empty means no hint
	}{
		{"nil", nil, ""},
		{"unknown", errors.New("boom"), ""},
		{"delimiter", fmt.Errorf("converting: %w", &mdsite.DelimiterError{Delimiter: "`"}), "close `"},
		{"missing title", mdsite.ErrMissingTitle, "# Title"},
		{"config not found", fmt.Errorf("%w: tried blog.yaml, /home/u/.config/go-mdsite/blog.yaml", config.ErrConfigNotFound), "or create /home/u/.config/go-mdsite/blog.yaml"},
		{"unsafe output", config.ErrUnsafeOutputDir, "dedicated directory"},
		{"write page", ErrWritePage, "writable"},
		{"style", mdsite.ErrStyleNotFound, "available: "},
		{"template", mdsite.ErrTemplateNoContent, "{{ Content }}"},
		{"engine", mdsite.ErrInvalidEngine, "native, goldmark"},
		{"page failures", &PageFailuresError{Failed: 1, Total: 1, First: mdsite.ErrMissingTitle}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor(%v) = %q, want none", tt.err, got)
				}
				return
			}
			if !strings.HasPrefix(got, "\n  hint: ") || !strings.Contains(got, tt.want) {
				t.Errorf("hintFor(%v) = %q, want hint containing %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestTriedPaths(t *testing.T) {
	t.Parallel()

	got := triedPaths("config file not found: tried a.yaml, a.yml")
	if diff := cmp.Diff([]string{"a.yaml", "a.yml"}, got); diff != "" {
		t.Errorf("triedPaths() mismatch (-want +got):\n%s", diff)
	}
	if got := triedPaths("config file not found: ./x.yaml"); got != nil {
		t.Errorf("triedPaths(no list) = %v, want nil", got)
	}
}
