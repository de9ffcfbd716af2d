// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdsite/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdsite") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnsafeOutputDir returns hints for refused output directories.
func ForUnsafeOutputDir() string {
	return format("point --output at a dedicated directory such as docs/; it is emptied on every build")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplateNotFound returns hints for template not found errors.
func ForTemplateNotFound(available []string) string {
	hints := []string{"templates must contain {{ Content }}"}
	if len(available) > 0 {
		hints = append([]string{"available: " + strings.Join(available, ", ")}, hints...)
	}
	return formatHints(hints)
}

// ForUnmatchedDelimiter returns hints for unclosed inline markup.
func ForUnmatchedDelimiter(delimiter string) string {
	if delimiter == "" {
		return format("close every inline delimiter within the same block")
	}
	return format("close " + delimiter + " within the same block, or use --engine goldmark for full CommonMark")
}

// ForMissingTitle returns hints for pages without a level 1 heading.
func ForMissingTitle() string {
	return format(`start the page with a "# Title" line`)
}

// ForEngine returns hints for unknown engine names.
func ForEngine(engines []string) string {
	return format("valid engines: " + strings.Join(engines, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
