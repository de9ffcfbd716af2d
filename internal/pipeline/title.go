package pipeline

import (
	"errors"
	"strings"
)

// ErrMissingTitle indicates a document without a level 1 heading.
var ErrMissingTitle = errors.New("no heading level 1 found")

// ExtractTitle returns the text of the first "# " line, trimmed.
// Leading whitespace before the '#' is ignored; "## " does not count.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
			return strings.TrimSpace(rest), nil
		}
	}
	return "", ErrMissingTitle
}
