// Package inline splits a run of inline Markdown into typed text spans.
//
// Splitting is a sequence of independent passes over a []Span. Each pass
// rewrites Plain spans only; spans typed by an earlier pass are passed
// through untouched, so an image's alt text or a link's anchor text is never
// re-scanned for further markup.
package inline

import (
	"errors"
	"fmt"
)

// Kind classifies a span.
type Kind int

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Span is a classified run of inline text. URL is set for Link and Image.
type Span struct {
	Kind Kind
	Text string
	URL  string
}

// ErrUnmatchedDelimiter indicates a formatting delimiter without a partner.
var ErrUnmatchedDelimiter = errors.New("unmatched delimiter")

// DelimiterError reports which delimiter was left unmatched.
type DelimiterError struct {
	Delimiter string
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("invalid markdown: unmatched %s delimiter", e.Delimiter)
}

// Is makes errors.Is(err, ErrUnmatchedDelimiter) succeed.
func (e *DelimiterError) Is(target error) bool {
	return target == ErrUnmatchedDelimiter
}
