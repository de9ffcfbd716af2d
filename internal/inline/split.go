package inline

import (
	"regexp"
	"strings"
)

// Precompiled reference patterns. Text may not contain brackets and the URL
// may not contain parentheses.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

// Ref is an extracted link or image: anchor (or alt) text and URL.
type Ref struct {
	Text string
	URL  string
}

// ExtractImages returns every ![alt](url) reference in text, in order.
func ExtractImages(text string) []Ref {
	return refsAt(text, imageMatches(text))
}

// ExtractLinks returns every [text](url) reference in text that is not an
// image, in order.
func ExtractLinks(text string) []Ref {
	return refsAt(text, linkMatches(text))
}

func refsAt(text string, matches [][]int) []Ref {
	refs := make([]Ref, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, Ref{Text: text[m[2]:m[3]], URL: text[m[4]:m[5]]})
	}
	return refs
}

func imageMatches(text string) [][]int {
	return imagePattern.FindAllStringSubmatchIndex(text, -1)
}

// linkMatches drops matches directly preceded by '!'. Go's RE2 has no
// look-behind, so the check happens here.
func linkMatches(text string) [][]int {
	all := linkPattern.FindAllStringSubmatchIndex(text, -1)
	kept := all[:0]
	for _, m := range all {
		if m[0] > 0 && text[m[0]-1] == '!' {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// SplitImages replaces image references in plain spans with Image spans.
func SplitImages(spans []Span) []Span {
	return splitRefs(spans, Image, imageMatches)
}

// SplitLinks replaces link references in plain spans with Link spans.
func SplitLinks(spans []Span) []Span {
	return splitRefs(spans, Link, linkMatches)
}

func splitRefs(spans []Span, kind Kind, find func(string) [][]int) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}

		matches := find(s.Text)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}

		prev := 0
		for _, m := range matches {
			if m[0] > prev {
				out = append(out, Span{Kind: Plain, Text: s.Text[prev:m[0]]})
			}
			out = append(out, Span{Kind: kind, Text: s.Text[m[2]:m[3]], URL: s.Text[m[4]:m[5]]})
			prev = m[1]
		}
		if prev < len(s.Text) {
			out = append(out, Span{Kind: Plain, Text: s.Text[prev:]})
		}
	}
	return out
}

// SplitDelimiter splits plain spans on delim, turning every odd-indexed part
// into a span of the given kind.
//
// A split into an even number of parts means an unmatched delimiter and
// returns a *DelimiterError. Empty plain parts are dropped; empty typed parts
// (adjacent delimiters) are kept.
func SplitDelimiter(spans []Span, delim string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}

		parts := strings.Split(s.Text, delim)
		if len(parts) == 1 {
			out = append(out, s)
			continue
		}
		if len(parts)%2 == 0 {
			return nil, &DelimiterError{Delimiter: delim}
		}

		for i, part := range parts {
			if i%2 == 0 {
				if part != "" {
					out = append(out, Span{Kind: Plain, Text: part})
				}
				continue
			}
			out = append(out, Span{Kind: kind, Text: part})
		}
	}
	return out, nil
}
