// Package block segments a Markdown document into blank-line delimited blocks
// and classifies each one.
//
// Classification is all-or-nothing: a block whose lines do not all match the
// pattern of a quote or list is a paragraph.
package block

import (
	"regexp"
	"strconv"
	"strings"
)

// Type is the structural classification of a block.
type Type int

const (
	Paragraph Type = iota
	Heading
	Code
	Quote
	UnorderedList
	OrderedList
)

var typeNames = [...]string{
	Paragraph:     "paragraph",
	Heading:       "heading",
	Code:          "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Fence delimits a code block.
const Fence = "```"

// MaxHeadingLevel is the deepest heading recognized; more '#' is a paragraph.
const MaxHeadingLevel = 6

// Block is one classified chunk of a document. Level is set for headings only.
type Block struct {
	Type  Type
	Level int
	Text  string
}

// blankLines matches one or more separator lines. A line holding only spaces
// or tabs counts as blank.
var blankLines = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// Segment splits doc on blank lines, trims each chunk and drops empty ones.
// Order of appearance is kept.
func Segment(doc string) []string {
	chunks := blankLines.Split(doc, -1)
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Classify returns the type of a trimmed block and, for headings, its level.
func Classify(text string) (Type, int) {
	if level := headingLevel(text); level > 0 {
		return Heading, level
	}
	if isCode(text) {
		return Code, 0
	}

	lines := strings.Split(text, "\n")
	switch {
	case allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, ">") }):
		return Quote, 0
	case allLines(lines, func(_ int, l string) bool { return strings.HasPrefix(l, "- ") }):
		return UnorderedList, 0
	case allLines(lines, func(i int, l string) bool { return strings.HasPrefix(l, OrderedMarker(i+1)) }):
		return OrderedList, 0
	}
	return Paragraph, 0
}

// Parse segments doc and classifies every block.
func Parse(doc string) []Block {
	chunks := Segment(doc)
	blocks := make([]Block, 0, len(chunks))
	for _, c := range chunks {
		t, level := Classify(c)
		blocks = append(blocks, Block{Type: t, Level: level, Text: c})
	}
	return blocks
}

// OrderedMarker returns the prefix expected on item n (1-based) of an ordered
// list.
func OrderedMarker(n int) string {
	return strconv.Itoa(n) + ". "
}

// headingLevel returns 1..6 when text starts with that many '#' and a space,
// and 0 otherwise.
func headingLevel(text string) int {
	n := 0
	for n < len(text) && text[n] == '#' {
		n++
	}
	if n == 0 || n > MaxHeadingLevel {
		return 0
	}
	if n >= len(text) || text[n] != ' ' {
		return 0
	}
	return n
}

// isCode requires an opening and a closing fence that do not overlap.
func isCode(text string) bool {
	return len(text) >= 2*len(Fence) &&
		strings.HasPrefix(text, Fence) &&
		strings.HasSuffix(text, Fence)
}

func allLines(lines []string, match func(i int, line string) bool) bool {
	for i, l := range lines {
		if !match(i, l) {
			return false
		}
	}
	return true
}
