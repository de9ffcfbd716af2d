package pipeline

import (
	"errors"
	"fmt"

	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
)

// MaxNestingDepth bounds emphasis re-parsing. Real documents stay at one or
// two levels.
const MaxNestingDepth = 64

// Sentinel errors for span conversion.
var (
	ErrNestingTooDeep  = errors.New("inline emphasis nested too deep")
	ErrUnsupportedSpan = errors.New("unsupported span kind")
)

// TextToChildren parses inline markup in text and converts the spans into
// tree nodes.
func TextToChildren(text string) ([]htmlnode.Node, error) {
	return parseNodes(text, inline.DelimNone, 0)
}

// parseNodes is the recursive step. exclude holds every delimiter of the
// enclosing emphasis spans; it only grows on the way down.
func parseNodes(text string, exclude inline.Delims, depth int) ([]htmlnode.Node, error) {
	if depth > MaxNestingDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrNestingTooDeep, MaxNestingDepth)
	}

	spans, err := inline.Parse(text, exclude)
	if err != nil {
		return nil, err
	}
	return spansToNodes(spans, exclude, depth)
}

func spansToNodes(spans []inline.Span, exclude inline.Delims, depth int) ([]htmlnode.Node, error) {
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := SpanToNode(s, exclude, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// SpanToNode converts one span. Bold and italic text is parsed again with
// their own delimiters added to exclude, so "**a _b_**" nests an i inside a b.
func SpanToNode(s inline.Span, exclude inline.Delims, depth int) (htmlnode.Node, error) {
	switch s.Kind {
	case inline.Plain:
		return htmlnode.NewText(s.Text), nil
	case inline.Bold:
		return emphasisToNode("b", s, exclude, depth)
	case inline.Italic:
		return emphasisToNode("i", s, exclude, depth)
	case inline.Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case inline.Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Key: "href", Val: s.URL}), nil
	case inline.Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Val: s.URL},
			htmlnode.Attr{Key: "alt", Val: s.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedSpan, s.Kind)
	}
}

// emphasisToNode returns a tagged leaf when the inner text has no further
// markup, and a parent otherwise.
func emphasisToNode(tag string, s inline.Span, exclude inline.Delims, depth int) (htmlnode.Node, error) {
	nested := exclude | inline.ForKind(s.Kind)
	if depth+1 > MaxNestingDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrNestingTooDeep, MaxNestingDepth)
	}

	spans, err := inline.Parse(s.Text, nested)
	if err != nil {
		return nil, err
	}
	if len(spans) == 1 && spans[0].Kind == inline.Plain {
		return htmlnode.NewLeaf(tag, spans[0].Text), nil
	}

	children, err := spansToNodes(spans, nested, depth+1)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}
