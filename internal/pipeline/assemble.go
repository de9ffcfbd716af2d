package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alnah/go-mdsite/internal/block"
	"github.com/alnah/go-mdsite/internal/htmlnode"
)

// RootTag wraps every converted document.
const RootTag = "div"

// MarkdownToHTMLNode converts a whole document into one root div.
// A document with no blocks yields a div holding a single empty text leaf.
// Any error aborts the conversion; no partial tree is returned.
func MarkdownToHTMLNode(markdown string) (htmlnode.Node, error) {
	blocks := block.Parse(markdown)
	if len(blocks) == 0 {
		return htmlnode.NewParent(RootTag, []htmlnode.Node{htmlnode.NewText("")}), nil
	}

	children := make([]htmlnode.Node, 0, len(blocks))
	for i, b := range blocks {
		n, err := blockToNode(b)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, b.Type, err)
		}
		children = append(children, n)
	}
	return htmlnode.NewParent(RootTag, children), nil
}

func blockToNode(b block.Block) (htmlnode.Node, error) {
	switch b.Type {
	case block.Paragraph:
		return paragraphToNode(b.Text)
	case block.Heading:
		return headingToNode(b.Text, b.Level)
	case block.Code:
		return codeToNode(b.Text), nil
	case block.Quote:
		return quoteToNode(b.Text)
	case block.UnorderedList:
		return listToNode("ul", b.Text, func(line string) string {
			return strings.TrimPrefix(line, "- ")
		})
	case block.OrderedList:
		return listToNode("ol", b.Text, func(line string) string {
			_, item, _ := strings.Cut(line, " ")
			return item
		})
	default:
		return nil, fmt.Errorf("unknown block type %v", b.Type)
	}
}

func paragraphToNode(text string) (htmlnode.Node, error) {
	children, err := TextToChildren(strings.Join(strings.Fields(text), " "))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("p", children), nil
}

func headingToNode(text string, level int) (htmlnode.Node, error) {
	children, err := TextToChildren(text[level+1:])
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("h"+strconv.Itoa(level), children), nil
}

// codeToNode keeps the fenced content verbatim apart from dedenting it and
// dropping one leading newline. No inline markup is recognized.
func codeToNode(text string) htmlnode.Node {
	body := text[len(block.Fence) : len(text)-len(block.Fence)]
	body = dedent(body)
	body = strings.TrimPrefix(body, "\n")

	code := htmlnode.NewParent("code", []htmlnode.Node{htmlnode.NewText(body)})
	return htmlnode.NewParent("pre", []htmlnode.Node{code})
}

func quoteToNode(text string) (htmlnode.Node, error) {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimLeft(strings.TrimPrefix(l, ">"), " \t")
	}

	children, err := TextToChildren(strings.Join(lines, "\n"))
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("blockquote", children), nil
}

func listToNode(tag, text string, item func(line string) string) (htmlnode.Node, error) {
	lines := strings.Split(text, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for i, l := range lines {
		children, err := TextToChildren(item(l))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, htmlnode.NewParent("li", children))
	}
	return htmlnode.NewParent(tag, items), nil
}

// dedent removes the leading spaces and tabs common to every non-blank line.
// Lines holding only spaces and tabs are emptied first and do not count
// towards the margin.
func dedent(text string) string {
	lines := strings.Split(text, "\n")

	margin, found := "", false
	for i, l := range lines {
		if strings.Trim(l, " \t") == "" {
			lines[i] = ""
			continue
		}
		indent := l[:len(l)-len(strings.TrimLeft(l, " \t"))]
		if !found {
			margin, found = indent, true
			continue
		}
		margin = commonPrefix(margin, indent)
	}

	if margin != "" {
		for i, l := range lines {
			lines[i] = strings.TrimPrefix(l, margin)
		}
	}
	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
