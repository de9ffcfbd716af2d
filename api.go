package mdsite

import (
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Node is an element of the HTML document tree: a *Leaf or a *Parent.
type Node = htmlnode.Node

// Leaf is a node without children. A leaf without tag is raw text.
type Leaf = htmlnode.Leaf

// Parent is a tagged node with at least one child.
type Parent = htmlnode.Parent

// Attr is one HTML attribute. Attributes keep their insertion order.
type Attr = htmlnode.Attr

// MarkdownToHTMLNode converts a Markdown document into a tree rooted at a div.
// Each block becomes one child of the root, in document order.
func MarkdownToHTMLNode(markdown string) (Node, error) {
	return pipeline.MarkdownToHTMLNode(markdown)
}

// Render serializes a tree to markup.
func Render(n Node) (string, error) {
	return htmlnode.Render(n)
}

// ExtractTitle returns the text of the first level 1 heading line.
// Returns ErrMissingTitle if there is none.
func ExtractTitle(markdown string) (string, error) {
	return pipeline.ExtractTitle(markdown)
}

// ToHTML converts a Markdown document straight to markup.
func ToHTML(markdown string) (string, error) {
	root, err := MarkdownToHTMLNode(markdown)
	if err != nil {
		return "", err
	}
	return Render(root)
}
