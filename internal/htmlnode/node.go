// Package htmlnode models an HTML document as an immutable tree of leaf and
// parent nodes and renders it to markup.
//
// Values and attribute values are written verbatim: callers are trusted to
// pass text that is already valid in the target position.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNode indicates a node that violates the tree invariants: a leaf
// without a value, or a parent without a tag or without children.
var ErrInvalidNode = errors.New("invalid HTML node")

// Attr is a single element attribute. Field names mirror html.Attribute
// from golang.org/x/net/html.
type Attr struct {
	Key string
	Val string
}

// Node is an element of the tree. It is implemented by *Leaf and *Parent.
type Node interface {
	ToHTML() (string, error)
	isNode()
}

// Leaf is a node without children. An empty Tag renders the value as raw
// text. A nil Value is invalid.
type Leaf struct {
	Tag   string
	Value *string
	Attrs []Attr
}

// Parent is a node whose content is entirely its ordered children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    []Attr
}

// Compile-time interface checks.
var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Parent)(nil)
)

// NewLeaf returns a leaf node. An empty tag produces a raw text node.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Attrs: copyAttrs(attrs)}
}

// NewText returns an untagged leaf that renders value as is.
func NewText(value string) *Leaf {
	return NewLeaf("", value)
}

// NewParent returns a parent node owning children.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	owned := make([]Node, len(children))
	copy(owned, children)
	return &Parent{Tag: tag, Children: owned, Attrs: copyAttrs(attrs)}
}

// copyAttrs gives every node its own attribute slice, never nil.
func copyAttrs(attrs []Attr) []Attr {
	out := make([]Attr, len(attrs))
	copy(out, attrs)
	return out
}

// Render serializes n and its subtree.
func Render(n Node) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: nil node", ErrInvalidNode)
	}
	return n.ToHTML()
}

// ToHTML renders the leaf.
func (l *Leaf) ToHTML() (string, error) {
	if l == nil || l.Value == nil {
		return "", fmt.Errorf("%w: leaf has no value", ErrInvalidNode)
	}
	if l.Tag == "" {
		return *l.Value, nil
	}

	var b strings.Builder
	writeOpenTag(&b, l.Tag, l.Attrs)
	b.WriteString(*l.Value)
	writeCloseTag(&b, l.Tag)
	return b.String(), nil
}

// ToHTML renders the parent and, recursively, its children.
func (p *Parent) ToHTML() (string, error) {
	if p == nil || p.Tag == "" {
		return "", fmt.Errorf("%w: parent has no tag", ErrInvalidNode)
	}
	if len(p.Children) == 0 {
		return "", fmt.Errorf("%w: <%s> has no children", ErrInvalidNode, p.Tag)
	}

	var b strings.Builder
	writeOpenTag(&b, p.Tag, p.Attrs)
	for _, child := range p.Children {
		html, err := Render(child)
		if err != nil {
			return "", err
		}
		b.WriteString(html)
	}
	writeCloseTag(&b, p.Tag)
	return b.String(), nil
}

// AttrsToHTML renders attributes as ` key="val"` pairs in order.
func AttrsToHTML(attrs []Attr) string {
	var b strings.Builder
	writeAttrs(&b, attrs)
	return b.String()
}

func writeOpenTag(b *strings.Builder, tag string, attrs []Attr) {
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(b, attrs)
	b.WriteByte('>')
}

func writeCloseTag(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

func writeAttrs(b *strings.Builder, attrs []Attr) {
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Val)
		b.WriteByte('"')
	}
}

func (*Leaf) isNode()   {}
func (*Parent) isNode() {}
