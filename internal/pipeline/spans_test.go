package pipeline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
)

// ---------------------------------------------------------------------------
// TestSpanToNode - Span to tree node conversion
// ---------------------------------------------------------------------------

func TestSpanToNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span inline.Span
		want htmlnode.Node
	}{
		{
			name: "plain",
			span: inline.Span{Kind: inline.Plain, Text: "This is a text node"},
			want: htmlnode.NewText("This is a text node"),
		},
		{
			name: "bold",
			span: inline.Span{Kind: inline.Bold, Text: "This is bold"},
			want: htmlnode.NewLeaf("b", "This is bold"),
		},
		{
			name: "italic",
			span: inline.Span{Kind: inline.Italic, Text: "This is italic"},
			want: htmlnode.NewLeaf("i", "This is italic"),
		},
		{
			name: "code",
			span: inline.Span{Kind: inline.Code, Text: "x := *p"},
			want: htmlnode.NewLeaf("code", "x := *p"),
		},
		{
			name: "link",
			span: inline.Span{Kind: inline.Link, Text: "Boot.dev", URL: "https://www.boot.dev"},
			want: htmlnode.NewLeaf("a", "Boot.dev", htmlnode.Attr{Key: "href", Val: "https://www.boot.dev"}),
		},
		{
			name: "image",
			span: inline.Span{Kind: inline.Image, Text: "Boot.dev logo", URL: "https://www.boot.dev/logo.png"},
			want: htmlnode.NewLeaf("img", "",
				htmlnode.Attr{Key: "src", Val: "https://www.boot.dev/logo.png"},
				htmlnode.Attr{Key: "alt", Val: "Boot.dev logo"},
			),
		},
		{
			name: "bold with nested italic becomes a parent",
			span: inline.Span{Kind: inline.Bold, Text: "a _b_"},
			want: htmlnode.NewParent("b", []htmlnode.Node{
				htmlnode.NewText("a "),
				htmlnode.NewLeaf("i", "b"),
			}),
		},
		{
			name: "italic keeps literal stars",
			span: inline.Span{Kind: inline.Italic, Text: "2 * 3 * 4"},
			want: htmlnode.NewLeaf("i", "2 * 3 * 4"),
		},
		{
			name: "empty bold",
			span: inline.Span{Kind: inline.Bold, Text: ""},
			want: htmlnode.NewLeaf("b", ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := SpanToNode(tt.span, inline.DelimNone, 0)
			if err != nil {
				t.Fatalf("SpanToNode() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SpanToNode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSpanToNode_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := SpanToNode(inline.Span{Kind: inline.Kind(99), Text: "x"}, inline.DelimNone, 0)
	if !errors.Is(err, ErrUnsupportedSpan) {
		t.Errorf("error = %v, want ErrUnsupportedSpan", err)
	}
}

func TestSpanToNode_NestedError(t *testing.T) {
	t.Parallel()

	_, err := SpanToNode(inline.Span{Kind: inline.Bold, Text: "a `b"}, inline.DelimNone, 0)
	if !errors.Is(err, inline.ErrUnmatchedDelimiter) {
		t.Errorf("error = %v, want ErrUnmatchedDelimiter", err)
	}
}

// ---------------------------------------------------------------------------
// TestNestingDepth - Recursion guard
// ---------------------------------------------------------------------------

func TestNestingDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "parse beyond the cap",
			run: func() error {
				_, err := parseNodes("text", inline.DelimNone, MaxNestingDepth+1)
				return err
			},
		},
		{
			name: "emphasis at the cap",
			run: func() error {
				_, err := SpanToNode(inline.Span{Kind: inline.Italic, Text: "x"}, inline.DelimNone, MaxNestingDepth)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.run(); !errors.Is(err, ErrNestingTooDeep) {
				t.Errorf("error = %v, want ErrNestingTooDeep", err)
			}
		})
	}
}

func TestNestingDepth_BelowCap(t *testing.T) {
	t.Parallel()

	got, err := SpanToNode(inline.Span{Kind: inline.Italic, Text: "x"}, inline.DelimNone, MaxNestingDepth-1)
	if err != nil {
		t.Fatalf("SpanToNode() unexpected error: %v", err)
	}
	if diff := cmp.Diff(htmlnode.Node(htmlnode.NewLeaf("i", "x")), got); diff != "" {
		t.Errorf("SpanToNode() mismatch (-want +got):\n%s", diff)
	}
}

func TestTextToChildren(t *testing.T) {
	t.Parallel()

	got, err := TextToChildren("a **b** `c`")
	if err != nil {
		t.Fatalf("TextToChildren() unexpected error: %v", err)
	}
	want := []htmlnode.Node{
		htmlnode.NewText("a "),
		htmlnode.NewLeaf("b", "b"),
		htmlnode.NewText(" "),
		htmlnode.NewLeaf("code", "c"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TextToChildren() mismatch (-want +got):\n%s", diff)
	}
}
