package pipeline

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// NormalizeBasePath returns base with a trailing slash. An empty base is "/".
func NormalizeBasePath(base string) string {
	if base == "" {
		return "/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// RewriteBasePath prefixes site-absolute href and src values with base.
//
// A value is site-absolute when it starts with "/" but not "//". With a base
// of "/blog/", href="/posts/a.html" becomes href="/blog/posts/a.html".
// A base of "/" returns htmlContent unchanged.
//
// The document is tokenized, not parsed: tags that need no rewrite and all
// other tokens are copied byte for byte.
func RewriteBasePath(htmlContent, base string) (string, error) {
	base = NormalizeBasePath(base)
	if base == "/" {
		return htmlContent, nil
	}

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	var buf strings.Builder
	buf.Grow(len(htmlContent))

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return buf.String(), nil

		case html.StartTagToken, html.SelfClosingTagToken:
			// Token lower-cases the tokenizer buffer in place, so copy Raw first.
			raw := string(z.Raw())
			tok := z.Token()
			if rewriteAttrs(tok.Attr, base) {
				buf.WriteString(tok.String())
			} else {
				buf.WriteString(raw)
			}

		default:
			buf.Write(z.Raw())
		}
	}
}

// rewriteAttrs reports whether any attribute changed.
func rewriteAttrs(attrs []html.Attribute, base string) bool {
	changed := false
	for i, a := range attrs {
		if a.Namespace != "" || (a.Key != "href" && a.Key != "src") {
			continue
		}
		if !isSiteAbsolute(a.Val) {
			continue
		}
		attrs[i].Val = base + strings.TrimPrefix(a.Val, "/")
		changed = true
	}
	return changed
}

func isSiteAbsolute(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
