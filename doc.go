// Package mdsite converts a constrained Markdown dialect into an HTML
// document tree and renders static site pages from it.
//
// # Document Tree
//
// The core converts Markdown to a tree of HTML nodes and serializes it:
//
//	root, err := mdsite.MarkdownToHTMLNode("# Hello\n\nSome **bold** text")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html, err := mdsite.Render(root)
//	// <div><h1>Hello</h1><p>Some <b>bold</b> text</p></div>
//
// The dialect knows six block kinds separated by blank lines (paragraph,
// heading, fenced code, quote, unordered and ordered list) and six inline
// kinds (plain, bold, italic, code, link, image). Unclosed inline delimiters
// fail with ErrUnmatchedDelimiter; use errors.As with *DelimiterError to
// learn which one. Text is never HTML-escaped.
//
// # Page Conversion
//
// A Converter wraps the fragment into a full page:
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithStyle("dark"),
//	    mdsite.WithBasePath("/blog/"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdsite.Input{Markdown: content})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0o644)
//
// The pipeline runs these stages:
//
//  1. Markdown preprocessing (line endings, Unicode NFC)
//  2. Markdown to HTML via the selected engine (native tree or goldmark)
//  3. Title extraction from the first level 1 heading
//  4. Template substitution of {{ Title }} and {{ Content }}
//  5. CSS injection
//  6. Base path rewrite of site-absolute href and src values
//
// A Converter is immutable after construction and safe for concurrent use.
//
// # Custom Assets
//
// Override built-in styles and templates using AssetLoader:
//
//	loader, err := mdsite.NewAssetLoader("/path/to/assets")
//	conv, err := mdsite.NewConverter(mdsite.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── custom.html
package mdsite
