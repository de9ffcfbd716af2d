// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The native path assembles a document tree:
//   - block.Parse segments and classifies the document
//   - inline.Parse splits each block's text into spans
//   - spans become htmlnode leaves and parents, all under one root div
//
// The remaining stages turn a fragment into a page:
//   - Markdown preprocessing (line endings, Unicode NFC)
//   - HTML fragment conversion (native tree or Goldmark)
//   - page template substitution and CSS injection
//   - base path rewriting of site-absolute links
//
// Reading and writing files is left to the caller.
package pipeline
