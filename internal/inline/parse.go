package inline

// Delims is a set of code and emphasis delimiters.
type Delims uint8

const (
	DelimCode       Delims = 1 << iota // `
	DelimBold                          // **
	DelimStar                          // *
	DelimUnderscore                    // _

	// DelimNone excludes nothing.
	DelimNone Delims = 0
	// DelimItalic is every delimiter that marks italic text.
	DelimItalic = DelimStar | DelimUnderscore
)

// Has reports whether every delimiter in x is in d.
func (d Delims) Has(x Delims) bool {
	return d&x == x
}

// delimiterPasses run in order after images and links. Bold must run before
// single-star italic so "**x**" is not read as nested italics.
var delimiterPasses = []struct {
	delim Delims
	token string
	kind  Kind
}{
	{DelimCode, "`", Code},
	{DelimBold, "**", Bold},
	{DelimStar, "*", Italic},
	{DelimUnderscore, "_", Italic},
}

// ForKind returns the delimiters that produce spans of kind k.
func ForKind(k Kind) Delims {
	var d Delims
	for _, p := range delimiterPasses {
		if p.kind == k {
			d |= p.delim
		}
	}
	return d
}

// Parse splits text into spans. Delimiters in exclude are left as literal
// text; images and links are always recognized.
func Parse(text string, exclude Delims) ([]Span, error) {
	spans := []Span{{Kind: Plain, Text: text}}
	spans = SplitImages(spans)
	spans = SplitLinks(spans)

	for _, p := range delimiterPasses {
		if exclude.Has(p.delim) {
			continue
		}
		var err error
		spans, err = SplitDelimiter(spans, p.token, p.kind)
		if err != nil {
			return nil, err
		}
	}
	return spans, nil
}
