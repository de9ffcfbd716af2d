package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/inline"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Document tree errors. These are the same values the conversion stages
// return, so errors.Is matches them through any wrapping.
var (
	ErrUnmatchedDelimiter = inline.ErrUnmatchedDelimiter
	ErrInvalidNode        = htmlnode.ErrInvalidNode
	ErrMissingTitle       = pipeline.ErrMissingTitle
	ErrUnsupportedSpan    = pipeline.ErrUnsupportedSpan
	ErrNestingTooDeep     = pipeline.ErrNestingTooDeep
	ErrHTMLConversion     = pipeline.ErrHTMLConversion
	ErrTemplateNoContent  = pipeline.ErrTemplateNoContent
)

// Sentinel errors for page conversion.
var (
	ErrInvalidEngine   = errors.New("invalid markdown engine")
	ErrInvalidBasePath = errors.New("invalid base path")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// DelimiterError reports the delimiter left unmatched in a block.
type DelimiterError = inline.DelimiterError
