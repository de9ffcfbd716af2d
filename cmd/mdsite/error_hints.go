package main

import (
	"errors"
	"strings"

	"github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/hints"
)

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	var failures *PageFailuresError
	if err == nil || errors.As(err, &failures) {
		// Each failed page already printed its own hint.
		return ""
	}

	var delimErr *mdsite.DelimiterError
	switch {
	case errors.As(err, &delimErr):
		return hints.ForUnmatchedDelimiter(delimErr.Delimiter)
	case errors.Is(err, mdsite.ErrUnmatchedDelimiter):
		return hints.ForUnmatchedDelimiter("")
	case errors.Is(err, mdsite.ErrMissingTitle):
		return hints.ForMissingTitle()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err.Error()))
	case errors.Is(err, config.ErrUnsafeOutputDir):
		return hints.ForUnsafeOutputDir()
	case errors.Is(err, ErrResetOutput), errors.Is(err, ErrWritePage):
		return hints.ForOutputDirectory()
	case errors.Is(err, mdsite.ErrStyleNotFound):
		return hints.ForStyleNotFound(mdsite.StyleNames())
	case errors.Is(err, mdsite.ErrTemplateNotFound), errors.Is(err, mdsite.ErrTemplateNoContent):
		return hints.ForTemplateNotFound(mdsite.TemplateNames())
	case errors.Is(err, mdsite.ErrInvalidEngine):
		return hints.ForEngine(config.Engines)
	}
	return ""
}

// triedPaths extracts the search list from a config-not-found message
// ("...: tried a.yaml, b.yml").
func triedPaths(msg string) []string {
	_, list, ok := strings.Cut(msg, "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
