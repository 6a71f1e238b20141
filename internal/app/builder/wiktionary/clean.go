package wiktionary

import (
	"regexp"
	"strings"
)

var (
	htmlTagRe    = regexp.MustCompile(`<[^>]*>`)
	wikiLinkRe   = regexp.MustCompile(`\[\[([^|\]]*\|)?([^\]]*)\]\]`)
	multiSpaceRe = regexp.MustCompile(`\s{2,}`)
)

// StripMarkup removes HTML tags and wiki-style links from s,
// collapses multiple spaces, and trims whitespace.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}

	s = htmlTagRe.ReplaceAllString(s, "")

	// [[link|display]] → display, [[word]] → word.
	s = wikiLinkRe.ReplaceAllString(s, "$2")

	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// isVariantSeparator reports the characters translated words are split on:
// ASCII and fullwidth slashes plus comma-like punctuation.
func isVariantSeparator(r rune) bool {
	switch r {
	case '/', '／', ',', '，', '、', ';', '；':
		return true
	}
	return false
}

// SplitVariants splits a translated text into trimmed, non-empty variants.
func SplitVariants(text string) []string {
	parts := strings.FieldsFunc(text, isVariantSeparator)
	variants := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			variants = append(variants, p)
		}
	}
	return variants
}
