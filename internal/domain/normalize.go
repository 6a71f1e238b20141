package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// LookupKeys derives translation-map keys from English-like text:
//   - NFKC-folded and lowercased
//   - everything outside [a-z], space, apostrophe and hyphen dropped
//   - whitespace collapsed
//
// The spaced key comes first; a compacted key (all spaces removed) follows
// when it differs. Keys without a single letter are discarded.
func LookupKeys(text string) []string {
	folded := strings.ToLower(norm.NFKC.String(text))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r == '\'', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	spaced := strings.Join(strings.Fields(b.String()), " ")
	if !strings.ContainsFunc(spaced, isASCIILetter) {
		return nil
	}

	keys := []string{spaced}
	if compact := strings.ReplaceAll(spaced, " ", ""); compact != spaced {
		keys = append(keys, compact)
	}
	return keys
}

// NormalizeKey produces the storage index key of a surface form.
// Latin-script languages are lowercased and reduced to [a-z'-];
// other languages keep the trimmed form unchanged.
func NormalizeKey(lang Language, form string) string {
	form = strings.TrimSpace(form)
	if !lang.LatinScript() {
		return form
	}

	form = strings.ToLower(norm.NFKC.String(form))
	var b strings.Builder
	b.Grow(len(form))
	for _, r := range form {
		if (r >= 'a' && r <= 'z') || r == '\'' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContainsHan reports whether s has at least one Han (CJK ideograph) rune.
func ContainsHan(s string) bool {
	return strings.ContainsFunc(s, func(r rune) bool {
		return unicode.Is(unicode.Han, r)
	})
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
