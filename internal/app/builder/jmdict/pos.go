package jmdict

import (
	"strings"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// posTable maps JMdict part-of-speech entity codes to the shared tag set.
var posTable = map[string]domain.PartOfSpeech{
	"n":      domain.PartOfSpeechNoun,
	"n-adv":  domain.PartOfSpeechNoun,
	"n-t":    domain.PartOfSpeechNoun,
	"n-pr":   domain.PartOfSpeechNoun,
	"n-pref": domain.PartOfSpeechNoun,
	"n-suf":  domain.PartOfSpeechNoun,

	"vk":   domain.PartOfSpeechVerb,
	"vs":   domain.PartOfSpeechVerb,
	"vs-i": domain.PartOfSpeechVerb,
	"vs-s": domain.PartOfSpeechVerb,
	"vs-c": domain.PartOfSpeechVerb,
	"vz":   domain.PartOfSpeechVerb,
	"vi":   domain.PartOfSpeechVerb,
	"vt":   domain.PartOfSpeechVerb,
	"vn":   domain.PartOfSpeechVerb,
	"vr":   domain.PartOfSpeechVerb,

	"adv":    domain.PartOfSpeechAdverb,
	"adv-to": domain.PartOfSpeechAdverb,
	"pn":     domain.PartOfSpeechPronoun,
	"conj":   domain.PartOfSpeechConjunction,
	"int":    domain.PartOfSpeechInterjection,
	"exp":    domain.PartOfSpeechPhrase,

	"prt":     domain.PartOfSpeechOther,
	"aux":     domain.PartOfSpeechOther,
	"aux-v":   domain.PartOfSpeechOther,
	"aux-adj": domain.PartOfSpeechOther,
	"cop":     domain.PartOfSpeechOther,
	"ctr":     domain.PartOfSpeechOther,
	"num":     domain.PartOfSpeechOther,
	"pref":    domain.PartOfSpeechOther,
	"suf":     domain.PartOfSpeechOther,
	"unc":     domain.PartOfSpeechOther,
}

// verbPrefixes cover the conjugation classes (v1, v5k, v2a-s, v4r, ...).
var verbPrefixes = []string{"v1", "v2", "v4", "v5"}

// MapPOS decodes a JMdict POS code. Entity markers ("&n;") are tolerated;
// codes without a table entry are returned verbatim.
func MapPOS(code string) string {
	code = strings.TrimSpace(code)
	code = strings.TrimSuffix(strings.TrimPrefix(code, "&"), ";")
	if code == "" {
		return ""
	}
	if pos, ok := posTable[code]; ok {
		return pos.String()
	}
	if strings.HasPrefix(code, "adj-") {
		return domain.PartOfSpeechAdjective.String()
	}
	for _, p := range verbPrefixes {
		if strings.HasPrefix(code, p) {
			return domain.PartOfSpeechVerb.String()
		}
	}
	return code
}
