package wiktionary

import (
	"strings"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// posMap maps lowercase Kaikki POS strings to the shared tag set.
var posMap = map[string]domain.PartOfSpeech{
	// Direct 1:1 mappings
	"noun": domain.PartOfSpeechNoun,
	"verb": domain.PartOfSpeechVerb,
	"adj":  domain.PartOfSpeechAdjective,
	"adv":  domain.PartOfSpeechAdverb,
	"pron": domain.PartOfSpeechPronoun,
	"prep": domain.PartOfSpeechPreposition,
	"conj": domain.PartOfSpeechConjunction,
	"intj": domain.PartOfSpeechInterjection,

	// Multi-word categories
	"phrase":      domain.PartOfSpeechPhrase,
	"prep_phrase": domain.PartOfSpeechPhrase,
	"proverb":     domain.PartOfSpeechPhrase,
	"idiom":       domain.PartOfSpeechIdiom,

	// Proper nouns → NOUN
	"name": domain.PartOfSpeechNoun,

	// Everything below maps to OTHER
	"num":         domain.PartOfSpeechOther,
	"det":         domain.PartOfSpeechOther,
	"particle":    domain.PartOfSpeechOther,
	"article":     domain.PartOfSpeechOther,
	"affix":       domain.PartOfSpeechOther,
	"prefix":      domain.PartOfSpeechOther,
	"suffix":      domain.PartOfSpeechOther,
	"infix":       domain.PartOfSpeechOther,
	"character":   domain.PartOfSpeechOther,
	"symbol":      domain.PartOfSpeechOther,
	"punct":       domain.PartOfSpeechOther,
	"contraction": domain.PartOfSpeechOther,
	"abbrev":      domain.PartOfSpeechOther,
}

// MapPOS converts a Kaikki POS string to the shared tag set.
// The lookup is case-insensitive. Empty input yields "", unknown values OTHER.
func MapPOS(kaikkiPOS string) domain.PartOfSpeech {
	kaikkiPOS = strings.ToLower(strings.TrimSpace(kaikkiPOS))
	if kaikkiPOS == "" {
		return ""
	}
	if pos, ok := posMap[kaikkiPOS]; ok {
		return pos
	}
	return domain.PartOfSpeechOther
}
