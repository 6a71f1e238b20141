package domain

import (
	"fmt"
	"strings"
)

// PartOfSpeech is the shared tag set every source vocabulary is decoded into.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "NOUN"
	PartOfSpeechVerb         PartOfSpeech = "VERB"
	PartOfSpeechAdjective    PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb       PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun      PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition  PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction  PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection PartOfSpeech = "INTERJECTION"
	PartOfSpeechPhrase       PartOfSpeech = "PHRASE"
	PartOfSpeechIdiom        PartOfSpeech = "IDIOM"
	PartOfSpeechOther        PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

// Language identifies one output dictionary (a headword/definition pair).
type Language string

const (
	LanguageEnZh Language = "en-zh"
	LanguageEnEn Language = "en-en"
	LanguageZhEn Language = "zh-en"
	LanguageJaEn Language = "ja-en"
	LanguageJaZh Language = "ja-zh"
)

// AllLanguages lists the supported outputs in canonical build order.
var AllLanguages = []Language{
	LanguageEnZh,
	LanguageEnEn,
	LanguageZhEn,
	LanguageJaEn,
	LanguageJaZh,
}

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageEnZh, LanguageEnEn, LanguageZhEn, LanguageJaEn, LanguageJaZh:
		return true
	}
	return false
}

// Source returns the headword language of the pair ("en" for "en-zh").
func (l Language) Source() string {
	src, _, _ := strings.Cut(string(l), "-")
	return src
}

// Target returns the definition language of the pair ("zh" for "en-zh").
func (l Language) Target() string {
	_, dst, _ := strings.Cut(string(l), "-")
	return dst
}

// LatinScript reports whether headwords of l are written in Latin orthography.
func (l Language) LatinScript() bool {
	return l.Source() == "en"
}

// ParseLanguage validates a language identifier.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, s)
	}
	return l, nil
}

// BuildMode selects between real sources and bundled fixtures.
type BuildMode string

const (
	BuildModeFull   BuildMode = "full"
	BuildModeSample BuildMode = "sample"
)

func (m BuildMode) String() string { return string(m) }
