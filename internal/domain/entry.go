package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Provenance labels written to DictionaryEntry.Source.
const (
	SourceWiktionary = "wiktionary"
	SourceCEDICT     = "cc-cedict"
	SourceJMdict     = "jmdict"
	// SourceJMdictTranslated marks ja-zh entries whose definitions were
	// synthesized from the combined translation map.
	SourceJMdictTranslated = "jmdict+cc-cedict+wiktionary"
)

// DictionaryEntry is one lexical record of an output dictionary.
type DictionaryEntry struct {
	Word          string         `json:"word"`
	Reading       string         `json:"reading,omitempty"`
	Pronunciation string         `json:"pronunciation,omitempty"`
	Forms         []string       `json:"forms"`
	POS           []string       `json:"pos"`
	Definitions   []string       `json:"definitions"`
	Source        string         `json:"source"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// NewEntry creates an entry whose forms already contain word.
func NewEntry(word, source string) DictionaryEntry {
	word = strings.TrimSpace(word)
	e := DictionaryEntry{
		Word:        word,
		Forms:       []string{},
		POS:         []string{},
		Definitions: []string{},
		Source:      source,
	}
	e.AddForms(word)
	return e
}

// AddForms unions forms into the entry. Empty strings are ignored.
func (e *DictionaryEntry) AddForms(forms ...string) {
	e.Forms = unionInto(e.Forms, forms)
}

// AddPOS unions part-of-speech tags into the entry.
func (e *DictionaryEntry) AddPOS(tags ...string) {
	e.POS = unionInto(e.POS, tags)
}

// AddDefinitions appends definitions that are not present yet, keeping order.
func (e *DictionaryEntry) AddDefinitions(defs ...string) {
	e.Definitions = unionInto(e.Definitions, defs)
}

// SetMeta stores a metadata value, allocating the bag on first use.
func (e *DictionaryEntry) SetMeta(key string, value any) {
	if e.Metadata == nil {
		e.Metadata = make(map[string]any)
	}
	e.Metadata[key] = value
}

// Validate checks the persistence invariants of an entry.
func (e *DictionaryEntry) Validate() error {
	if strings.TrimSpace(e.Word) == "" {
		return NewValidationError("word", "required")
	}
	if len(e.Definitions) == 0 {
		return NewValidationError("definitions", fmt.Sprintf("entry %q has no definitions", e.Word))
	}
	if !slices.Contains(e.Forms, e.Word) {
		return NewValidationError("forms", fmt.Sprintf("entry %q does not list its own word", e.Word))
	}
	return nil
}

// unionInto appends the non-empty values of add that are missing from dst.
func unionInto(dst, add []string) []string {
	for _, v := range add {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(dst, v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
