// Package wiktionary parses Kaikki JSONL dumps of English Wiktionary into
// dictionary entries and a reverse English→Chinese translation map.
// Pure function: reader in, entries out. No storage dependencies.
package wiktionary

import (
	"github.com/heartmarshall/dictbuild/internal/domain"
	"github.com/heartmarshall/dictbuild/internal/translation"
)

// Result holds everything parsed from one Kaikki dump.
type Result struct {
	// Entries are the cross-lingual (English headword, Chinese definitions) entries.
	Entries []domain.DictionaryEntry
	// References are the same-language English gloss entries.
	References []domain.DictionaryEntry
	// Map is the reverse index from English lookup keys to Chinese words.
	Map   *translation.Map
	Stats Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines     int
	MalformedLines int
	EnglishLines   int
	References     int
	CrossEntries   int
}

// kaikkiEntry mirrors the Kaikki JSONL structure (only fields we need).
type kaikkiEntry struct {
	Word         string              `json:"word"`
	POS          string              `json:"pos"`
	Lang         string              `json:"lang"`
	LangCode     string              `json:"lang_code"`
	Forms        []kaikkiForm        `json:"forms"`
	Senses       []kaikkiSense       `json:"senses"`
	Sounds       []kaikkiSound       `json:"sounds"`
	Translations []kaikkiTranslation `json:"translations"`
}

// kaikkiForm is one inflected or alternative form.
type kaikkiForm struct {
	Form string   `json:"form"`
	Tags []string `json:"tags"`
}

// kaikkiSense mirrors one sense from a Kaikki entry.
type kaikkiSense struct {
	Glosses      []string            `json:"glosses"`
	Translations []kaikkiTranslation `json:"translations"`
}

// kaikkiTranslation mirrors a translation from Kaikki. Older dumps carry
// the language code in "code", newer ones in "lang_code".
type kaikkiTranslation struct {
	Code     string `json:"code"`
	LangCode string `json:"lang_code"`
	Lang     string `json:"lang"`
	Word     string `json:"word"`
	Sense    string `json:"sense"`
	Roman    string `json:"roman"`
}

// kaikkiSound mirrors a sound entry from Kaikki.
type kaikkiSound struct {
	IPA string `json:"ipa"`
}
