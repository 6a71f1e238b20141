package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EntryRow is the row-shaped persistence payload of a DictionaryEntry.
// List and object columns hold JSON text.
type EntryRow struct {
	Normalized    string
	Term          string
	Reading       string
	Pronunciation string
	Forms         string
	POS           string
	Definitions   string
	Source        string
	Metadata      string
}

// NewEntryRow builds the row for e in the index space of lang.
// ok is false when the entry must not be stored: no definitions, or both
// the normalized key and the reading are empty.
func NewEntryRow(lang Language, e DictionaryEntry) (row EntryRow, ok bool, err error) {
	if len(e.Definitions) == 0 || strings.TrimSpace(e.Word) == "" {
		return EntryRow{}, false, nil
	}

	row = EntryRow{
		Normalized:    NormalizeKey(lang, e.Word),
		Term:          e.Word,
		Reading:       strings.TrimSpace(e.Reading),
		Pronunciation: e.Pronunciation,
		Source:        e.Source,
	}
	if row.Normalized == "" && row.Reading == "" {
		return EntryRow{}, false, nil
	}

	if row.Forms, err = marshalList(e.Forms); err != nil {
		return EntryRow{}, false, fmt.Errorf("entry %q forms: %w", e.Word, err)
	}
	if row.POS, err = marshalList(e.POS); err != nil {
		return EntryRow{}, false, fmt.Errorf("entry %q pos: %w", e.Word, err)
	}
	if row.Definitions, err = marshalList(e.Definitions); err != nil {
		return EntryRow{}, false, fmt.Errorf("entry %q definitions: %w", e.Word, err)
	}
	if len(e.Metadata) > 0 {
		b, err := json.Marshal(e.Metadata)
		if err != nil {
			return EntryRow{}, false, fmt.Errorf("entry %q metadata: %w", e.Word, err)
		}
		row.Metadata = string(b)
	}

	return row, true, nil
}

// Entry decodes the row back into a DictionaryEntry.
func (r EntryRow) Entry() (DictionaryEntry, error) {
	e := DictionaryEntry{
		Word:          r.Term,
		Reading:       r.Reading,
		Pronunciation: r.Pronunciation,
		Source:        r.Source,
	}
	if err := unmarshalList(r.Forms, &e.Forms); err != nil {
		return DictionaryEntry{}, fmt.Errorf("row %q forms: %w", r.Term, err)
	}
	if err := unmarshalList(r.POS, &e.POS); err != nil {
		return DictionaryEntry{}, fmt.Errorf("row %q pos: %w", r.Term, err)
	}
	if err := unmarshalList(r.Definitions, &e.Definitions); err != nil {
		return DictionaryEntry{}, fmt.Errorf("row %q definitions: %w", r.Term, err)
	}
	if r.Metadata != "" {
		if err := json.Unmarshal([]byte(r.Metadata), &e.Metadata); err != nil {
			return DictionaryEntry{}, fmt.Errorf("row %q metadata: %w", r.Term, err)
		}
	}
	return e, nil
}

func marshalList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalList(raw string, dst *[]string) error {
	*dst = []string{}
	if raw == "" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}
