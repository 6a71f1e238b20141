// Package cedict parses CC-CEDICT flat-text dictionaries into Chinese→English
// entries and a reverse English→Chinese translation map.
// Pure function: reader in, entries out. No storage dependencies.
package cedict

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/heartmarshall/dictbuild/internal/domain"
	"github.com/heartmarshall/dictbuild/internal/translation"
	"github.com/heartmarshall/dictbuild/pkg/linestream"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

var (
	// lineRe matches `TRADITIONAL SIMPLIFIED [PINYIN] /def1/def2/`.
	lineRe = regexp.MustCompile(`^(\S+)\s+(\S+)\s+\[([^\]]*)\]\s+/(.*)/\s*$`)

	asideRe = regexp.MustCompile(`\([^)]*\)`)
)

// Line is one decoded dictionary line.
type Line struct {
	Traditional   string
	Simplified    string
	Pronunciation string
	Definitions   []string
}

// ParseResult holds the parsed CC-CEDICT data.
type ParseResult struct {
	Entries []domain.DictionaryEntry
	Map     *translation.Map
	Stats   Stats
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	SkippedLines int
	ParsedLines  int
}

// ParseFile opens filePath and parses it with Parse.
func ParseFile(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a CC-CEDICT stream (plain or gzip) and returns its entries.
func Parse(r io.Reader) (ParseResult, error) {
	result := ParseResult{Map: translation.NewMap()}

	for raw, err := range linestream.DecodedLines(r) {
		if errors.Is(err, linestream.ErrLineTooLong) {
			result.Stats.TotalLines++
			result.Stats.SkippedLines++
			continue
		}
		if err != nil {
			return ParseResult{}, fmt.Errorf("read cedict stream: %w", err)
		}
		result.Stats.TotalLines++

		line, err := ParseLine(string(raw))
		if errors.Is(err, errSkipLine) {
			if strings.HasPrefix(strings.TrimSpace(string(raw)), "#") {
				result.Stats.CommentLines++
			} else {
				result.Stats.SkippedLines++
			}
			continue
		}

		result.Stats.ParsedLines++
		entry := line.Entry()
		result.Entries = append(result.Entries, entry)

		for _, key := range ReverseKeys(line.Definitions) {
			result.Map.Add(key, entry.Forms...)
		}
	}

	return result, nil
}

// ParseLine decodes one line, returning errSkipLine for comments, blank
// lines, lines that do not match the format and lines without definitions.
// Every "/" separates definitions; slashes inside a definition are not
// escaped in the source format.
func ParseLine(s string) (Line, error) {
	s = strings.TrimRight(s, "\r")
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Line{}, errSkipLine
	}

	m := lineRe.FindStringSubmatch(trimmed)
	if m == nil {
		return Line{}, errSkipLine
	}

	var defs []string
	for _, d := range strings.Split(m[4], "/") {
		if d = strings.TrimSpace(d); d != "" {
			defs = append(defs, d)
		}
	}
	if len(defs) == 0 {
		return Line{}, errSkipLine
	}

	return Line{
		Traditional:   m[1],
		Simplified:    m[2],
		Pronunciation: strings.TrimSpace(m[3]),
		Definitions:   defs,
	}, nil
}

// Entry converts the line to a zh-en dictionary entry keyed by its
// simplified form.
func (l Line) Entry() domain.DictionaryEntry {
	e := domain.NewEntry(l.Simplified, domain.SourceCEDICT)
	e.Reading = l.Simplified
	e.Pronunciation = l.Pronunciation
	e.AddForms(l.Traditional)
	e.AddDefinitions(l.Definitions...)
	e.SetMeta("traditional", l.Traditional)
	e.SetMeta("simplified", l.Simplified)
	e.SetMeta("pronunciation", l.Pronunciation)
	return e
}

// ReverseKeys derives the English lookup keys of a line's definitions:
// parenthetical asides are dropped, each definition is split on commas and
// semicolons, and a leading infinitive "to " is removed.
func ReverseKeys(definitions []string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, def := range definitions {
		def = asideRe.ReplaceAllString(def, " ")
		for _, part := range strings.FieldsFunc(def, func(r rune) bool { return r == ',' || r == ';' }) {
			part = strings.TrimSpace(part)
			if lower := strings.ToLower(part); strings.HasPrefix(lower, "to ") {
				part = strings.TrimSpace(part[len("to "):])
			}
			for _, key := range domain.LookupKeys(part) {
				if !seen[key] {
					seen[key] = true
					keys = append(keys, key)
				}
			}
		}
	}
	return keys
}
