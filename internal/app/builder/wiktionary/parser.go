package wiktionary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/dictbuild/internal/domain"
	"github.com/heartmarshall/dictbuild/internal/translation"
	"github.com/heartmarshall/dictbuild/pkg/linestream"
)

const (
	baseLangCode = "en"
	baseLang     = "English"

	// definitionSep joins a translated variant with its sense label.
	definitionSep = " — "

	// pronunciationSep joins deduplicated IPA transcriptions.
	pronunciationSep = ", "

	// maxAuditGlosses caps the English glosses kept in metadata.
	maxAuditGlosses = 5
)

var (
	// chineseCodes are the translation language codes accepted as Chinese.
	chineseCodes = map[string]bool{"zh": true, "cmn": true, "yue": true}

	chineseNameRe = regexp.MustCompile(`(?i)\b(chinese|mandarin|cantonese)\b`)

	// skipFormTags mark Kaikki forms that are table metadata, not words.
	skipFormTags = []string{"table-tags", "inflection-template", "class"}
)

// ParseFile opens filePath and parses it with Parse.
func ParseFile(filePath string, log *slog.Logger) (*Result, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f, log)
}

// Parse streams a Kaikki dump (gzip or plain JSONL), keeping English records.
// Lines that are not valid records are counted and skipped.
func Parse(r io.Reader, log *slog.Logger) (*Result, error) {
	result := &Result{Map: translation.NewMap()}

	for line, err := range linestream.DecodedLines(r) {
		if errors.Is(err, linestream.ErrLineTooLong) {
			result.Stats.TotalLines++
			result.Stats.MalformedLines++
			log.Warn("skipping oversized kaikki line", slog.Int("line", result.Stats.TotalLines))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read kaikki stream: %w", err)
		}
		result.Stats.TotalLines++

		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if !gjson.ValidBytes(line) {
			result.Stats.MalformedLines++
			log.Debug("skipping malformed kaikki line", slog.Int("line", result.Stats.TotalLines))
			continue
		}

		// Cheap language peek before decoding the full record.
		peek := gjson.GetManyBytes(line, "lang_code", "lang")
		if peek[0].String() != baseLangCode && peek[1].String() != baseLang {
			continue
		}

		var entry kaikkiEntry
		if err := json.Unmarshal(line, &entry); err != nil {
			result.Stats.MalformedLines++
			log.Debug("skipping undecodable kaikki record",
				slog.Int("line", result.Stats.TotalLines),
				slog.String("error", err.Error()),
			)
			continue
		}
		result.Stats.EnglishLines++

		result.addRecord(&entry)
	}

	result.Stats.References = len(result.References)
	result.Stats.CrossEntries = len(result.Entries)
	return result, nil
}

// addRecord emits the entries of one English record and feeds the reverse map.
func (res *Result) addRecord(entry *kaikkiEntry) {
	word := strings.TrimSpace(entry.Word)
	if word == "" {
		return
	}

	forms := surfaceForms(entry)
	pos := MapPOS(entry.POS)
	pronunciation := buildPronunciation(entry.Sounds)
	glosses := collectGlosses(entry.Senses)

	if len(glosses) > 0 {
		ref := domain.NewEntry(word, domain.SourceWiktionary)
		ref.Pronunciation = pronunciation
		ref.AddForms(forms...)
		ref.AddPOS(string(pos))
		ref.AddDefinitions(glosses...)
		res.References = append(res.References, ref)
	}

	tr := collectChinese(entry)
	if len(tr.words) == 0 {
		return
	}

	cross := domain.NewEntry(word, domain.SourceWiktionary)
	cross.Pronunciation = pronunciation
	cross.AddForms(forms...)
	cross.AddPOS(string(pos))
	cross.AddDefinitions(tr.definitions...)
	if len(tr.romanisations) > 0 {
		cross.SetMeta("romanisations", tr.romanisations)
	}
	if len(glosses) > 0 {
		cross.SetMeta("englishGlosses", glosses[:min(len(glosses), maxAuditGlosses)])
	}
	res.Entries = append(res.Entries, cross)

	for _, form := range cross.Forms {
		for _, key := range domain.LookupKeys(form) {
			res.Map.Add(key, tr.words...)
		}
	}
}

// surfaceForms returns the word plus its inflected forms, first-seen order.
func surfaceForms(entry *kaikkiEntry) []string {
	forms := []string{strings.TrimSpace(entry.Word)}
	for _, f := range entry.Forms {
		form := strings.TrimSpace(f.Form)
		if form == "" || form == "-" || slices.Contains(forms, form) {
			continue
		}
		if slices.ContainsFunc(f.Tags, func(tag string) bool { return slices.Contains(skipFormTags, tag) }) {
			continue
		}
		forms = append(forms, form)
	}
	return forms
}

// buildPronunciation deduplicates IPA transcriptions across sounds.
func buildPronunciation(sounds []kaikkiSound) string {
	var seen []string
	for _, s := range sounds {
		ipa := strings.TrimSpace(s.IPA)
		if ipa == "" || slices.Contains(seen, ipa) {
			continue
		}
		seen = append(seen, ipa)
	}
	return strings.Join(seen, pronunciationSep)
}

// collectGlosses returns all cleaned glosses across senses, deduplicated.
func collectGlosses(senses []kaikkiSense) []string {
	var glosses []string
	for _, s := range senses {
		for _, g := range s.Glosses {
			cleaned := StripMarkup(g)
			if cleaned == "" || slices.Contains(glosses, cleaned) {
				continue
			}
			glosses = append(glosses, cleaned)
		}
	}
	return glosses
}

// chineseTranslations accumulates the qualifying translations of one record.
type chineseTranslations struct {
	words         []string
	definitions   []string
	romanisations []string
}

func (c *chineseTranslations) add(t kaikkiTranslation) {
	for _, variant := range SplitVariants(t.Word) {
		if !domain.ContainsHan(variant) {
			continue
		}
		c.words = appendUnique(c.words, variant)

		def := variant
		if sense := strings.TrimSpace(t.Sense); sense != "" {
			def = variant + definitionSep + sense
		}
		c.definitions = appendUnique(c.definitions, def)
	}
	if roman := strings.TrimSpace(t.Roman); roman != "" {
		c.romanisations = appendUnique(c.romanisations, roman)
	}
}

// collectChinese scans record-level and sense-level translations.
func collectChinese(entry *kaikkiEntry) chineseTranslations {
	var out chineseTranslations
	consider := func(t kaikkiTranslation) {
		if isChinese(t) && domain.ContainsHan(t.Word) {
			out.add(t)
		}
	}
	for _, t := range entry.Translations {
		consider(t)
	}
	for _, s := range entry.Senses {
		for _, t := range s.Translations {
			consider(t)
		}
	}
	return out
}

// isChinese matches a translation by exact code or by language name.
func isChinese(t kaikkiTranslation) bool {
	code := t.LangCode
	if code == "" {
		code = t.Code
	}
	if chineseCodes[strings.ToLower(code)] {
		return true
	}
	return chineseNameRe.MatchString(t.Lang)
}

func appendUnique(sl []string, s string) []string {
	if slices.Contains(sl, s) {
		return sl
	}
	return append(sl, s)
}
