package jmdict

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/heartmarshall/dictbuild/internal/domain"
	"github.com/heartmarshall/dictbuild/internal/translation"
	"github.com/heartmarshall/dictbuild/pkg/linestream"
)

// maxAuditGlosses caps the English glosses kept in metadata.
const maxAuditGlosses = 5

var (
	englishLangs = map[string]bool{"": true, "eng": true, "en": true}
	nativeLangs  = map[string]bool{"chi": true, "zho": true, "zh": true, "cmn": true}

	entityDeclRe = regexp.MustCompile(`<!ENTITY\s+([^\s"]+)\s+"[^"]*"\s*>`)
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

// Parse streams a JMdict document (gzip or plain XML) entry by entry.
// Entries without any kanji or reading form are counted and skipped.
func Parse(r io.Reader, log *slog.Logger) (*Result, error) {
	rc, err := linestream.Open(r)
	if err != nil {
		return nil, fmt.Errorf("open jmdict stream: %w", err)
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	// JMdict relies on DTD entities (&n; &v5k; ...) that the decoder cannot
	// expand itself. Every code decodes to its bare name.
	dec.Strict = false
	dec.Entity = make(map[string]string, len(posTable))
	for code := range posTable {
		dec.Entity[code] = code
	}

	result := &Result{}
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read jmdict token: %w", err)
		}

		switch t := tok.(type) {
		case xml.Directive:
			registerEntities(dec.Entity, t)
		case xml.StartElement:
			if t.Name.Local != "entry" {
				continue
			}
			result.Stats.Entries++

			var entry xmlEntry
			if err := dec.DecodeElement(&entry, &t); err != nil {
				var syntaxErr *xml.SyntaxError
				if errors.As(err, &syntaxErr) {
					return nil, fmt.Errorf("decode entry %d: %w", result.Stats.Entries, err)
				}
				result.Stats.MalformedEntries++
				log.Debug("skipping malformed jmdict entry",
					slog.Int("entry", result.Stats.Entries),
					slog.String("error", err.Error()),
				)
				continue
			}

			rec, ok := entry.record()
			if !ok {
				result.Stats.SkippedEntries++
				continue
			}
			if len(rec.English) > 0 {
				result.Stats.EnglishGlossed++
			}
			if len(rec.Native) > 0 {
				result.Stats.NativeGlossed++
			}
			result.Records = append(result.Records, rec)
		}
	}

	return result, nil
}

// registerEntities adds every entity declared in the DTD internal subset.
func registerEntities(entities map[string]string, d xml.Directive) {
	for _, m := range entityDeclRe.FindAllSubmatch(d, -1) {
		name := string(m[1])
		if _, ok := entities[name]; !ok {
			entities[name] = name
		}
	}
}

// record flattens an entry; ok is false when it has no usable headword.
func (e *xmlEntry) record() (Record, bool) {
	var kebs, rebs []string
	for _, k := range e.KEle {
		kebs = appendTrimmed(kebs, k.Keb...)
	}
	for _, r := range e.REle {
		rebs = appendTrimmed(rebs, r.Reb...)
	}

	var rec Record
	switch {
	case len(kebs) > 0:
		rec.Word = kebs[0]
	case len(rebs) > 0:
		rec.Word = rebs[0]
	default:
		return Record{}, false
	}
	if len(rebs) > 0 {
		rec.Reading = rebs[0]
	}
	rec.Forms = appendTrimmed(kebs, rebs...)

	for _, s := range e.Sense {
		for _, p := range s.POS {
			rec.POS = appendTrimmed(rec.POS, MapPOS(p))
		}
		for _, g := range s.Gloss {
			lang := strings.ToLower(strings.TrimSpace(g.Lang))
			switch {
			case englishLangs[lang]:
				rec.English = appendTrimmed(rec.English, g.Text)
			case nativeLangs[lang]:
				rec.Native = appendTrimmed(rec.Native, g.Text)
			}
		}
	}
	return rec, true
}

// EnglishEntries returns the ja-en entries: one per record with English glosses.
func (r *Result) EnglishEntries() []domain.DictionaryEntry {
	var out []domain.DictionaryEntry
	for _, rec := range r.Records {
		if len(rec.English) == 0 {
			continue
		}
		e := rec.entry(domain.SourceJMdict)
		e.AddDefinitions(rec.English...)
		out = append(out, e)
	}
	return out
}

// CrossEntries returns the ja-zh entries. Native Chinese glosses are used
// as-is; otherwise every English gloss is translated through m.
// Records without any Chinese definition are dropped.
func (r *Result) CrossEntries(m *translation.Map) []domain.DictionaryEntry {
	var out []domain.DictionaryEntry
	for _, rec := range r.Records {
		var (
			defs   []string
			source = domain.SourceJMdict
		)
		if len(rec.Native) > 0 {
			defs = rec.Native
		} else {
			set := make(map[string]struct{})
			for _, gloss := range rec.English {
				for _, zh := range translation.TranslateGloss(gloss, m) {
					set[zh] = struct{}{}
				}
			}
			defs = slices.Sorted(maps.Keys(set))
			source = domain.SourceJMdictTranslated
		}
		if len(defs) == 0 {
			continue
		}

		e := rec.entry(source)
		e.AddDefinitions(defs...)
		if len(rec.English) > 0 {
			e.SetMeta("englishGlosses", slices.Clone(rec.English[:min(len(rec.English), maxAuditGlosses)]))
		}
		out = append(out, e)
	}
	return out
}

func (rec Record) entry(source string) domain.DictionaryEntry {
	e := domain.NewEntry(rec.Word, source)
	e.Reading = rec.Reading
	e.AddForms(rec.Forms...)
	e.AddPOS(rec.POS...)
	return e
}

// appendTrimmed appends the trimmed, non-empty values missing from dst.
func appendTrimmed(dst []string, values ...string) []string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(dst, v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
