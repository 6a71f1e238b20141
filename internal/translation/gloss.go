package translation

import (
	"maps"
	"slices"
	"strings"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// stopWords are closed-class English words that never carry a gloss's meaning.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "to": {}, "of": {}, "in": {}, "on": {},
	"at": {}, "by": {}, "for": {}, "with": {}, "from": {}, "into": {},
	"onto": {}, "about": {}, "as": {}, "and": {}, "or": {}, "but": {},
	"nor": {}, "so": {}, "if": {}, "than": {}, "that": {}, "this": {},
	"these": {}, "those": {}, "be": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "been": {}, "being": {}, "am": {}, "do": {}, "does": {},
	"did": {}, "have": {}, "has": {}, "had": {}, "it": {}, "its": {},
	"one's": {}, "someone": {}, "something": {}, "sb": {}, "sth": {},
	"he": {}, "she": {}, "they": {}, "we": {}, "you": {}, "i": {},
	"his": {}, "her": {}, "their": {}, "our": {}, "your": {}, "my": {},
	"not": {}, "no": {}, "very": {}, "etc": {}, "e": {}, "g": {},
	"up": {}, "out": {}, "over": {}, "off": {}, "down": {},
}

// TranslateGloss derives target-script candidates for an English gloss.
// Every lookup key of the whole gloss is tried first; only when none hits
// are the gloss's content tokens looked up one by one. The result is the
// sorted union of all hits, nil when nothing matched.
func TranslateGloss(gloss string, m *Map) []string {
	if m == nil || m.Len() == 0 {
		return nil
	}

	hits := make(map[string]struct{})
	collect := func(key string) bool {
		values := m.Lookup(key)
		for _, v := range values {
			hits[v] = struct{}{}
		}
		return len(values) > 0
	}

	keys := domain.LookupKeys(gloss)
	direct := false
	for _, key := range keys {
		if collect(key) {
			direct = true
		}
	}

	if !direct && len(keys) > 0 {
		for _, token := range strings.Fields(keys[0]) {
			if len(token) <= 1 {
				continue
			}
			if _, stop := stopWords[token]; stop {
				continue
			}
			collect(token)
			if stripped := strings.Trim(token, "'-"); stripped != token && len(stripped) > 1 {
				collect(stripped)
			}
		}
	}

	if len(hits) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(hits))
}
