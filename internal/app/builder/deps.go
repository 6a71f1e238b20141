// Package builder turns raw dictionary sources into per-language artifacts.
// It owns the language strategies, the per-run source cache and the
// orchestration loop that persists every language and writes the manifest.
package builder

import (
	"context"

	"github.com/heartmarshall/dictbuild/internal/adapter/source"
	"github.com/heartmarshall/dictbuild/internal/domain"
)

// SourceAcquirer makes a raw source available on disk.
// Implemented by source.Acquirer.
type SourceAcquirer interface {
	Ensure(ctx context.Context, src source.Source) (string, error)
}

// StoreWriter persists one language's entries into its embedded store and
// returns the number of rows written. Implemented by sqlite.Writer.
type StoreWriter interface {
	Write(ctx context.Context, path string, lang domain.Language, entries []domain.DictionaryEntry, force bool) (int, error)
}

// Sources groups the remote archives the strategies read from.
type Sources struct {
	Wiktionary source.Source
	CEDICT     source.Source
	JMdict     source.Source
}

// NewSources builds the source set from the configured URLs.
func NewSources(wiktionaryURL, cedictURL, jmdictURL string) Sources {
	return Sources{
		Wiktionary: source.Wiktionary(wiktionaryURL),
		CEDICT:     source.CEDICT(cedictURL),
		JMdict:     source.JMdict(jmdictURL),
	}
}
