package builder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/dictbuild/internal/adapter/source"
	"github.com/heartmarshall/dictbuild/internal/app/builder/cedict"
	"github.com/heartmarshall/dictbuild/internal/app/builder/jmdict"
	"github.com/heartmarshall/dictbuild/internal/app/builder/wiktionary"
	"github.com/heartmarshall/dictbuild/internal/translation"
)

// BuildContext caches parsed sources for the duration of one run so every
// source is acquired and parsed at most once, whichever language asks first.
// Failures are cached too: a source that could not be loaded is not retried
// within the same run. Not safe for concurrent use.
type BuildContext struct {
	acquirer SourceAcquirer
	sources  Sources
	log      *slog.Logger

	wiktionary    *wiktionary.Result
	wiktionaryErr error
	cedict        *cedict.ParseResult
	cedictErr     error
	jmdict        *jmdict.Result
	jmdictErr     error
	combined      *translation.Map
}

// NewBuildContext creates an empty context.
func NewBuildContext(acquirer SourceAcquirer, sources Sources, logger *slog.Logger) *BuildContext {
	return &BuildContext{
		acquirer: acquirer,
		sources:  sources,
		log:      logger,
	}
}

// Wiktionary returns the parsed Kaikki dump.
func (bc *BuildContext) Wiktionary(ctx context.Context) (*wiktionary.Result, error) {
	if bc.wiktionary != nil || bc.wiktionaryErr != nil {
		return bc.wiktionary, bc.wiktionaryErr
	}

	bc.wiktionary, bc.wiktionaryErr = load(ctx, bc, bc.sources.Wiktionary, func(path string) (*wiktionary.Result, error) {
		res, err := wiktionary.ParseFile(path, bc.log)
		if err != nil {
			return nil, err
		}
		bc.log.InfoContext(ctx, "wiktionary parsed",
			slog.Int("total_lines", res.Stats.TotalLines),
			slog.Int("malformed_lines", res.Stats.MalformedLines),
			slog.Int("english_lines", res.Stats.EnglishLines),
			slog.Int("references", res.Stats.References),
			slog.Int("cross_entries", res.Stats.CrossEntries),
			slog.Int("map_keys", res.Map.Len()),
		)
		return res, nil
	})
	return bc.wiktionary, bc.wiktionaryErr
}

// CEDICT returns the parsed CC-CEDICT file.
func (bc *BuildContext) CEDICT(ctx context.Context) (*cedict.ParseResult, error) {
	if bc.cedict != nil || bc.cedictErr != nil {
		return bc.cedict, bc.cedictErr
	}

	bc.cedict, bc.cedictErr = load(ctx, bc, bc.sources.CEDICT, func(path string) (*cedict.ParseResult, error) {
		res, err := cedict.ParseFile(path)
		if err != nil {
			return nil, err
		}
		bc.log.InfoContext(ctx, "cedict parsed",
			slog.Int("total_lines", res.Stats.TotalLines),
			slog.Int("comment_lines", res.Stats.CommentLines),
			slog.Int("skipped_lines", res.Stats.SkippedLines),
			slog.Int("entries", len(res.Entries)),
			slog.Int("map_keys", res.Map.Len()),
		)
		return &res, nil
	})
	return bc.cedict, bc.cedictErr
}

// JMdict returns the parsed JMdict document.
func (bc *BuildContext) JMdict(ctx context.Context) (*jmdict.Result, error) {
	if bc.jmdict != nil || bc.jmdictErr != nil {
		return bc.jmdict, bc.jmdictErr
	}

	bc.jmdict, bc.jmdictErr = load(ctx, bc, bc.sources.JMdict, func(path string) (*jmdict.Result, error) {
		res, err := jmdict.ParseFile(path, bc.log)
		if err != nil {
			return nil, err
		}
		bc.log.InfoContext(ctx, "jmdict parsed",
			slog.Int("entries", res.Stats.Entries),
			slog.Int("skipped_entries", res.Stats.SkippedEntries),
			slog.Int("malformed_entries", res.Stats.MalformedEntries),
			slog.Int("records", len(res.Records)),
		)
		return res, nil
	})
	return bc.jmdict, bc.jmdictErr
}

// CombinedMap returns the union of the CC-CEDICT and Wiktionary reverse maps.
func (bc *BuildContext) CombinedMap(ctx context.Context) (*translation.Map, error) {
	if bc.combined != nil {
		return bc.combined, nil
	}

	cd, err := bc.CEDICT(ctx)
	if err != nil {
		return nil, err
	}
	wk, err := bc.Wiktionary(ctx)
	if err != nil {
		return nil, err
	}

	bc.combined = translation.Merge(cd.Map, wk.Map)
	bc.log.InfoContext(ctx, "combined translation map ready",
		slog.Int("cedict_keys", cd.Map.Len()),
		slog.Int("wiktionary_keys", wk.Map.Len()),
		slog.Int("keys", bc.combined.Len()),
	)
	return bc.combined, nil
}

// load acquires one source and parses it, timing the whole step.
func load[T any](ctx context.Context, bc *BuildContext, src source.Source, parse func(path string) (*T, error)) (*T, error) {
	start := time.Now()

	path, err := bc.acquirer.Ensure(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", src.Name, err)
	}

	res, err := parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.Name, err)
	}

	bc.log.DebugContext(ctx, "source loaded",
		slog.String("source", src.Name),
		slog.Duration("duration", time.Since(start)),
	)
	return res, nil
}
