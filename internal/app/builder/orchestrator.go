package builder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/dictbuild/internal/adapter/artifact"
	"github.com/heartmarshall/dictbuild/internal/domain"
	"github.com/heartmarshall/dictbuild/pkg/ctxutil"
)

const (
	storeExt    = ".sqlite"
	snapshotExt = ".json.gz"
)

// Options selects what one run builds.
type Options struct {
	Mode  domain.BuildMode
	Force bool
	// Languages are raw identifiers as given on the command line.
	// Empty means every registered language.
	Languages []string
}

// LanguageResult holds the outcome of building one language.
type LanguageResult struct {
	Entries  int
	Written  int
	Skipped  bool
	Duration time.Duration
	Err      error
}

// Orchestrator drives one build run: strategy, persistence, checksum and
// manifest for each requested language in turn.
type Orchestrator struct {
	log          *slog.Logger
	registry     *Registry
	acquirer     SourceAcquirer
	sources      Sources
	store        StoreWriter
	resourcesDir string
	now          func() time.Time
	results      map[string]LanguageResult
}

// NewOrchestrator creates an Orchestrator writing into resourcesDir.
func NewOrchestrator(
	logger *slog.Logger,
	registry *Registry,
	acquirer SourceAcquirer,
	sources Sources,
	store StoreWriter,
	resourcesDir string,
) *Orchestrator {
	return &Orchestrator{
		log:          logger.With("component", "orchestrator"),
		registry:     registry,
		acquirer:     acquirer,
		sources:      sources,
		store:        store,
		resourcesDir: resourcesDir,
		now:          time.Now,
		results:      make(map[string]LanguageResult),
	}
}

// Results returns per-language results after Run completes, keyed by the
// normalized requested identifier.
func (o *Orchestrator) Results() map[string]LanguageResult {
	return o.results
}

// HasErrors returns true if any language failed.
func (o *Orchestrator) HasErrors() bool {
	for _, r := range o.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run builds the requested languages and writes the manifest. A failing
// language is logged and recorded; the run continues with the next one.
// When nothing was produced no manifest is written and both return values
// are nil.
func (o *Orchestrator) Run(ctx context.Context, opts Options) (*domain.Manifest, error) {
	if opts.Mode == "" {
		opts.Mode = domain.BuildModeFull
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	bc := NewBuildContext(o.acquirer, o.sources, o.log)

	if err := os.MkdirAll(o.resourcesDir, 0o755); err != nil {
		return nil, fmt.Errorf("create resources dir: %w", err)
	}

	requested := requestedLanguages(opts.Languages)
	if len(requested) == 0 {
		for _, l := range o.registry.Languages() {
			requested = append(requested, string(l))
		}
	}

	o.log.InfoContext(ctx, "build started",
		slog.String("mode", opts.Mode.String()),
		slog.Bool("force", opts.Force),
		slog.Any("languages", requested),
	)

	var dictionaries []domain.ManifestEntry
	for _, id := range requested {
		start := time.Now()
		entry, result := o.buildLanguage(ctx, bc, id, opts)
		result.Duration = time.Since(start)
		o.results[id] = result

		if entry != nil {
			dictionaries = append(dictionaries, *entry)
		}
	}

	if len(dictionaries) == 0 {
		o.log.WarnContext(ctx, "no dictionaries produced, manifest not written")
		return nil, nil
	}

	manifest := &domain.Manifest{
		RunID:        runID.String(),
		GeneratedAt:  o.now().UTC(),
		Mode:         opts.Mode,
		Dictionaries: dictionaries,
	}
	manifestPath := filepath.Join(o.resourcesDir, artifact.ManifestFileName)
	if err := artifact.WriteManifest(manifestPath, manifest); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	o.log.InfoContext(ctx, "build completed",
		slog.Int("dictionaries", len(dictionaries)),
		slog.String("manifest", manifestPath),
		slog.Bool("has_errors", o.HasErrors()),
	)
	return manifest, nil
}

// requestedLanguages lowercases and trims ids, dropping blanks and
// repeats while keeping first-seen order.
func requestedLanguages(ids []string) []string {
	var out []string
	for _, id := range ids {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// buildLanguage runs one language end to end. A nil manifest entry means
// the language produced no artifacts.
func (o *Orchestrator) buildLanguage(ctx context.Context, bc *BuildContext, id string, opts Options) (*domain.ManifestEntry, LanguageResult) {
	lang := domain.Language(id)
	ctx = ctxutil.WithLanguage(ctx, string(lang))

	strategy, ok := o.registry.Dispatch(lang)
	if !ok {
		o.log.WarnContext(ctx, "no builder registered, skipping",
			slog.String("error", fmt.Errorf("%w: %q", domain.ErrUnknownLanguage, id).Error()),
		)
		return nil, LanguageResult{Skipped: true}
	}

	o.log.InfoContext(ctx, "building language")

	var entries []domain.DictionaryEntry
	if opts.Mode == domain.BuildModeSample {
		entries = strategy.Fixtures()
	} else {
		var err error
		entries, err = strategy.Build(ctx, bc)
		if err != nil {
			return nil, o.fail(ctx, LanguageResult{}, fmt.Errorf("build %s: %w", lang, err))
		}
	}

	result := LanguageResult{Entries: len(entries)}
	if len(entries) == 0 {
		o.log.WarnContext(ctx, "builder returned no entries, skipping",
			slog.String("error", domain.ErrEmptyResult.Error()),
		)
		result.Skipped = true
		return nil, result
	}

	entry, err := o.persist(ctx, strategy, entries, opts.Force)
	if err != nil {
		return nil, o.fail(ctx, result, err)
	}
	result.Written = entry.Entries

	o.log.InfoContext(ctx, "language completed",
		slog.Int("entries", result.Entries),
		slog.Int("rows", result.Written),
	)
	return entry, result
}

// persist writes the store and the snapshot, then checksums both files.
// Without force, an existing store or snapshot fails the language before
// either file is written.
func (o *Orchestrator) persist(ctx context.Context, strategy Strategy, entries []domain.DictionaryEntry, force bool) (*domain.ManifestEntry, error) {
	lang := strategy.Language()
	files := domain.ArtifactFiles{
		SQLite:   string(lang) + storeExt,
		Snapshot: string(lang) + snapshotExt,
	}
	storePath := filepath.Join(o.resourcesDir, files.SQLite)
	snapshotPath := filepath.Join(o.resourcesDir, files.Snapshot)

	if !force {
		if err := checkFree(storePath, snapshotPath); err != nil {
			return nil, err
		}
	}

	rows, err := o.store.Write(ctx, storePath, lang, entries, force)
	if err != nil {
		return nil, fmt.Errorf("write store: %w", err)
	}
	if err := artifact.WriteSnapshot(snapshotPath, entries, force); err != nil {
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	var sums domain.ArtifactFiles
	if sums.SQLite, err = artifact.Checksum(storePath); err != nil {
		return nil, fmt.Errorf("checksum store: %w", err)
	}
	if sums.Snapshot, err = artifact.Checksum(snapshotPath); err != nil {
		return nil, fmt.Errorf("checksum snapshot: %w", err)
	}

	return &domain.ManifestEntry{
		Language:  lang,
		Entries:   rows,
		Files:     files,
		Checksums: sums,
		Source:    strategy.Source(),
	}, nil
}

// checkFree returns ErrOverwriteConflict for the first path that exists.
func checkFree(paths ...string) error {
	for _, p := range paths {
		_, err := os.Stat(p)
		if err == nil {
			return fmt.Errorf("%w: %s", domain.ErrOverwriteConflict, p)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return nil
}

func (o *Orchestrator) fail(ctx context.Context, result LanguageResult, err error) LanguageResult {
	attrs := []any{slog.String("error", err.Error())}
	if errors.Is(err, domain.ErrOverwriteConflict) {
		attrs = append(attrs, slog.String("hint", "rerun with --force to replace existing artifacts"))
	}
	o.log.ErrorContext(ctx, "language failed", attrs...)

	result.Err = err
	return result
}
