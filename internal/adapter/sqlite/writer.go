package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// DefaultBatchSize is the number of rows per multi-row INSERT.
const DefaultBatchSize = 500

// Writer persists one language's entries into a fresh SQLite file.
type Writer struct {
	batchSize int
	log       *slog.Logger
}

// maxVariables is SQLite's bound-parameter limit per statement.
const maxVariables = 32766

// NewWriter creates a Writer. A non-positive batchSize selects
// DefaultBatchSize; larger batches are clamped so one INSERT stays within
// the bound-parameter limit.
func NewWriter(batchSize int, logger *slog.Logger) *Writer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	batchSize = min(batchSize, maxVariables/len(entryColumns))
	return &Writer{
		batchSize: batchSize,
		log:       logger.With("adapter", "sqlite"),
	}
}

// Write creates the store at path and inserts the storable entries in a
// single transaction, then compacts the file. An existing file is an
// ErrOverwriteConflict unless force is set, in which case it is replaced.
// Returns the number of rows written.
func (w *Writer) Write(ctx context.Context, path string, lang domain.Language, entries []domain.DictionaryEntry, force bool) (n int, err error) {
	if err := prepareDestination(path, force); err != nil {
		return 0, err
	}

	rows, err := buildRows(lang, entries)
	if err != nil {
		return 0, err
	}

	db, err := Open(ctx, path)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close sqlite %s: %w", path, closeErr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err := Migrate(ctx, db); err != nil {
		return 0, err
	}

	txm := NewTxManager(db)
	err = txm.RunInTx(ctx, func(txCtx context.Context) error {
		return w.insertRows(txCtx, QuerierFromCtx(txCtx, db), rows)
	})
	if err != nil {
		return 0, fmt.Errorf("insert entries: %w", err)
	}

	if err := compact(ctx, db); err != nil {
		return 0, err
	}

	w.log.DebugContext(ctx, "store written",
		slog.String("path", path),
		slog.String("language", lang.String()),
		slog.Int("rows", len(rows)),
		slog.Int("filtered", len(entries)-len(rows)),
	)
	return len(rows), nil
}

// prepareDestination applies the overwrite rule and creates parent dirs.
func prepareDestination(path string, force bool) error {
	if _, err := os.Stat(path); err == nil {
		if !force {
			return fmt.Errorf("%w: %s", domain.ErrOverwriteConflict, path)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return nil
}

// buildRows keeps the entries that have a storable row.
func buildRows(lang domain.Language, entries []domain.DictionaryEntry) ([]domain.EntryRow, error) {
	rows := make([]domain.EntryRow, 0, len(entries))
	for _, e := range entries {
		row, ok, err := domain.NewEntryRow(lang, e)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// insertRows issues one multi-row INSERT per batch.
func (w *Writer) insertRows(ctx context.Context, q Querier, rows []domain.EntryRow) error {
	for start := 0; start < len(rows); start += w.batchSize {
		end := min(start+w.batchSize, len(rows))

		insert := builder.Insert(tableEntries).Columns(entryColumns...)
		for _, r := range rows[start:end] {
			insert = insert.Values(
				r.Normalized, r.Term, r.Reading, r.Pronunciation,
				r.Forms, r.POS, r.Definitions, r.Source, nullString(r.Metadata),
			)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", start, end, err)
		}
	}
	return nil
}

// compact drops migration bookkeeping and rewrites the file.
func compact(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+gooseVersionTable); err != nil {
		return fmt.Errorf("drop %s: %w", gooseVersionTable, err)
	}
	if _, err := db.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
