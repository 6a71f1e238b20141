package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/dictbuild/internal/domain"
)

// Reader reads rows back from a finished store.
type Reader struct {
	db *sql.DB
}

// NewReader wraps an open store handle.
func NewReader(db *sql.DB) *Reader {
	return &Reader{db: db}
}

// All returns every row in insertion order.
func (r *Reader) All(ctx context.Context) ([]domain.EntryRow, error) {
	return r.query(ctx, builder.Select(entryColumns...).From(tableEntries).OrderBy("id"))
}

// ByNormalized returns the rows indexed under key.
func (r *Reader) ByNormalized(ctx context.Context, key string) ([]domain.EntryRow, error) {
	return r.query(ctx, builder.Select(entryColumns...).
		From(tableEntries).
		Where(squirrel.Eq{"normalized": key}).
		OrderBy("id"))
}

// ByReading returns the rows whose reading equals reading.
func (r *Reader) ByReading(ctx context.Context, reading string) ([]domain.EntryRow, error) {
	return r.query(ctx, builder.Select(entryColumns...).
		From(tableEntries).
		Where(squirrel.Eq{"reading": reading}).
		OrderBy("id"))
}

// Count returns the number of stored rows.
func (r *Reader) Count(ctx context.Context) (int, error) {
	query, args, err := builder.Select("COUNT(*)").From(tableEntries).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func (r *Reader) query(ctx context.Context, sb squirrel.SelectBuilder) ([]domain.EntryRow, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select entries: %w", err)
	}
	defer rows.Close()

	var out []domain.EntryRow
	for rows.Next() {
		var (
			row      domain.EntryRow
			metadata sql.NullString
		)
		if err := rows.Scan(
			&row.Normalized, &row.Term, &row.Reading, &row.Pronunciation,
			&row.Forms, &row.POS, &row.Definitions, &row.Source, &metadata,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		row.Metadata = metadata.String
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return out, nil
}
