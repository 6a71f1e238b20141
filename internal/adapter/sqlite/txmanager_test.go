package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *TxManager {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "tx.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("CREATE TABLE t (v INTEGER)")
	require.NoError(t, err)
	return NewTxManager(db)
}

func countRows(t *testing.T, m *TxManager) int {
	t.Helper()
	var n int
	require.NoError(t, m.db.QueryRow("SELECT COUNT(*) FROM t").Scan(&n))
	return n
}

func TestTxManager_RunInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commit", func(t *testing.T) {
		m := newTestDB(t)
		err := m.RunInTx(ctx, func(txCtx context.Context) error {
			_, err := QuerierFromCtx(txCtx, m.db).ExecContext(txCtx, "INSERT INTO t (v) VALUES (1)")
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 1, countRows(t, m))
	})

	t.Run("rollback on error", func(t *testing.T) {
		m := newTestDB(t)
		boom := errors.New("boom")
		err := m.RunInTx(ctx, func(txCtx context.Context) error {
			if _, err := QuerierFromCtx(txCtx, m.db).ExecContext(txCtx, "INSERT INTO t (v) VALUES (1)"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, countRows(t, m))
	})

	t.Run("rollback on panic", func(t *testing.T) {
		m := newTestDB(t)
		assert.Panics(t, func() {
			_ = m.RunInTx(ctx, func(txCtx context.Context) error {
				_, _ = QuerierFromCtx(txCtx, m.db).ExecContext(txCtx, "INSERT INTO t (v) VALUES (1)")
				panic("boom")
			})
		})
		assert.Equal(t, 0, countRows(t, m))
	})
}
