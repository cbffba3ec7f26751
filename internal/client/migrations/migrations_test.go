package migrations

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUp_CreatesMetadataTable(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db))

	_, err := db.ExecContext(ctx, `INSERT INTO metadata(key, value) VALUES ('k', 'v')`)
	require.NoError(t, err)
}

func TestUp_Idempotent(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()

	require.NoError(t, Up(ctx, db))
	require.NoError(t, Up(ctx, db))
}

func TestUp_WrapsGooseError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("boom")
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return boom }

	err := Up(context.Background(), openDB(t))
	require.ErrorIs(t, err, boom)
	require.Contains(t, err.Error(), "failed to run migrations")
}
