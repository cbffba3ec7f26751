package metadata

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/agroassist/internal/client/migrations"
	"github.com/dmitrijs2005/agroassist/internal/dbx"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(context.Background(), db))
	return db
}

func TestGet_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	v, ok, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSet_InsertThenUpsert(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "authToken", "old"))
	require.NoError(t, r.Set(ctx, "authToken", "new"))

	v, ok, err := r.Get(ctx, "authToken")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestSet_EmptyValueIsPresent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", ""))
	_, ok, err := r.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDelete_SeveralKeysAndIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "a", "1"))
	require.NoError(t, r.Set(ctx, "b", "2"))
	require.NoError(t, r.Set(ctx, "c", "3"))

	require.NoError(t, r.Delete(ctx, "a", "b"))
	require.NoError(t, r.Delete(ctx, "a"))
	require.NoError(t, r.Delete(ctx))

	_, ok, _ := r.Get(ctx, "a")
	assert.False(t, ok)
	_, ok, _ = r.Get(ctx, "b")
	assert.False(t, ok)
	v, ok, _ := r.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestWorksInsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return NewSQLiteRepository(tx).Set(ctx, "k", "v")
	})
	require.NoError(t, err)

	v, ok, err := NewSQLiteRepository(db).Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestErrorsWrapped_WhenDBClosed(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, _, err := r.Get(ctx, "k")
	require.ErrorContains(t, err, "failed to get metadata[k]")

	err = r.Set(ctx, "k", "v")
	require.ErrorContains(t, err, "failed to set metadata[k]")

	err = r.Delete(ctx, "k")
	require.ErrorContains(t, err, "failed to delete metadata[k]")
}
