package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/agroassist/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/agroassist/internal/logging"
)

func fixClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

// exerciseStore checks the contract every Store must satisfy.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	tok, ok := s.Get(ctx)
	assert.False(t, ok, "starts empty")
	assert.Empty(t, tok)
	assert.False(t, s.IsPresent(ctx))

	require.NoError(t, s.Set(ctx, "first"))
	require.NoError(t, s.Set(ctx, "second"))
	tok, ok = s.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "second", tok, "set overwrites")
	assert.True(t, s.IsPresent(ctx))

	require.NoError(t, s.Clear(ctx))
	_, ok = s.Get(ctx)
	assert.False(t, ok)
	assert.False(t, s.IsPresent(ctx))

	require.NoError(t, s.Clear(ctx), "clearing an empty store is fine")
}

func exerciseStamp(t *testing.T, s interface {
	Store
	Stamped
}) {
	t.Helper()
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	fixClock(t, at)

	_, ok := s.StoredAt(ctx)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "tok"))
	got, ok := s.StoredAt(ctx)
	require.True(t, ok)
	assert.True(t, at.Equal(got))

	require.NoError(t, s.Clear(ctx))
	_, ok = s.StoredAt(ctx)
	assert.False(t, ok)
}

func TestMemory_Contract(t *testing.T) {
	exerciseStore(t, NewMemory())
	exerciseStamp(t, NewMemory())
}

func TestSQLite_Contract(t *testing.T) {
	s, err := OpenSQLite(context.Background(), ":memory:", logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
	exerciseStamp(t, s)
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agro.db")
	ctx := context.Background()

	s, err := OpenSQLite(ctx, path, logging.Discard())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "durable"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path, logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	tok, ok := s.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "durable", tok)
}

func TestSQLite_SealedContract(t *testing.T) {
	s, err := OpenSQLite(context.Background(), ":memory:", logging.Discard(), WithPassphrase("pass"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	exerciseStore(t, s)
	exerciseStamp(t, s)
}

func TestSQLite_SealsTokenAtRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agro.db")
	ctx := context.Background()

	s, err := OpenSQLite(ctx, path, logging.Discard(), WithPassphrase("pass"))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "tok-111"))

	raw, ok, err := metadata.NewSQLiteRepository(s.db).Get(ctx, Key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, "tok-111", raw)
	assert.NotContains(t, raw, "tok-111")
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path, logging.Discard(), WithPassphrase("pass"))
	require.NoError(t, err)
	tok, ok := s.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tok-111", tok)
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path, logging.Discard(), WithPassphrase("wrong"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	_, ok = s.Get(ctx)
	assert.False(t, ok, "a token sealed under another passphrase reads as absent")
}

func TestSQLite_EmptyPassphraseStoresPlainText(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, ":memory:", logging.Discard(), WithPassphrase(""))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Set(ctx, "plain"))
	raw, _, err := metadata.NewSQLiteRepository(s.db).Get(ctx, Key)
	require.NoError(t, err)
	assert.Equal(t, "plain", raw)
}

func TestSQLite_ReadFailureMeansAbsent(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, ":memory:", logging.Discard())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "tok"))
	require.NoError(t, s.Close())

	tok, ok := s.Get(ctx)
	assert.False(t, ok)
	assert.Empty(t, tok)
	assert.False(t, s.IsPresent(ctx))
	_, ok = s.StoredAt(ctx)
	assert.False(t, ok)

	assert.Error(t, s.Set(ctx, "again"))
}

func TestOpenSQLite_BadPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing", "nested")
	_, err := OpenSQLite(context.Background(), filepath.Join(dir, "x.db"), logging.Discard())
	require.Error(t, err)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRedis_UnreachableServer(t *testing.T) {
	r := NewRedis("127.0.0.1:1", logging.Discard())
	t.Cleanup(func() { _ = r.Close() })
	ctx := context.Background()

	tok, ok := r.Get(ctx)
	assert.False(t, ok, "unreachable redis reads as absent")
	assert.Empty(t, tok)
	assert.False(t, r.IsPresent(ctx))
	_, ok = r.StoredAt(ctx)
	assert.False(t, ok)

	assert.ErrorContains(t, r.Set(ctx, "tok"), "failed to store token in redis")
	assert.ErrorContains(t, r.Clear(ctx), "failed to clear token in redis")
	assert.Error(t, r.Ping(ctx))
}

// TestRedis_Contract runs against a real server when AGRO_TEST_REDIS_ADDR is
// set.
func TestRedis_Contract(t *testing.T) {
	addr := os.Getenv("AGRO_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("AGRO_TEST_REDIS_ADDR not set")
	}
	r := NewRedis(addr, logging.Discard())
	t.Cleanup(func() { _ = r.Close() })
	require.NoError(t, r.Ping(context.Background()))
	require.NoError(t, r.Clear(context.Background()))

	exerciseStore(t, r)
	exerciseStamp(t, r)
}
