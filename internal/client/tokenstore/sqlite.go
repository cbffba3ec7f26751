package tokenstore

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/agroassist/internal/client/migrations"
	"github.com/dmitrijs2005/agroassist/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/agroassist/internal/cryptox"
	"github.com/dmitrijs2005/agroassist/internal/dbx"
	"github.com/dmitrijs2005/agroassist/internal/logging"
)

const (
	storedAtKey = Key + "StoredAt"
	saltKey     = Key + "Salt"
)

// SQLite keeps the token in the metadata table of a local database file.
// With a passphrase the token is sealed before it is written.
type SQLite struct {
	db     *sql.DB
	repo   metadata.Repository
	logger logging.Logger
	key    []byte
}

type SQLiteOption func(*sqliteOptions)

type sqliteOptions struct {
	passphrase string
}

// WithPassphrase seals the stored token with a key derived from passphrase.
// An empty passphrase leaves the token in plain text.
func WithPassphrase(passphrase string) SQLiteOption {
	return func(o *sqliteOptions) {
		o.passphrase = passphrase
	}
}

// OpenSQLite opens (creating if needed) the database at dsn and applies the
// client migrations.
func OpenSQLite(ctx context.Context, dsn string, logger logging.Logger, opts ...SQLiteOption) (*SQLite, error) {
	var o sqliteOptions
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open token database: %w", err)
	}
	// ":memory:" databases exist per connection.
	db.SetMaxOpenConns(1)

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := NewSQLite(db, logger)
	if o.passphrase != "" {
		salt, err := s.salt(ctx)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		s.key = cryptox.DeriveKey([]byte(o.passphrase), salt)
	}
	return s, nil
}

// salt returns the database's key derivation salt, creating it on first use.
func (s *SQLite) salt(ctx context.Context) ([]byte, error) {
	raw, ok, err := s.repo.Get(ctx, saltKey)
	if err != nil {
		return nil, err
	}
	if ok {
		salt, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, fmt.Errorf("malformed token salt: %w", err)
		}
		return salt, nil
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token salt: %w", err)
	}
	if err := s.repo.Set(ctx, saltKey, base64.StdEncoding.EncodeToString(salt)); err != nil {
		return nil, err
	}
	return salt, nil
}

// NewSQLite wraps an already migrated database.
func NewSQLite(db *sql.DB, logger logging.Logger) *SQLite {
	return &SQLite{db: db, repo: metadata.NewSQLiteRepository(db), logger: logger}
}

func (s *SQLite) Get(ctx context.Context) (string, bool) {
	token, ok, err := s.repo.Get(ctx, Key)
	if err != nil {
		s.logger.Warn(ctx, "token store read failed", "store", "sqlite", "error", err)
		return "", false
	}
	if !ok || s.key == nil {
		return token, ok
	}

	plain, err := cryptox.Open(token, s.key)
	if err != nil {
		s.logger.Warn(ctx, "stored token could not be unsealed", "store", "sqlite", "error", err)
		return "", false
	}
	return string(plain), true
}

// Set writes the token and its timestamp in one transaction.
func (s *SQLite) Set(ctx context.Context, token string) error {
	if s.key != nil {
		sealed, err := cryptox.Seal([]byte(token), s.key)
		if err != nil {
			return fmt.Errorf("failed to seal token: %w", err)
		}
		token = sealed
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, Key, token); err != nil {
			return err
		}
		return repo.Set(ctx, storedAtKey, now().Format(time.RFC3339Nano))
	})
}

func (s *SQLite) Clear(ctx context.Context) error {
	return s.repo.Delete(ctx, Key, storedAtKey)
}

func (s *SQLite) IsPresent(ctx context.Context) bool {
	_, ok := s.Get(ctx)
	return ok
}

func (s *SQLite) StoredAt(ctx context.Context) (time.Time, bool) {
	return parseStamp(ctx, s.logger, func() (string, bool, error) {
		return s.repo.Get(ctx, storedAtKey)
	})
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func parseStamp(ctx context.Context, logger logging.Logger, read func() (string, bool, error)) (time.Time, bool) {
	raw, ok, err := read()
	if err != nil {
		logger.Warn(ctx, "token timestamp read failed", "error", err)
		return time.Time{}, false
	}
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		logger.Warn(ctx, "token timestamp malformed", "value", raw, "error", err)
		return time.Time{}, false
	}
	return t, true
}
