package securestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/calamaunido/internal/common"
	"github.com/dmitrijs2005/calamaunido/internal/cryptox"
	"github.com/dmitrijs2005/calamaunido/internal/dbx"
)

const keyInfo = "calamaunido/secure-storage/v1"

var ErrNotFound = errors.New("not found in secure storage")

// Store is an encrypted string key/value store.
type Store struct {
	db   *sql.DB
	repo Repository
	key  []byte
}

// New wraps an already migrated database. deviceKey is the raw secret
// returned by LoadOrCreateDeviceKey.
func New(db *sql.DB, deviceKey []byte) (*Store, error) {
	key, err := cryptox.DeriveKey(deviceKey, keyInfo)
	if err != nil {
		return nil, fmt.Errorf("derive storage key: %w", err)
	}
	return &Store{db: db, repo: NewSQLiteRepository(db), key: key}, nil
}

// Open opens (or creates) the database at dsn and the device key at keyPath.
func Open(ctx context.Context, dsn, keyPath string) (*Store, error) {
	deviceKey, err := LoadOrCreateDeviceKey(keyPath)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(deviceKey)

	db, err := OpenDatabase(ctx, dsn)
	if err != nil {
		return nil, err
	}

	s, err := New(db, deviceKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns ErrNotFound when key was never set or has been deleted.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return get(ctx, s.repo, s.key, key)
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return set(ctx, s.repo, s.key, key, value)
}

// Delete is a no-op for a missing key.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

// SaveSession stores both tokens atomically. An empty refresh token removes
// any previously stored one.
func (s *Store) SaveSession(ctx context.Context, access, refresh string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := set(ctx, repo, s.key, common.AccessTokenKey, access); err != nil {
			return err
		}
		if refresh == "" {
			return repo.Delete(ctx, common.RefreshTokenKey)
		}
		return set(ctx, repo, s.key, common.RefreshTokenKey, refresh)
	})
}

// ClearSession removes both tokens atomically.
func (s *Store) ClearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.AccessTokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.RefreshTokenKey)
	})
}

// Token returns the stored access token, or "" when there is none. It lets
// the store act as the API client's token source.
func (s *Store) Token(ctx context.Context) (string, error) {
	tok, err := s.Get(ctx, common.AccessTokenKey)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return tok, err
}

func get(ctx context.Context, repo Repository, encKey []byte, key string) (string, error) {
	rec, err := repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", ErrNotFound
	}

	plain, err := cryptox.Open(encKey, rec.Value, rec.Nonce, []byte(key))
	if err != nil {
		return "", fmt.Errorf("open %s: %w", key, err)
	}
	return string(plain), nil
}

func set(ctx context.Context, repo Repository, encKey []byte, key, value string) error {
	ct, nonce, err := cryptox.Seal(encKey, []byte(value), []byte(key))
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return repo.Set(ctx, key, Record{Value: ct, Nonce: nonce})
}
