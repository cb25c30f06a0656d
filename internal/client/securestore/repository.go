package securestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/calamaunido/internal/dbx"
)

// Record is one sealed row of secure_storage.
type Record struct {
	Value []byte
	Nonce []byte
}

type Repository interface {
	Get(ctx context.Context, key string) (*Record, error)
	Set(ctx context.Context, key string, rec Record) error
	Delete(ctx context.Context, key string) error
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns nil, nil when key is absent.
func (r *SQLiteRepository) Get(ctx context.Context, key string) (*Record, error) {
	var rec Record
	err := r.db.QueryRowContext(ctx, `SELECT value, nonce FROM secure_storage WHERE key = ?`, key).
		Scan(&rec.Value, &rec.Nonce)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get secure_storage[%s]: %w", key, err)
	}
	return &rec, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, rec Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO secure_storage (key, value, nonce) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			nonce = excluded.nonce,
			updated_at = CURRENT_TIMESTAMP
	`, key, rec.Value, rec.Nonce)
	if err != nil {
		return fmt.Errorf("failed to set secure_storage[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secure_storage WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete secure_storage[%s]: %w", key, err)
	}
	return nil
}
