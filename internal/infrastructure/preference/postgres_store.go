package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresStore keeps values in the preferences table, see
// migrations/001_preferences.sql.
type PostgresStore struct {
	db *sqlx.DB
}

func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type preferenceSchema struct {
	Key   string `db:"key"`
	Value []byte `db:"value"`
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row preferenceSchema

	err := s.db.GetContext(ctx, &row, `SELECT key, value FROM preferences WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext: %w", err)
	}

	return row.Value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (:key, :value, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := s.db.NamedExecContext(ctx, query, preferenceSchema{Key: key, Value: value}); err != nil {
		return fmt.Errorf("db.NamedExecContext: %w", err)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = $1`, key); err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}
