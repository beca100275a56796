package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PostgresCartStore keeps carts in a single key/value table.
type PostgresCartStore struct {
	DB *sql.DB
}

func NewPostgresCartStore(db *sql.DB) *PostgresCartStore {
	return &PostgresCartStore{DB: db}
}

func (s *PostgresCartStore) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS carts (
			cart_key   TEXT PRIMARY KEY,
			payload    TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (s *PostgresCartStore) Save(ctx context.Context, key string, payload []byte) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO carts (cart_key, payload, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (cart_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = CURRENT_TIMESTAMP
	`, key, string(payload))
	return err
}

func (s *PostgresCartStore) Load(ctx context.Context, key string) ([]byte, error) {
	var payload string
	err := s.DB.QueryRowContext(ctx, `
		SELECT payload FROM carts WHERE cart_key = $1
	`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(payload), nil
}

func (s *PostgresCartStore) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM carts WHERE cart_key = $1`, key)
	return err
}

// PurgeStale removes carts not written since before and returns how many
// rows went away. Redis expires keys itself; this is the PostgreSQL
// counterpart of that TTL.
func (s *PostgresCartStore) PurgeStale(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM carts WHERE updated_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
