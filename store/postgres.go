package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/navicore/regexgen/pattern"
)

// PostgresStore keeps the pattern list as one row in pattern_sets, keyed
// by the same logical key the Redis backend uses. Same contract, same
// last-write-wins semantics.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context) ([]pattern.Pattern, error) {
	var jsonData []byte

	row := s.pool.QueryRow(ctx, `SELECT data FROM pattern_sets WHERE key = $1`, PatternsKey)
	if err := row.Scan(&jsonData); err != nil {
		if err == pgx.ErrNoRows {
			// nothing saved yet
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read patterns: %v", ErrUnavailable, err)
	}

	patterns, err := pattern.UnmarshalList(jsonData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return patterns, nil
}

func (s *PostgresStore) Save(ctx context.Context, patterns []pattern.Pattern) error {
	jsonData, err := pattern.MarshalList(patterns)
	if err != nil {
		return fmt.Errorf("failed to serialize patterns: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO pattern_sets (key, data)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET data = EXCLUDED.data, updated_at = now()`,
		PatternsKey, jsonData,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to write patterns: %v", ErrUnavailable, err)
	}

	return nil
}

func (s *PostgresStore) Shutdown() {
	s.pool.Close()
}
