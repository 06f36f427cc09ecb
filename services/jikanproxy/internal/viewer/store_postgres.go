package viewer

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads preferences and tracked ids from the application's
// users and user_anime tables.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Preferences returns the zero value for unknown users.
func (s *PostgresStore) Preferences(ctx context.Context, userID string) (Preferences, error) {
	const q = `SELECT COALESCE(nsfw_allowed, false) FROM users WHERE id::text = $1`
	var p Preferences
	err := s.pool.QueryRow(ctx, q, userID).Scan(&p.NSFWAllowed)
	if errors.Is(err, pgx.ErrNoRows) {
		return Preferences{}, nil
	}
	return p, err
}

func (s *PostgresStore) TrackedIDs(ctx context.Context, userID string) ([]int, error) {
	const q = `SELECT DISTINCT mal_id FROM user_anime WHERE user_id::text = $1 ORDER BY mal_id`
	rows, err := s.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}

// Ping reports whether the database answers; used by the readiness probe.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
