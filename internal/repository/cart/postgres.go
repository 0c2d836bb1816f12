package cart

import (
	"context"
	"errors"

	"gearstore/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Load(ctx context.Context, sessionID string) ([]byte, error) {
	const q = `
SELECT payload::text
FROM cart_sessions
WHERE session_id = $1
`
	var payload string
	if err := r.pool.QueryRow(ctx, q, sessionID).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (r *postgresRepo) Save(ctx context.Context, sessionID string, payload []byte) error {
	const q = `
INSERT INTO cart_sessions (session_id, payload, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (session_id) DO UPDATE
SET payload = EXCLUDED.payload,
    updated_at = EXCLUDED.updated_at
`
	_, err := r.pool.Exec(ctx, q, sessionID, string(payload))
	return err
}

func (r *postgresRepo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
