// README: Trip history store backed by PostgreSQL.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Expected schema:
//
//	CREATE TABLE trips (
//	    id             UUID PRIMARY KEY,
//	    destination    TEXT NOT NULL,
//	    duration_days  INT NOT NULL,
//	    total_cost_usd DOUBLE PRECISION NOT NULL,
//	    request        JSONB NOT NULL,
//	    result         JSONB NOT NULL,
//	    created_at     TIMESTAMPTZ NOT NULL
//	);

var ErrNotFound = errors.New("trip not found")

// DB is the subset of pgxpool.Pool the store needs; pgxmock satisfies it in
// tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, rec *TripRecord) error {
	reqJSON, err := json.Marshal(rec.Request)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	resJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO trips (id, destination, duration_days, total_cost_usd, request, result, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.Destination, rec.DurationDays, rec.TotalCostUSD, reqJSON, resJSON, rec.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*TripRecord, error) {
	row := s.db.QueryRow(ctx, `
        SELECT id, destination, duration_days, total_cost_usd, request, result, created_at
        FROM trips
        WHERE id = $1`, id,
	)

	var rec TripRecord
	var reqJSON, resJSON []byte
	err := row.Scan(&rec.ID, &rec.Destination, &rec.DurationDays, &rec.TotalCostUSD, &reqJSON, &resJSON, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(reqJSON, &rec.Request); err != nil {
		return nil, fmt.Errorf("unmarshal request: %w", err)
	}
	if err := json.Unmarshal(resJSON, &rec.Result); err != nil {
		return nil, fmt.Errorf("unmarshal result: %w", err)
	}
	return &rec, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]TripSummary, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, destination, duration_days, total_cost_usd, created_at
        FROM trips
        ORDER BY created_at DESC
        LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TripSummary
	for rows.Next() {
		var t TripSummary
		if err := rows.Scan(&t.ID, &t.Destination, &t.DurationDays, &t.TotalCostUSD, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
