package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"swapScope/internal/model"
)

// Store provides Postgres persistence for analysis results.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// SaveAnalysis upserts one row per transaction reference. Event lists and
// the summary are stored as JSONB so ad-hoc queries can reach into them.
func (s *Store) SaveAnalysis(ctx context.Context, txRef string, analysis *model.Analysis) error {
	if txRef == "" {
		return fmt.Errorf("tx ref is required")
	}
	if analysis == nil || analysis.Summary == nil {
		return fmt.Errorf("analysis is required")
	}

	swaps, err := json.Marshal(analysis.Swaps)
	if err != nil {
		return fmt.Errorf("marshal swaps: %w", err)
	}
	transfers, err := json.Marshal(analysis.Transfers)
	if err != nil {
		return fmt.Errorf("marshal transfers: %w", err)
	}
	summary, err := json.Marshal(analysis.Summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO tx_analyses (
			tx_ref, total_swaps, total_transfers, swaps, transfers, summary, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (tx_ref) DO UPDATE
		SET total_swaps = EXCLUDED.total_swaps,
			total_transfers = EXCLUDED.total_transfers,
			swaps = EXCLUDED.swaps,
			transfers = EXCLUDED.transfers,
			summary = EXCLUDED.summary,
			updated_at = now()
	`,
		txRef,
		int64(analysis.Summary.TotalSwaps),
		int64(analysis.Summary.TotalTransfers),
		swaps,
		transfers,
		summary,
	)
	return err
}
