package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"implied_growth/pkg/core/growth"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryEntry is one stored computation: the four inputs, the headline
// outputs, and the full result as JSONB for later replay.
type HistoryEntry struct {
	ID                   string        `json:"id"`
	CreatedAt            time.Time     `json:"created_at"`
	Input                growth.Input  `json:"input"`
	ImpliedGrowthPercent float64       `json:"implied_growth_percent"`
	IsValid              bool          `json:"is_valid"`
	D1Consistent         bool          `json:"d1_consistent"`
	Result               growth.Result `json:"result"`
}

// HistoryRepo provides storage for past growth computations.
// All methods are safe to call with a nil pool; the calculator never
// depends on the database being reachable.
type HistoryRepo struct {
	pool *pgxpool.Pool
}

// NewHistoryRepo creates a history repository over an existing pool.
func NewHistoryRepo(pool *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

// OpenHistoryRepo connects using the DATABASE_URL environment variable
// and returns a ready repository. History is optional: an unset
// variable is an error the caller downgrades to "history disabled".
func OpenHistoryRepo(ctx context.Context) (*HistoryRepo, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	return &HistoryRepo{pool: pool}, nil
}

// Close releases the underlying pool. Safe on a repo without one.
func (r *HistoryRepo) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// SaveComputation stores a computed result and returns its id.
func (r *HistoryRepo) SaveComputation(ctx context.Context, in growth.Input, res growth.Result) (string, error) {
	if r.pool == nil {
		return "", fmt.Errorf("database pool not configured")
	}

	resultJSON, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO growth_computations (
			id, market_price, dividend_amount, required_return, expected_dividend,
			implied_growth_pct, is_valid, d1_consistent, result
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.pool.Exec(ctx, query,
		id, in.MarketPrice, in.DividendAmount, in.RequiredReturnPercent, in.ExpectedDividend,
		res.ImpliedGrowthPercent, res.IsValid, res.D1Consistent, resultJSON,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save computation: %w", err)
	}
	return id, nil
}

// ListRecent returns the most recent computations, newest first.
func (r *HistoryRepo) ListRecent(ctx context.Context, limit int) ([]*HistoryEntry, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, created_at, market_price, dividend_amount, required_return, expected_dividend,
		       implied_growth_pct, is_valid, d1_consistent, result
		FROM growth_computations
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		var resultJSON []byte

		if err := rows.Scan(&e.ID, &e.CreatedAt,
			&e.Input.MarketPrice, &e.Input.DividendAmount,
			&e.Input.RequiredReturnPercent, &e.Input.ExpectedDividend,
			&e.ImpliedGrowthPercent, &e.IsValid, &e.D1Consistent, &resultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		if e.Result, err = decodeStoredResult(e.ID, resultJSON); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, nil
}

// GetByID retrieves a single stored computation.
func (r *HistoryRepo) GetByID(ctx context.Context, id string) (*HistoryEntry, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("database pool not configured")
	}

	query := `
		SELECT id, created_at, market_price, dividend_amount, required_return, expected_dividend,
		       implied_growth_pct, is_valid, d1_consistent, result
		FROM growth_computations
		WHERE id = $1
	`
	var e HistoryEntry
	var resultJSON []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&e.ID, &e.CreatedAt,
		&e.Input.MarketPrice, &e.Input.DividendAmount,
		&e.Input.RequiredReturnPercent, &e.Input.ExpectedDividend,
		&e.ImpliedGrowthPercent, &e.IsValid, &e.D1Consistent, &resultJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to load computation %s: %w", id, err)
	}

	if e.Result, err = decodeStoredResult(e.ID, resultJSON); err != nil {
		return nil, err
	}
	return &e, nil
}

// decodeStoredResult unmarshals the JSONB result column. A corrupt row
// surfaces as an error instead of a silent zero-valued Result.
func decodeStoredResult(id string, raw []byte) (growth.Result, error) {
	var res growth.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return res, fmt.Errorf("corrupt stored result %s: %w", id, err)
	}
	return res, nil
}
