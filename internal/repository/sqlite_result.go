package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gauntlet/internal/db"
	"github.com/alexanderramin/gauntlet/internal/domain"
)

// SQLiteResultRepo implements ResultRepo using a SQLite database.
type SQLiteResultRepo struct {
	db db.DBTX
}

// NewSQLiteResultRepo creates a new SQLiteResultRepo.
func NewSQLiteResultRepo(conn db.DBTX) *SQLiteResultRepo {
	return &SQLiteResultRepo{db: conn}
}

// Upsert writes the day's judgement record. A repeat check-in for the same
// (founder, day) overwrites the prior record: latest write wins.
func (r *SQLiteResultRepo) Upsert(ctx context.Context, dr *domain.DailyResult) error {
	query := `INSERT INTO daily_results (id, founder_id, day, xp_delta, penalty, verdict_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(founder_id, day) DO UPDATE SET
			xp_delta = excluded.xp_delta,
			penalty = excluded.penalty,
			verdict_text = excluded.verdict_text,
			created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query,
		dr.ID,
		dr.FounderID,
		dr.Day,
		dr.XPDelta,
		dr.Penalty,
		dr.VerdictText,
		dr.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting daily result: %w", err)
	}
	return nil
}

func (r *SQLiteResultRepo) GetByDay(ctx context.Context, founderID, day string) (*domain.DailyResult, error) {
	query := `SELECT id, founder_id, day, xp_delta, penalty, verdict_text, created_at
		FROM daily_results WHERE founder_id = ? AND day = ?`
	row := r.db.QueryRowContext(ctx, query, founderID, day)
	return scanResult(row)
}

// History returns the most recent limit results for a founder, newest day first.
func (r *SQLiteResultRepo) History(ctx context.Context, founderID string, limit int) ([]*domain.DailyResult, error) {
	query := `SELECT id, founder_id, day, xp_delta, penalty, verdict_text, created_at
		FROM daily_results WHERE founder_id = ? ORDER BY day DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, founderID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing result history: %w", err)
	}
	defer rows.Close()

	var results []*domain.DailyResult
	for rows.Next() {
		var dr domain.DailyResult
		var createdAtStr string
		err := rows.Scan(
			&dr.ID, &dr.FounderID, &dr.Day, &dr.XPDelta, &dr.Penalty, &dr.VerdictText, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		createdAt, err := time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing result created_at: %w", err)
		}
		dr.CreatedAt = createdAt
		results = append(results, &dr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating results: %w", err)
	}
	return results, nil
}

func scanResult(row *sql.Row) (*domain.DailyResult, error) {
	var dr domain.DailyResult
	var createdAtStr string
	err := row.Scan(
		&dr.ID, &dr.FounderID, &dr.Day, &dr.XPDelta, &dr.Penalty, &dr.VerdictText, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily result: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily result: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing result created_at: %w", err)
	}
	dr.CreatedAt = createdAt
	return &dr, nil
}
