package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/gauntlet/internal/db"
	"github.com/alexanderramin/gauntlet/internal/domain"
)

// SQLiteActionRepo implements ActionRepo using a SQLite database.
type SQLiteActionRepo struct {
	db db.DBTX
}

// NewSQLiteActionRepo creates a new SQLiteActionRepo.
func NewSQLiteActionRepo(conn db.DBTX) *SQLiteActionRepo {
	return &SQLiteActionRepo{db: conn}
}

func (r *SQLiteActionRepo) InsertBatch(ctx context.Context, actions []*domain.Action) error {
	query := `INSERT INTO actions (id, founder_id, day, seq, text, impact_weight, difficulty, non_negotiable, completed, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, a := range actions {
		_, err := r.db.ExecContext(ctx, query,
			a.ID,
			a.FounderID,
			a.Day,
			a.Seq,
			a.Text,
			a.ImpactWeight,
			a.Difficulty,
			boolToInt(a.NonNegotiable),
			nullableBoolToValue(a.Completed),
			nullableTimeToString(a.CompletedAt, time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting action: %w", err)
		}
	}
	return nil
}

func (r *SQLiteActionRepo) ListByDay(ctx context.Context, founderID, day string) ([]*domain.Action, error) {
	query := `SELECT id, founder_id, day, seq, text, impact_weight, difficulty, non_negotiable, completed, completed_at
		FROM actions WHERE founder_id = ? AND day = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, founderID, day)
	if err != nil {
		return nil, fmt.Errorf("listing actions by day: %w", err)
	}
	defer rows.Close()

	var actions []*domain.Action
	for rows.Next() {
		var a domain.Action
		var nonNegotiable int
		var completed sql.NullInt64
		var completedAt sql.NullString

		err := rows.Scan(
			&a.ID, &a.FounderID, &a.Day, &a.Seq, &a.Text,
			&a.ImpactWeight, &a.Difficulty, &nonNegotiable, &completed, &completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning action row: %w", err)
		}

		a.NonNegotiable = nonNegotiable != 0
		a.Completed = nullableIntToBool(completed)
		a.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
		actions = append(actions, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating actions: %w", err)
	}
	return actions, nil
}

func (r *SQLiteActionRepo) SetCompletion(ctx context.Context, actionID string, completed bool, at time.Time) error {
	query := `UPDATE actions SET completed = ?, completed_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		boolToInt(completed),
		at.Format(time.RFC3339),
		actionID,
	)
	if err != nil {
		return fmt.Errorf("setting action completion: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("action %s: %w", actionID, ErrNotFound)
	}
	return nil
}
