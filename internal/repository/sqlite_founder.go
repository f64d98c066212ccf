package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gauntlet/internal/db"
	"github.com/alexanderramin/gauntlet/internal/domain"
)

// SQLiteFounderRepo implements FounderRepo using a SQLite database.
type SQLiteFounderRepo struct {
	db db.DBTX
}

// NewSQLiteFounderRepo creates a new SQLiteFounderRepo.
func NewSQLiteFounderRepo(conn db.DBTX) *SQLiteFounderRepo {
	return &SQLiteFounderRepo{db: conn}
}

func (r *SQLiteFounderRepo) Create(ctx context.Context, f *domain.Founder) error {
	query := `INSERT INTO founders (id, created_at, goal_text, level, xp, streak, debt, difficulty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		f.CreatedAt.Format(time.RFC3339),
		strings.TrimSpace(f.GoalText),
		f.Level,
		f.XP,
		f.Streak,
		f.Debt,
		f.Difficulty,
	)
	if err != nil {
		return fmt.Errorf("inserting founder: %w", err)
	}
	return nil
}

func (r *SQLiteFounderRepo) GetByID(ctx context.Context, id string) (*domain.Founder, error) {
	query := `SELECT id, created_at, goal_text, level, xp, streak, debt, difficulty
		FROM founders WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var f domain.Founder
	var createdAtStr string
	err := row.Scan(
		&f.ID,
		&createdAtStr,
		&f.GoalText,
		&f.Level,
		&f.XP,
		&f.Streak,
		&f.Debt,
		&f.Difficulty,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("founder %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning founder: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing founder created_at: %w", err)
	}
	f.CreatedAt = createdAt
	return &f, nil
}

func (r *SQLiteFounderRepo) UpdateGoal(ctx context.Context, id, goalText string) error {
	query := `UPDATE founders SET goal_text = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, strings.TrimSpace(goalText), id)
	if err != nil {
		return fmt.Errorf("updating founder goal: %w", err)
	}
	return requireRowAffected(res, id)
}

func (r *SQLiteFounderRepo) UpdateStats(ctx context.Context, id string, p domain.Progression) error {
	query := `UPDATE founders SET xp = ?, level = ?, streak = ?, debt = ?, difficulty = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.XP,
		p.Level,
		p.Streak,
		p.Debt,
		p.Difficulty,
		id,
	)
	if err != nil {
		return fmt.Errorf("updating founder stats: %w", err)
	}
	return requireRowAffected(res, id)
}

func requireRowAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("founder %s: %w", id, ErrNotFound)
	}
	return nil
}
