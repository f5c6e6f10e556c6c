package repositories

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS highscores (
	rank INTEGER PRIMARY KEY,
	score INTEGER NOT NULL CHECK (score >= 0)
);
`

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("database path must not be empty")
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create highscores table: %w", err)
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) LoadScores(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT score FROM highscores ORDER BY rank;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query highscores: %w", err)
	}
	defer rows.Close()

	scores := []int{}
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan highscore: %w", err)
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read highscores: %w", err)
	}

	return scores, nil
}

func (r *SQLiteRepository) SaveScores(ctx context.Context, scores []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM highscores;`); err != nil {
		return fmt.Errorf("failed to clear highscores: %w", err)
	}

	for i, score := range scores {
		q := `
		INSERT INTO highscores (rank, score)
		VALUES (?, ?);
		`
		if _, err := tx.ExecContext(ctx, q, i+1, score); err != nil {
			return fmt.Errorf("failed to insert highscore: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
