package repositories

import (
	"context"
	"fmt"

	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/jackc/pgx/v5"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS highscores (
	rank INTEGER PRIMARY KEY,
	score INTEGER NOT NULL CHECK (score >= 0)
);
`

// PostgresRepository holds a single connection. Callers must serialize
// SaveScores; the highscore table already does.
type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and creates the
// highscores table if needed. The caller is responsible for calling Close().
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %w", err)
	}
	log.Info("Connected to %s as %s", database, username)

	if _, err := conn.Exec(ctx, postgresSchema); err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to create highscores table: %w", err)
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) LoadScores(ctx context.Context) ([]int, error) {
	rows, err := r.conn.Query(ctx, "SELECT score FROM highscores ORDER BY rank")
	if err != nil {
		return nil, fmt.Errorf("failed to query highscores: %w", err)
	}

	scores, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to scan highscores: %w", err)
	}

	return scores, nil
}

func (r *PostgresRepository) SaveScores(ctx context.Context, scores []int) error {
	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM highscores"); err != nil {
		return fmt.Errorf("failed to clear highscores: %w", err)
	}

	for i, score := range scores {
		_, err = tx.Exec(ctx, "INSERT INTO highscores (rank, score) VALUES ($1, $2)", i+1, score)
		if err != nil {
			return fmt.Errorf("failed to insert highscore: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
