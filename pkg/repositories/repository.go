package repositories

import (
	"context"
	"fmt"
	"net/url"
)

// Repository persists the ranked score list. Implementations store the
// list as a whole; SaveScores replaces whatever was stored before.
type Repository interface {
	Close(ctx context.Context) error
	// LoadScores returns the stored scores in stored order.
	LoadScores(ctx context.Context) ([]int, error)
	// SaveScores atomically replaces the stored scores.
	SaveScores(ctx context.Context, scores []int) error
}

// Open creates a Repository from a connection string. Supported schemes are
// file://, sqlite:// and postgresql:// (or postgres://). A string without a
// scheme is treated as a file path.
func Open(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	switch u.Scheme {
	case "":
		return NewFileRepository(connStr)
	case "file":
		return NewFileRepository(u.Host + u.Path)
	case "sqlite":
		return NewSQLiteRepository(ctx, u.Host+u.Path)
	case "postgresql", "postgres":
		return NewPostgresRepository(ctx, u.String())
	default:
		return nil, fmt.Errorf("unknown repository type %s", u.Scheme)
	}
}
