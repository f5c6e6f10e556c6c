package highscores

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/repositories"
	"golang.org/x/sync/semaphore"
)

const (
	// Capacity is the number of scores kept in the table.
	Capacity = 10
	// DefaultLockTimeout bounds the wait for the exclusive update section.
	DefaultLockTimeout = 10 * time.Second
)

// ErrLockTimeout is returned by Submit when another submission held the
// table for longer than the lock timeout. The score was not recorded.
var ErrLockTimeout = errors.New("timed out waiting for highscore table")

// PersistError is returned by Submit when the in-memory ranking was updated
// but writing it to the repository failed.
type PersistError struct {
	Scores []int
	Err    error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to persist highscores %v: %v", e.Scores, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// Table is the process-wide ranking of the lowest winning scores. Submit is
// safe for concurrent use; updates are applied and persisted one at a time.
type Table struct {
	repository  repositories.Repository
	lockTimeout time.Duration
	// sem serializes the whole append, sort, truncate and persist unit.
	sem         *semaphore.Weighted

	lock   sync.RWMutex
	scores []int
}

type NewTableOptions struct {
	Repository  repositories.Repository
	LockTimeout time.Duration
}

// NewTable loads the persisted scores from the repository. It must be called
// before any session can submit.
func NewTable(ctx context.Context, opts NewTableOptions) (*Table, error) {
	if opts.Repository == nil {
		return nil, fmt.Errorf("repository must not be nil")
	}
	lockTimeout := opts.LockTimeout
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}

	loaded, err := opts.Repository.LoadScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load highscores: %w", err)
	}

	scores := rank(loaded)
	if len(scores) != len(loaded) {
		log.Warn("Discarded %d highscores beyond the top %d", len(loaded)-len(scores), Capacity)
	}
	log.Info("%d highscores loaded: %v", len(scores), scores)

	return &Table{
		repository:  opts.Repository,
		lockTimeout: lockTimeout,
		sem:         semaphore.NewWeighted(1),
		scores:      scores,
	}, nil
}

// Scores returns a copy of the current ranking, lowest first.
func (t *Table) Scores() []int {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return slices.Clone(t.scores)
}

// Submit records a winning score and persists the resulting top ten.
// It returns ErrLockTimeout if the exclusive section could not be entered
// in time, and a *PersistError if the repository write failed.
func (t *Table) Submit(ctx context.Context, score int) error {
	if score < 0 {
		return fmt.Errorf("score must not be negative: %d", score)
	}

	acquireCtx, cancel := context.WithTimeout(ctx, t.lockTimeout)
	defer cancel()
	if err := t.sem.Acquire(acquireCtx, 1); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("failed to submit score %d: %w", score, ctx.Err())
		}
		return fmt.Errorf("failed to submit score %d after %s: %w", score, t.lockTimeout, ErrLockTimeout)
	}
	defer t.sem.Release(1)

	t.lock.Lock()
	t.scores = rank(append(slices.Clone(t.scores), score))
	snapshot := slices.Clone(t.scores)
	t.lock.Unlock()

	if err := t.repository.SaveScores(ctx, snapshot); err != nil {
		return &PersistError{Scores: snapshot, Err: err}
	}

	log.Debug("Highscores updated: %v", snapshot)
	return nil
}

// rank sorts scores ascending and keeps at most Capacity of them.
func rank(scores []int) []int {
	ranked := slices.Clone(scores)
	if ranked == nil {
		ranked = []int{}
	}
	slices.Sort(ranked)
	if len(ranked) > Capacity {
		ranked = ranked[:Capacity]
	}
	return ranked
}
