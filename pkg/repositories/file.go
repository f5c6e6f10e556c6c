package repositories

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cbodonnell/hangman/pkg/log"
)

// FileRepository stores one score per line in a plain text file.
type FileRepository struct {
	path string
}

// NewFileRepository creates the file at path if it does not exist yet.
func NewFileRepository(path string) (Repository, error) {
	if path == "" {
		return nil, fmt.Errorf("file path must not be empty")
	}

	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open scores file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close scores file %s: %w", path, err)
	}

	return &FileRepository{
		path: path,
	}, nil
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

// LoadScores reads every line as a non-negative integer. Lines that do not
// parse are skipped with a warning.
func (r *FileRepository) LoadScores(ctx context.Context) ([]int, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("failed to open scores file %s: %w", r.path, err)
	}
	defer f.Close()

	scores := []int{}
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		score, err := strconv.Atoi(line)
		if err != nil || score < 0 {
			log.Warn("Skipping malformed line %d in scores file %s: %q", lineNumber, r.path, line)
			continue
		}
		scores = append(scores, score)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores file %s: %w", r.path, err)
	}

	return scores, nil
}

// SaveScores writes the scores to a temporary file in the same directory and
// renames it over the scores file, so readers never see a partial list.
func (r *FileRepository) SaveScores(ctx context.Context, scores []int) error {
	var b strings.Builder
	for _, score := range scores {
		b.WriteString(strconv.Itoa(score))
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary scores file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set scores file mode: %w", err)
	}
	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write scores: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary scores file: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace scores file %s: %w", r.path, err)
	}

	return nil
}
