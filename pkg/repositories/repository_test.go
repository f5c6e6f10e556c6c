package repositories

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository_createsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")

	repo, err := NewFileRepository(path)
	require.NoError(t, err)
	defer repo.Close(context.Background())

	_, err = os.Stat(path)
	require.NoError(t, err)

	scores, err := repo.LoadScores(context.Background())
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestFileRepository_LoadScores(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []int
	}{
		{name: "empty", content: "", want: []int{}},
		{name: "ascending", content: "1\n3\n5\n", want: []int{1, 3, 5}},
		{name: "no trailing newline", content: "2\n4", want: []int{2, 4}},
		{name: "malformed lines skipped", content: "1\nabc\n\n-4\n 7 \n2.5\n9\n", want: []int{1, 7, 9}},
		{name: "crlf line endings", content: "1\r\n2\r\n", want: []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			repo, err := NewFileRepository(path)
			require.NoError(t, err)

			got, err := repo.LoadScores(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileRepository_SaveScores(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.txt")
	require.NoError(t, os.WriteFile(path, []byte("9\n9\n9\n9\n"), 0o644))

	repo, err := NewFileRepository(path)
	require.NoError(t, err)

	require.NoError(t, repo.SaveScores(context.Background(), []int{1, 3, 5, 8}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n5\n8\n", string(b))

	require.NoError(t, repo.SaveScores(context.Background(), []int{}))
	b, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileRepository_concurrentSavesNeverInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	repo, err := NewFileRepository(path)
	require.NoError(t, err)

	lists := [][]int{
		{1, 2, 3},
		{4, 5, 6, 7},
		{8},
		{10, 20, 30, 40, 50},
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(scores []int) {
			defer wg.Done()
			assert.NoError(t, repo.SaveScores(context.Background(), scores))
		}(lists[i%len(lists)])
	}
	wg.Wait()

	got, err := repo.LoadScores(context.Background())
	require.NoError(t, err)
	assert.Contains(t, lists, got)
}

func TestSQLiteRepository(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scores.db")

	repo, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)

	scores, err := repo.LoadScores(ctx)
	require.NoError(t, err)
	assert.Empty(t, scores)

	require.NoError(t, repo.SaveScores(ctx, []int{2, 2, 4}))
	require.NoError(t, repo.SaveScores(ctx, []int{1, 2, 2, 4}))

	scores, err = repo.LoadScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 4}, scores)
	require.NoError(t, repo.Close(ctx))

	reopened, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	scores, err = reopened.LoadScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 4}, scores)
}

func TestPostgresRepository(t *testing.T) {
	connStr := os.Getenv("HANGMAN_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("HANGMAN_TEST_POSTGRES_URL not set")
	}
	ctx := context.Background()

	repo, err := NewPostgresRepository(ctx, connStr)
	require.NoError(t, err)
	defer repo.Close(ctx)

	require.NoError(t, repo.SaveScores(ctx, []int{3, 6, 9}))
	scores, err := repo.LoadScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 9}, scores)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		name     string
		connStr  string
		wantType Repository
		wantErr  bool
	}{
		{name: "bare path", connStr: filepath.Join(dir, "a.txt"), wantType: &FileRepository{}},
		{name: "file url", connStr: "file://" + filepath.Join(dir, "b.txt"), wantType: &FileRepository{}},
		{name: "sqlite url", connStr: "sqlite://" + filepath.Join(dir, "c.db"), wantType: &SQLiteRepository{}},
		{name: "unknown scheme", connStr: "redis://localhost:6379", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := Open(ctx, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer repo.Close(ctx)
			assert.IsType(t, tt.wantType, repo)
		})
	}
}
