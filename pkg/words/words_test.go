package words

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListWordSource(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		want    int
		wantErr bool
	}{
		{name: "plain", words: []string{"cat", "dog"}, want: 2},
		{name: "blank entries dropped", words: []string{"cat", "  ", ""}, want: 1},
		{name: "empty", words: nil, wantErr: true},
		{name: "only blanks", words: []string{" ", "\t"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewListWordSource(tt.words)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Len())
		})
	}
}

func TestListWordSource_RandomWord(t *testing.T) {
	source, err := NewListWordSource([]string{"apple", "table"})
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		w := source.RandomWord()
		assert.Contains(t, []string{"apple", "table"}, w)
		seen[w] = true
	}
	assert.Len(t, seen, 2)
}

func TestOfflineWordSource(t *testing.T) {
	source := NewOfflineWordSource()
	assert.Equal(t, len(DefaultWords), source.Len())
	for i := 0; i < 50; i++ {
		assert.NotEmpty(t, source.RandomWord())
	}
}

func TestNewFileWordSource(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# animals\ncat\n\n  dog  \n"), 0o644))
	source, err := NewFileWordSource(path)
	require.NoError(t, err)
	assert.Equal(t, 2, source.Len())

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("# nothing\n\n"), 0o644))
	_, err = NewFileWordSource(empty)
	assert.Error(t, err)

	_, err = NewFileWordSource(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

type fixedWord string

func (w fixedWord) RandomWord() string { return string(w) }

func TestHTTPWordSource_RandomWord(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "word from api",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`["gopher"]`))
			},
			want: "gopher",
		},
		{
			name: "server error falls back",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: "fallback",
		},
		{
			name: "empty array falls back",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[]`))
			},
			want: "fallback",
		},
		{
			name: "invalid json falls back",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			want: "fallback",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			source := NewHTTPWordSource(NewHTTPWordSourceOptions{
				URL:      server.URL,
				Fallback: fixedWord("fallback"),
			})
			assert.Equal(t, tt.want, source.RandomWord())
		})
	}
}
