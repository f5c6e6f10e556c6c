package api

import (
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticScores []int

func (s staticScores) Scores() []int { return s }

func TestRouter_highscores(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		scores     staticScores
		wantStatus int
		wantBody   string
	}{
		{
			name:       "list",
			method:     http.MethodGet,
			scores:     staticScores{1, 3, 5, 8},
			wantStatus: http.StatusOK,
			wantBody:   `{"scores":[1,3,5,8]}`,
		},
		{
			name:       "empty table",
			method:     http.MethodGet,
			scores:     staticScores{},
			wantStatus: http.StatusOK,
			wantBody:   `{"scores":[]}`,
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			scores:     staticScores{1},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(tt.scores)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, "/highscores", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestAPIServer_Start_TLS(t *testing.T) {
	dir := t.TempDir()
	server := NewAPIServer(NewAPIServerOptions{
		Port:       0,
		Highscores: staticScores{},
		TLS: &TLSConfig{
			CertFile: filepath.Join(dir, "cert.pem"),
			KeyFile:  filepath.Join(dir, "key.pem"),
		},
	})

	err := server.Start()
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
