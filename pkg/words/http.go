package words

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cbodonnell/hangman/pkg/log"
)

const DefaultHTTPTimeout = 5 * time.Second

// HTTPWordSource fetches words from a random-word API that answers with a
// JSON array of strings. Any failure falls back to another WordSource.
type HTTPWordSource struct {
	url      string
	client   *http.Client
	fallback WordSource
}

type NewHTTPWordSourceOptions struct {
	URL      string
	Client   *http.Client
	Fallback WordSource
}

func NewHTTPWordSource(opts NewHTTPWordSourceOptions) *HTTPWordSource {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	fallback := opts.Fallback
	if fallback == nil {
		fallback = NewOfflineWordSource()
	}
	return &HTTPWordSource{
		url:      opts.URL,
		client:   client,
		fallback: fallback,
	}
}

func (s *HTTPWordSource) RandomWord() string {
	word, err := s.fetch(context.Background())
	if err != nil {
		log.Warn("Word API failed, using fallback word source: %v", err)
		return s.fallback.RandomWord()
	}
	return word
}

func (s *HTTPWordSource) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to request word: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var words []string
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return "", fmt.Errorf("failed to decode words: %w", err)
	}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			return w, nil
		}
	}
	return "", fmt.Errorf("no words in response")
}
