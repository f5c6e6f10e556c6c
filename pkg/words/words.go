package words

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/samber/lo"
)

// WordSource supplies secret words. Implementations must be safe for
// concurrent use and must never return an empty string.
type WordSource interface {
	RandomWord() string
}

// DefaultWords is the built-in offline word list.
var DefaultWords = []string{
	"Softwareentwicklung",
	"Nebenläufigkeit",
	"Datensynchronisation",
	"Interprozesskommunikation",
	"Vererbungshierarchie",
	"Schnittstelle",
	"Zugriffskapselung",
	"Laufzeitpolymorphie",
	"Sortieralgorithmen",
	"Anwendungsschnittstelle",
}

// ListWordSource picks a word uniformly at random from a fixed list.
type ListWordSource struct {
	words []string
}

// NewListWordSource creates a ListWordSource from the given words.
// Blank entries are dropped; an error is returned if nothing remains.
func NewListWordSource(words []string) (*ListWordSource, error) {
	cleaned := lo.Filter(lo.Map(words, func(w string, _ int) string {
		return strings.TrimSpace(w)
	}), func(w string, _ int) bool {
		return w != ""
	})
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return &ListWordSource{words: cleaned}, nil
}

// NewOfflineWordSource returns a ListWordSource over DefaultWords.
func NewOfflineWordSource() *ListWordSource {
	return &ListWordSource{words: DefaultWords}
}

// NewFileWordSource loads one word per line from path.
// Lines starting with '#' are comments.
func NewFileWordSource(path string) (*ListWordSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	source, err := NewListWordSource(words)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	}
	return source, nil
}

// RandomWord returns a uniformly chosen word from the list.
func (s *ListWordSource) RandomWord() string {
	return s.words[rand.Intn(len(s.words))]
}

// Len returns the number of words in the list.
func (s *ListWordSource) Len() int {
	return len(s.words)
}
