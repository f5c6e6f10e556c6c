package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cbodonnell/hangman/pkg/game/constants"
	"github.com/samber/lo"
)

// Fold maps a letter to the canonical case used for comparisons.
func Fold(r rune) rune {
	return unicode.ToUpper(r)
}

// Normalize maps every letter of s to the canonical case.
func Normalize(s string) string {
	return strings.Map(Fold, s)
}

// LetterSet is a set of case-folded letters. The zero value is not usable;
// create one with NewLetterSet.
type LetterSet struct {
	letters map[rune]struct{}
}

func NewLetterSet(letters ...rune) LetterSet {
	s := LetterSet{letters: make(map[rune]struct{}, len(letters))}
	for _, r := range letters {
		s.Add(r)
	}
	return s
}

// Add inserts the folded letter and reports whether it was new.
func (s LetterSet) Add(r rune) bool {
	r = Fold(r)
	if _, ok := s.letters[r]; ok {
		return false
	}
	s.letters[r] = struct{}{}
	return true
}

func (s LetterSet) Contains(r rune) bool {
	_, ok := s.letters[Fold(r)]
	return ok
}

func (s LetterSet) Len() int {
	return len(s.letters)
}

// Mask renders word with every letter not in guessed replaced by the
// placeholder. All occurrences of a guessed letter are revealed.
func Mask(word string, guessed LetterSet) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range Normalize(word) {
		if guessed.Contains(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(constants.MaskPlaceholder)
		}
	}
	return b.String()
}

// IsFullyUncovered reports whether every letter of word is in guessed.
func IsFullyUncovered(word string, guessed LetterSet) bool {
	return lo.EveryBy([]rune(word), guessed.Contains)
}

type GuessKind int

const (
	GuessKindLetter GuessKind = iota
	GuessKindWord
)

func (k GuessKind) String() string {
	switch k {
	case GuessKindLetter:
		return "letter"
	case GuessKindWord:
		return "word"
	default:
		return "unknown"
	}
}

// Guess is a classified line of client input.
type Guess struct {
	Kind   GuessKind
	Letter rune
	Word   string
}

// ClassifyGuess treats exactly one character as a letter guess and anything
// else, including the empty string, as a full-word guess.
func ClassifyGuess(input string) Guess {
	if utf8.RuneCountInString(input) == 1 {
		r, _ := utf8.DecodeRuneInString(input)
		return Guess{Kind: GuessKindLetter, Letter: r}
	}
	return Guess{Kind: GuessKindWord, Word: input}
}
