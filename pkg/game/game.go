package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cbodonnell/hangman/pkg/game/constants"
)

// ErrGameOver is returned when a guess is applied to a game that has
// already reached a terminal status.
var ErrGameOver = errors.New("game is over")

type Status int

const (
	StatusActive Status = iota
	StatusWon
	StatusLost
	StatusDisconnected
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	case StatusDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool {
	return s != StatusActive
}

// Outcome describes the transition caused by a single guess.
type Outcome int

const (
	// OutcomeRepeat means the letter was guessed before; nothing changed.
	OutcomeRepeat Outcome = iota
	// OutcomeHit means a new letter is in the word and the game continues.
	OutcomeHit
	// OutcomeMiss means the guess cost a try and the game continues.
	OutcomeMiss
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRepeat:
		return "repeat"
	case OutcomeHit:
		return "hit"
	case OutcomeMiss:
		return "miss"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Result is returned from Game.Guess.
type Result struct {
	Outcome Outcome
	Guess   Guess
	// Letter is the folded letter for letter guesses.
	Letter rune
}

// Game holds the state of one round of hangman. It is not safe for
// concurrent use; a session owns exactly one Game.
type Game struct {
	word      string
	guessed   LetterSet
	tries     int
	remaining int
	status    Status
}

// NewGame creates an active game for word with the given tries budget.
// A non-positive tries value selects constants.DefaultTries.
func NewGame(word string, tries int) (*Game, error) {
	if word == "" {
		return nil, fmt.Errorf("secret word must not be empty")
	}
	if tries <= 0 {
		tries = constants.DefaultTries
	}
	return &Game{
		word:      Normalize(word),
		guessed:   NewLetterSet(),
		tries:     tries,
		remaining: tries,
		status:    StatusActive,
	}, nil
}

// Word returns the secret word in canonical case.
func (g *Game) Word() string {
	return g.word
}

func (g *Game) Mask() string {
	return Mask(g.word, g.guessed)
}

func (g *Game) Tries() int {
	return g.tries
}

func (g *Game) Remaining() int {
	return g.remaining
}

func (g *Game) Status() Status {
	return g.status
}

// Guessed reports whether the letter has been guessed already.
func (g *Game) Guessed(r rune) bool {
	return g.guessed.Contains(r)
}

// Score is the number of tries consumed so far.
func (g *Game) Score() int {
	return g.tries - g.remaining
}

// Guess classifies input and applies it.
func (g *Game) Guess(input string) (Result, error) {
	guess := ClassifyGuess(input)
	if g.status.Terminal() {
		return Result{Guess: guess}, ErrGameOver
	}

	switch guess.Kind {
	case GuessKindLetter:
		return g.guessLetter(guess), nil
	default:
		return g.guessWord(guess), nil
	}
}

// Disconnect ends an active game without a result.
func (g *Game) Disconnect() {
	if g.status == StatusActive {
		g.status = StatusDisconnected
	}
}

func (g *Game) guessLetter(guess Guess) Result {
	letter := Fold(guess.Letter)
	result := Result{Guess: guess, Letter: letter}

	if !g.guessed.Add(letter) {
		result.Outcome = OutcomeRepeat
		return result
	}

	if !strings.ContainsRune(g.word, letter) {
		result.Outcome = g.miss()
		return result
	}

	if IsFullyUncovered(g.word, g.guessed) {
		g.status = StatusWon
		result.Outcome = OutcomeWon
		return result
	}

	result.Outcome = OutcomeHit
	return result
}

func (g *Game) guessWord(guess Guess) Result {
	result := Result{Guess: guess}
	if Normalize(guess.Word) == g.word {
		g.status = StatusWon
		result.Outcome = OutcomeWon
		return result
	}
	result.Outcome = g.miss()
	return result
}

func (g *Game) miss() Outcome {
	g.remaining--
	if g.remaining <= 0 {
		g.remaining = 0
		g.status = StatusLost
		return OutcomeLost
	}
	return OutcomeMiss
}
