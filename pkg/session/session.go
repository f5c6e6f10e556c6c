package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/cbodonnell/hangman/pkg/game"
	"github.com/cbodonnell/hangman/pkg/game/constants"
	"github.com/cbodonnell/hangman/pkg/log"
	"github.com/cbodonnell/hangman/pkg/words"
)

// ScoreSubmitter receives the score of every won game.
type ScoreSubmitter interface {
	Submit(ctx context.Context, score int) error
}

// Session plays one game of hangman with one client over a line-oriented
// stream. Create it with New and call Run once.
type Session struct {
	id         string
	conn       io.ReadWriteCloser
	scanner    *bufio.Scanner
	writer     *bufio.Writer
	game       *game.Game
	highscores ScoreSubmitter
}

type NewSessionOptions struct {
	ID         string
	Conn       io.ReadWriteCloser
	Words      words.WordSource
	Tries      int
	Highscores ScoreSubmitter
}

func New(opts NewSessionOptions) (*Session, error) {
	if opts.Conn == nil {
		return nil, fmt.Errorf("connection must not be nil")
	}
	if opts.Words == nil {
		return nil, fmt.Errorf("word source must not be nil")
	}

	g, err := game.NewGame(opts.Words.RandomWord(), opts.Tries)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	scanner := bufio.NewScanner(opts.Conn)
	scanner.Buffer(make([]byte, 0, 64), constants.MaxGuessLength+2)

	return &Session{
		id:         opts.ID,
		conn:       opts.Conn,
		scanner:    scanner,
		writer:     bufio.NewWriter(opts.Conn),
		game:       g,
		highscores: opts.Highscores,
	}, nil
}

func (s *Session) Game() *game.Game {
	return s.game
}

// Run drives the game until it is won, lost or the client goes away, then
// closes the connection. I/O errors end the session as disconnected and are
// returned unless they are a plain end of stream.
func (s *Session) Run(ctx context.Context) (game.Status, error) {
	defer s.conn.Close()

	if err := s.send(statusMessage(s.game.Remaining(), s.game.Mask())); err != nil {
		s.game.Disconnect()
		return s.game.Status(), err
	}

	for !s.game.Status().Terminal() {
		line, err := s.readLine()
		if err != nil {
			s.game.Disconnect()
			if isClosed(err) {
				log.Debug("Client %s disconnected", s.id)
				return s.game.Status(), nil
			}
			return s.game.Status(), fmt.Errorf("failed to read guess: %w", err)
		}

		result, err := s.game.Guess(line)
		if err != nil {
			return s.game.Status(), err
		}
		log.Trace("Client %s guessed %q: %s", s.id, line, result.Outcome)

		if err := s.respond(ctx, result); err != nil {
			if !s.game.Status().Terminal() {
				s.game.Disconnect()
			}
			return s.game.Status(), err
		}
	}

	return s.game.Status(), nil
}

func (s *Session) respond(ctx context.Context, result game.Result) error {
	g := s.game
	switch result.Outcome {
	case game.OutcomeRepeat:
		return s.send(repeatMessage(result.Letter, g.Remaining(), g.Mask()))
	case game.OutcomeWon:
		err := s.send(winMessage(g.Word()))
		s.submitScore(ctx)
		return err
	case game.OutcomeLost:
		return s.send(loseMessage(g.Word()))
	default:
		return s.send(statusMessage(g.Remaining(), g.Mask()))
	}
}

// submitScore reports the score of a won game. Failures are logged; the
// client never sees them.
func (s *Session) submitScore(ctx context.Context) {
	if s.highscores == nil {
		return
	}
	if err := s.highscores.Submit(ctx, s.game.Score()); err != nil {
		log.Error("Failed to submit score %d for client %s: %v", s.game.Score(), s.id, err)
	}
}

// readLine returns the next line without its line terminator. A final line
// without a terminator is returned before io.EOF is reported. Lines longer
// than constants.MaxGuessLength fail with bufio.ErrTooLong.
func (s *Session) readLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

func (s *Session) send(message string) error {
	if _, err := s.writer.WriteString(message + "\n"); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush message: %w", err)
	}
	return nil
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe)
}
